package render

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/wippyai/render-runtime/buffer"
	"github.com/wippyai/render-runtime/errors"
)

// Sanitize policy names accepted by SanitizePolicy.
const (
	PolicyStrict = "strict"
	PolicyUGC    = "ugc"
)

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
	ugcPolicyOnce    sync.Once
	ugcPolicy        *bluemonday.Policy
)

// SanitizePolicy returns the shared policy registered under name.
// "strict" strips all markup; "ugc" keeps the formatting elements and
// attributes that are safe in user generated content.
func SanitizePolicy(name string) (*bluemonday.Policy, error) {
	switch name {
	case PolicyStrict:
		strictPolicyOnce.Do(func() {
			strictPolicy = bluemonday.StrictPolicy()
		})
		return strictPolicy, nil
	case PolicyUGC, "":
		ugcPolicyOnce.Do(func() {
			ugcPolicy = bluemonday.UGCPolicy()
		})
		return ugcPolicy, nil
	}
	return nil, errors.NotFound(errors.PhaseConfig, "sanitize policy", name)
}

// Sanitized is HTML markup. Raw rendering writes it verbatim; escaped
// rendering passes it through Policy, keeping the markup the policy allows,
// instead of entity-escaping it. A nil Policy means the UGC policy.
type Sanitized struct {
	Policy *bluemonday.Policy
	Markup string
}

// HTML returns markup sanitized with the UGC policy when escaped.
func HTML(markup string) Sanitized {
	return Sanitized{Markup: markup}
}

func (s Sanitized) Render(b *buffer.Buffer) error {
	b.PushString(s.Markup)
	return nil
}

func (s Sanitized) RenderEscaped(b *buffer.Buffer) error {
	policy := s.Policy
	if policy == nil {
		policy, _ = SanitizePolicy(PolicyUGC)
	}
	if err := policy.SanitizeReaderToWriter(strings.NewReader(s.Markup), b); err != nil {
		return errors.Wrap(errors.PhaseEscape, errors.KindInvalidData, err, "sanitize markup")
	}
	return nil
}
