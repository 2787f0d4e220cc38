package main

import (
	"strconv"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/render-runtime/buffer"
	"github.com/wippyai/render-runtime/errors"
	"github.com/wippyai/render-runtime/render"
	"github.com/wippyai/render-runtime/template"
)

// pageWriter renders a document tree as nested HTML lists.
// Mappings become <dl>, sequences <ol>, and scalars escaped text.
type pageWriter struct {
	policy *bluemonday.Policy
	cfg    Config
	nodes  int
}

func newPageWriter(cfg Config) (*pageWriter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := render.SanitizePolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}
	return &pageWriter{cfg: cfg, policy: policy}, nil
}

// page returns a template rendering root inside a complete HTML page.
func (w *pageWriter) page(root *yaml.Node) *template.Compiled {
	return template.New("page", func(b *buffer.Buffer) error {
		b.PushString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
		render.AppendStringEscaped(b, w.cfg.Title)
		b.PushString("</title>\n")
		if w.cfg.Stylesheet != "" {
			b.PushString("<link rel=\"stylesheet\" href=\"")
			render.AppendStringEscaped(b, w.cfg.Stylesheet)
			b.PushString("\">\n")
		}
		b.PushString("</head>\n<body>\n<h1>")
		render.AppendStringEscaped(b, w.cfg.Title)
		b.PushString("</h1>\n")
		if err := w.fragment(root).RenderEscaped(b); err != nil {
			return err
		}
		b.PushString("\n</body>\n</html>\n")
		return nil
	})
}

// fragment renders a subtree without the page around it. Its output is
// already HTML, so both forms write the same bytes.
type fragment struct {
	w *pageWriter
	n *yaml.Node
}

func (w *pageWriter) fragment(n *yaml.Node) render.Renderer {
	return fragment{w: w, n: n}
}

func (f fragment) Render(b *buffer.Buffer) error {
	return f.w.node(b, f.n, nil)
}

func (f fragment) RenderEscaped(b *buffer.Buffer) error {
	return f.Render(b)
}

func (w *pageWriter) node(b *buffer.Buffer, n *yaml.Node, path []string) error {
	if len(path) > w.cfg.MaxDepth {
		return errors.InvalidData(errors.PhaseRender, path, "nesting deeper than "+strconv.Itoa(w.cfg.MaxDepth))
	}
	n = resolve(n)
	w.nodes++

	switch n.Kind {
	case yaml.MappingNode:
		b.PushString("<dl>")
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			b.PushString("<dt>")
			if k := resolve(key); k.Kind == yaml.ScalarNode {
				w.nodes++
				render.AppendStringEscaped(b, k.Value)
			} else if err := w.node(b, k, path); err != nil {
				return err
			}
			b.PushString("</dt><dd>")
			if err := w.node(b, n.Content[i+1], append(path, key.Value)); err != nil {
				return err
			}
			b.PushString("</dd>")
		}
		b.PushString("</dl>")

	case yaml.SequenceNode:
		b.PushString("<ol>")
		for i, c := range n.Content {
			b.PushString("<li>")
			if err := w.node(b, c, append(path, strconv.Itoa(i))); err != nil {
				return err
			}
			b.PushString("</li>")
		}
		b.PushString("</ol>")

	case yaml.ScalarNode:
		return w.scalar(b, n, path)

	default:
		return errors.New(errors.PhaseRender, errors.KindUnsupported).
			Path(path...).
			Detail("yaml node kind %d", n.Kind).
			Build()
	}
	return nil
}

func (w *pageWriter) scalar(b *buffer.Buffer, n *yaml.Node, path []string) error {
	switch n.ShortTag() {
	case "!!null":
		return nil
	case "!!binary":
		render.AppendStringEscaped(b, n.Value)
		return nil
	case "!!str":
		if w.cfg.RawHTML {
			return render.Sanitized{Policy: w.policy, Markup: n.Value}.RenderEscaped(b)
		}
		render.AppendStringEscaped(b, n.Value)
		return nil
	}

	var v any
	if err := n.Decode(&v); err != nil {
		return errors.New(errors.PhaseRender, errors.KindInvalidData).
			Path(path...).
			Detail("decode %s scalar", n.ShortTag()).
			Cause(err).
			Build()
	}
	if v == nil {
		return nil
	}
	return render.ValueEscaped(b, v)
}
