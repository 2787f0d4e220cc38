package main

import (
	"io"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/wippyai/render-runtime/errors"
)

// writeOutput writes html to stdout, or replaces path atomically so that
// readers never observe a partially written page.
func writeOutput(path, html string, stdout io.Writer) error {
	if path == "" {
		if _, err := io.WriteString(stdout, html); err != nil {
			return errors.Output("write stdout", err)
		}
		return nil
	}

	if err := atomic.WriteFile(path, strings.NewReader(html)); err != nil {
		return errors.Output("write "+path, err)
	}
	return nil
}
