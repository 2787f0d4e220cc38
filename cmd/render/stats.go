package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/render-runtime/buffer"
	"github.com/wippyai/render-runtime/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Width(10)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type renderStats struct {
	Source  string
	Output  string
	Nodes   int
	Bytes   int
	Hint    int
	Elapsed time.Duration
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// formatStats lays out s as label/value lines. Styling is applied only
// when styled is set so redirected output stays plain text.
func formatStats(s renderStats, styled bool) string {
	b := buffer.WithCapacity(256)

	line := func(label string, value func(*buffer.Buffer)) {
		v := buffer.New()
		value(v)
		if styled {
			b.PushString(labelStyle.Render(label))
			b.PushString(valueStyle.Render(v.String()))
		} else {
			b.PushString(label)
			b.PushString(": ")
			b.PushBytes(v.Bytes())
		}
		b.PushByte('\n')
	}
	text := func(s string) func(*buffer.Buffer) {
		return func(v *buffer.Buffer) { v.PushString(s) }
	}
	count := func(n int, unit string) func(*buffer.Buffer) {
		return func(v *buffer.Buffer) {
			render.AppendInt(v, n)
			v.PushString(unit)
		}
	}

	if styled {
		b.PushString(titleStyle.Render("render"))
		b.PushByte('\n')
	}
	line("source", text(s.Source))
	output := s.Output
	if output == "" {
		output = "stdout"
	}
	line("output", text(output))
	line("nodes", count(s.Nodes, ""))
	line("size", count(s.Bytes, " bytes"))
	line("hint", count(s.Hint, " bytes"))
	line("elapsed", text(s.Elapsed.Round(time.Microsecond).String()))

	return b.IntoString()
}

func printStats(w io.Writer, s renderStats, styled bool) {
	io.WriteString(w, formatStats(s, styled))
}
