package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/render-runtime/buffer"
)

const listDepth = 2

var (
	selectedStyle = titleStyle.UnsetBold().UnsetPadding()
	pathStyle     = valueStyle
	kindStyle     = labelStyle.UnsetWidth()
)

type previewModel struct {
	err      error
	root     *yaml.Node
	pw       *pageWriter
	filename string
	current  string
	result   string
	paths    []pathInfo
	input    textinput.Model
	view     viewport.Model
	selected int
	cfg      Config
	state    previewState
}

type pathInfo struct {
	path string
	kind string
}

type previewState int

const (
	stateSelectPath previewState = iota
	stateInputPath
	stateShowResult
)

func newPreviewModel(filename string, cfg Config) *previewModel {
	ti := textinput.New()
	ti.Placeholder = "users.0.name"
	ti.Prompt = "path: "
	ti.Width = 40

	return &previewModel{
		filename: filename,
		cfg:      cfg,
		input:    ti,
		view:     viewport.New(80, 20),
		state:    stateSelectPath,
	}
}

type loadedMsg struct {
	err   error
	root  *yaml.Node
	pw    *pageWriter
	paths []pathInfo
}

type renderedMsg struct {
	err  error
	path string
	html string
}

func (m *previewModel) Init() tea.Cmd {
	return m.loadDocument
}

func (m *previewModel) loadDocument() tea.Msg {
	root, err := loadDocument(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	pw, err := newPageWriter(m.cfg)
	if err != nil {
		return loadedMsg{err: err}
	}

	infos := []pathInfo{{path: "", kind: kindName(root)}}
	for _, p := range paths(root, listDepth) {
		n, err := lookup(root, p)
		if err != nil {
			continue
		}
		infos = append(infos, pathInfo{path: p, kind: kindName(n)})
	}
	return loadedMsg{root: root, pw: pw, paths: infos}
}

func (m *previewModel) renderPath(path string) tea.Cmd {
	pw := *m.pw
	return func() tea.Msg {
		n, err := lookup(m.root, path)
		if err != nil {
			return renderedMsg{err: err, path: path}
		}
		b := buffer.New()
		if err := pw.fragment(n).RenderEscaped(b); err != nil {
			return renderedMsg{err: err, path: path}
		}
		return renderedMsg{path: path, html: b.IntoString()}
	}
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputPath {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectPath && m.selected > 0 {
				m.selected--
				return m, nil
			}

		case "down", "j":
			if m.state == stateSelectPath && m.selected < len(m.paths)-1 {
				m.selected++
				return m, nil
			}

		case "/":
			if m.state == stateSelectPath && m.pw != nil {
				m.state = stateInputPath
				m.input.SetValue("")
				m.input.Focus()
				return m, textinput.Blink
			}

		case "tab":
			if m.state == stateShowResult && m.pw != nil {
				m.pw.cfg.RawHTML = !m.pw.cfg.RawHTML
				return m, m.renderPath(m.current)
			}

		case "enter":
			switch m.state {
			case stateSelectPath:
				if len(m.paths) > 0 {
					return m, m.renderPath(m.paths[m.selected].path)
				}
			case stateInputPath:
				m.input.Blur()
				return m, m.renderPath(strings.TrimSpace(m.input.Value()))
			case stateShowResult:
				m.backToList()
			}
			return m, nil

		case "esc":
			if m.state != stateSelectPath {
				m.input.Blur()
				m.backToList()
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.view.Width = msg.Width
		m.view.Height = max(msg.Height-6, 3)

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.root = msg.root
		m.pw = msg.pw
		m.paths = msg.paths

	case renderedMsg:
		m.current = msg.path
		m.result = msg.html
		m.err = msg.err
		m.state = stateShowResult
		m.view.SetContent(msg.html)
		m.view.GotoTop()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case stateInputPath:
		m.input, cmd = m.input.Update(msg)
	case stateShowResult:
		m.view, cmd = m.view.Update(msg)
	}
	return m, cmd
}

func (m *previewModel) backToList() {
	m.state = stateSelectPath
	m.result = ""
	m.err = nil
}

func (m *previewModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.root == nil {
		return "Loading document..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("HTML Preview"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectPath:
		b.WriteString("Select a node to render:\n\n")
		for i, p := range m.paths {
			line := formatPath(p)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter render • / enter path • q quit"))

	case stateInputPath:
		b.WriteString("Render the node at:\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter render • esc back"))

	case stateShowResult:
		mode := "escaped"
		if m.pw != nil && m.pw.cfg.RawHTML {
			mode = "sanitized"
		}
		b.WriteString(fmt.Sprintf("%s (%s, %d bytes):\n\n", pathStyle.Render(displayPath(m.current)), mode, len(m.result)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.view.View()))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • tab toggle raw html • enter back • q quit"))
	}

	return b.String()
}

func formatPath(p pathInfo) string {
	depth := strings.Count(p.path, ".")
	if p.path == "" {
		depth = 0
	}
	return strings.Repeat("  ", depth) + pathStyle.Render(displayPath(p.path)) + " " + kindStyle.Render(p.kind)
}

func displayPath(p string) string {
	if p == "" {
		return "(root)"
	}
	return p
}

func runInteractive(filename string, cfg Config) error {
	p := tea.NewProgram(newPreviewModel(filename, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
