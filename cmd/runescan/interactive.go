package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/runedfa/dfa"
	"github.com/wippyai/runedfa/view"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	variantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	bytesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	runeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

var interactiveVariants = []*dfa.Tables{dfa.UTF8, dfa.WTF8, dfa.Text}

type inspectorModel struct {
	input      textinput.Model
	tables     *dfa.Tables
	variantIdx int
}

func newInspectorModel(tables *dfa.Tables) *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "type or paste text to inspect"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	idx := 0
	for i, t := range interactiveVariants {
		if t == tables {
			idx = i
		}
	}

	return &inspectorModel{
		input:      ti,
		tables:     interactiveVariants[idx],
		variantIdx: idx,
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.variantIdx = (m.variantIdx + 1) % len(interactiveVariants)
			m.tables = interactiveVariants[m.variantIdx]
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("runescan inspector"))
	b.WriteString("  ")
	b.WriteString(variantStyle.Render("variant: " + m.tables.Name()))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderBreakdown([]byte(m.input.Value())))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: switch variant • esc: quit"))
	return b.String()
}

func (m *inspectorModel) renderBreakdown(data []byte) string {
	if len(data) == 0 {
		return helpStyle.Render("(empty)")
	}

	cursor := 0
	if !m.tables.ValidateCursor(data, &cursor) {
		return errStyle.Render(fmt.Sprintf(
			"malformed at offset %d (byte 0x%02X)", cursor, data[cursor]))
	}

	var b strings.Builder
	it := view.FromTrusted(data, m.tables).Iter()
	n := 0
	for {
		offset := it.Offset()
		raw, ok := it.NextBytes()
		if !ok {
			break
		}
		c := offset
		cp := m.tables.DecodeRuneAssumeValid(data, &c)
		fmt.Fprintf(&b, "%s %s %s %s\n",
			offsetStyle.Render(fmt.Sprintf("%4d", offset)),
			bytesStyle.Render(fmt.Sprintf("%-12s", fmt.Sprintf("% X", raw))),
			runeStyle.Render(fmt.Sprintf("U+%04X", cp)),
			displayRune(cp))
		n++
	}
	fmt.Fprintf(&b, "\n%s", offsetStyle.Render(
		fmt.Sprintf("%d bytes, %d codepoints", len(data), n)))
	return b.String()
}

func runInteractive(tables *dfa.Tables) error {
	p := tea.NewProgram(newInspectorModel(tables))
	_, err := p.Run()
	return err
}
