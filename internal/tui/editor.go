// Package tui provides the interactive rule editor: a small form for
// composing a rule by hand, validated through the same path as config load
// so the editor can never produce a rule the store would reject.
package tui

import (
	"fmt"
	"strings"

	"cleanify/internal/config"
	"cleanify/pkg/types"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldName = iota
	fieldContains
	fieldExtensions
	fieldPattern
	fieldDestination
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Name",
	"Contains (comma-separated substrings)",
	"Extensions (comma-separated, e.g. .pdf, .docx)",
	"Pattern (glob, optional)",
	"Destination folder (relative)",
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

// Editor is the bubbletea model for the rule form.
type Editor struct {
	inputs   [fieldCount]textinput.Model
	focus    int
	err      error
	rule     types.Rule
	accepted bool
	done     bool
}

// NewEditor creates an editor, prefilled from initial (pass a zero Rule for
// a blank form — or a parser-produced candidate to review it).
func NewEditor(initial types.Rule) *Editor {
	e := &Editor{}
	for i := range e.inputs {
		input := textinput.New()
		input.Prompt = "> "
		input.CharLimit = 128
		e.inputs[i] = input
	}

	e.inputs[fieldName].SetValue(initial.Name)
	e.inputs[fieldContains].SetValue(strings.Join(initial.Match.Contains, ", "))
	e.inputs[fieldExtensions].SetValue(strings.Join(initial.Match.Extensions, ", "))
	e.inputs[fieldPattern].SetValue(initial.Match.Pattern)
	e.inputs[fieldDestination].SetValue(initial.Destination)

	e.inputs[fieldName].Focus()
	return e
}

// Init implements tea.Model.
func (e *Editor) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (e *Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return e.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "esc", "ctrl+c":
		e.done = true
		return e, tea.Quit

	case "tab", "down":
		e.setFocus((e.focus + 1) % fieldCount)
		return e, nil

	case "shift+tab", "up":
		e.setFocus((e.focus + fieldCount - 1) % fieldCount)
		return e, nil

	case "enter":
		if e.focus < fieldCount-1 {
			e.setFocus(e.focus + 1)
			return e, nil
		}
		rule := e.buildRule()
		if err := config.ValidateRule(ruleNormalized(rule)); err != nil {
			e.err = err
			return e, nil
		}
		e.rule = ruleNormalized(rule)
		e.accepted = true
		e.done = true
		return e, tea.Quit
	}

	return e.updateInputs(msg)
}

// View implements tea.Model.
func (e *Editor) View() string {
	if e.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("New rule"))
	b.WriteString("\n\n")

	for i := range e.inputs {
		label := fieldLabels[i]
		if i == e.focus {
			b.WriteString(focusedStyle.Render(label))
		} else {
			b.WriteString(labelStyle.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(e.inputs[i].View())
		b.WriteString("\n")
	}

	if e.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("✗ %v", e.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/shift+tab: move · enter on last field: save · esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

// Rule returns the composed rule and whether the user accepted it.
func (e *Editor) Rule() (types.Rule, bool) {
	return e.rule, e.accepted
}

func (e *Editor) setFocus(focus int) {
	e.inputs[e.focus].Blur()
	e.focus = focus
	e.inputs[e.focus].Focus()
	e.err = nil
}

func (e *Editor) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)
	return e, cmd
}

func (e *Editor) buildRule() types.Rule {
	return types.Rule{
		Name: strings.TrimSpace(e.inputs[fieldName].Value()),
		Match: types.MatchSpec{
			Contains:   splitList(e.inputs[fieldContains].Value()),
			Extensions: splitList(e.inputs[fieldExtensions].Value()),
			Pattern:    strings.TrimSpace(e.inputs[fieldPattern].Value()),
		},
		Destination: strings.TrimSpace(e.inputs[fieldDestination].Value()),
	}
}

// ruleNormalized lowercases criteria the way config load does, so the
// editor and the file format agree on what a rule means.
func ruleNormalized(rule types.Rule) types.Rule {
	for i, token := range rule.Match.Contains {
		rule.Match.Contains[i] = strings.ToLower(token)
	}
	for i, ext := range rule.Match.Extensions {
		rule.Match.Extensions[i] = types.NormalizeExt(ext)
	}
	return rule
}

func splitList(value string) []string {
	var items []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// Run opens the editor in the terminal and blocks until the user saves or
// cancels.
func Run(initial types.Rule) (types.Rule, bool, error) {
	program := tea.NewProgram(NewEditor(initial))
	model, err := program.Run()
	if err != nil {
		return types.Rule{}, false, err
	}
	editor := model.(*Editor)
	rule, accepted := editor.Rule()
	return rule, accepted, nil
}
