package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/screen-generator/internal/logging/events"
	"github.com/atomicstack/screen-generator/internal/settings"
	"github.com/atomicstack/screen-generator/internal/ui/command"
	uistate "github.com/atomicstack/screen-generator/internal/ui/state"
)

type editTarget int

const (
	editNone editTarget = iota
	editCategoryName
	editElementField
	editTemplate
)

// editor is the single-line field editor. Every change is submitted as it is
// typed; initial is restored when the edit is cancelled.
type editor struct {
	input   textinput.Model
	target  editTarget
	field   detailField
	initial string
}

func (e editor) label() string {
	switch e.target {
	case editCategoryName:
		return "Category name"
	case editTemplate:
		return "Template"
	}
	return e.field.String()
}

func (e editor) changeAction(text string) settings.Action {
	switch e.target {
	case editCategoryName:
		return settings.ChangeCategoryName{Text: text}
	case editTemplate:
		return settings.ChangeTemplate{Text: text}
	}
	return e.field.changeAction(text)
}

type finder struct {
	input   textinput.Model
	all     []uistate.Item
	results *uistate.List
}

// handleActiveInput routes messages to the field editor or the find prompt
// while one of them is open.
func (m *Model) handleActiveInput(msg tea.Msg) (bool, tea.Cmd) {
	switch m.mode {
	case ModeEdit:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return true, m.handleEditKey(keyMsg)
		}
		if isInputMsg(msg) {
			var cmd tea.Cmd
			m.editor.input, cmd = m.editor.input.Update(msg)
			return true, cmd
		}
	case ModeFind:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return true, m.handleFindKey(keyMsg)
		}
		if isInputMsg(msg) {
			var cmd tea.Cmd
			m.find.input, cmd = m.find.input.Update(msg)
			return true, cmd
		}
	}
	return false, nil
}

// isInputMsg reports whether msg belongs to the text input itself (cursor
// blinks and the like) rather than to the model's handler table.
func isInputMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case stateMsg, effectMsg, sourceDoneMsg, saveResultMsg, rejectionMsg, command.ResultMsg, tea.WindowSizeMsg:
		return false
	}
	return true
}

func (m *Model) startEditing(target editTarget, field detailField, initial string) tea.Cmd {
	m.editor.target = target
	m.editor.field = field
	m.editor.initial = initial
	m.editor.input.SetValue(initial)
	m.editor.input.CursorEnd()
	m.mode = ModeEdit
	m.errMsg = ""
	events.UI.EditStart(m.editor.label(), initial)
	return m.editor.input.Focus()
}

// stopEditing closes the editor. When revert is set and the text changed,
// the initial value is submitted again.
func (m *Model) stopEditing(revert bool) tea.Cmd {
	var cmd tea.Cmd
	if revert && m.editor.input.Value() != m.editor.initial {
		cmd = m.dispatch(m.editor.changeAction(m.editor.initial))
	}
	events.UI.EditDone(m.editor.label(), revert)
	m.editor.input.Blur()
	m.editor.target = editNone
	m.mode = ModeBrowse
	return cmd
}

func (m *Model) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEnter, tea.KeyTab:
		return m.stopEditing(false)
	case tea.KeyEsc:
		return m.stopEditing(true)
	}
	before := m.editor.input.Value()
	var cmd tea.Cmd
	m.editor.input, cmd = m.editor.input.Update(msg)
	after := m.editor.input.Value()
	if after == before {
		return cmd
	}
	return batch(nonNil(cmd, m.dispatch(m.editor.changeAction(after))))
}

func (m *Model) startFind() tea.Cmd {
	var all []uistate.Item
	for _, c := range m.state.Categories {
		for _, e := range c.Elements {
			all = append(all, uistate.Item{ID: e.ID, Group: c.ID, Label: e.Name, Detail: c.Name})
		}
	}
	m.find.all = all
	m.find.input.SetValue("")
	m.mode = ModeFind
	m.errMsg = ""
	m.refreshFind()
	return m.find.input.Focus()
}

func (m *Model) refreshFind() {
	query := m.find.input.Value()
	matches := uistate.FindItems(m.find.all, query)
	m.find.results.SetItems(matches, "")
	if len(matches) > 0 {
		m.find.results.Cursor = 0
	}
	m.find.results.EnsureCursorVisible(m.maxVisibleItems())
	events.Find.Query(query, len(matches))
}

func (m *Model) stopFind() {
	m.find.input.Blur()
	m.mode = ModeBrowse
}

func (m *Model) handleFindKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEsc:
		m.stopFind()
		return nil
	case tea.KeyUp:
		m.find.results.MoveCursorUp()
		m.find.results.EnsureCursorVisible(m.maxVisibleItems())
		return nil
	case tea.KeyDown:
		m.find.results.MoveCursorDown()
		m.find.results.EnsureCursorVisible(m.maxVisibleItems())
		return nil
	case tea.KeyEnter:
		item, ok := m.find.results.Current()
		m.stopFind()
		if !ok {
			return nil
		}
		events.Find.Select(item.Group, item.ID)
		m.setFocus(PanelElements)
		return m.dispatch(settings.SelectCategory{ID: item.Group}, settings.SelectScreenElement{ID: item.ID})
	}
	before := m.find.input.Value()
	var cmd tea.Cmd
	m.find.input, cmd = m.find.input.Update(msg)
	if m.find.input.Value() != before {
		m.refreshFind()
	}
	return cmd
}

func nonNil(cmds ...tea.Cmd) []tea.Cmd {
	out := cmds[:0]
	for _, cmd := range cmds {
		if cmd != nil {
			out = append(out, cmd)
		}
	}
	return out
}
