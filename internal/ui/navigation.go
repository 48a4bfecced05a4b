package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/screen-generator/internal/logging/events"
	"github.com/atomicstack/screen-generator/internal/settings"
	uistate "github.com/atomicstack/screen-generator/internal/ui/state"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.ForceQuit) {
		return tea.Quit
	}
	switch m.mode {
	case ModeHelp:
		m.closeHelp()
		return nil
	case ModeConfirmQuit:
		return m.handleConfirmQuitKey(keyMsg)
	case ModeBrowse:
		return m.handleBrowseKey(keyMsg)
	}
	return nil
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	m.errMsg = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.requestQuit()
	case key.Matches(msg, m.keys.NextPanel):
		m.cycleFocus(1)
	case key.Matches(msg, m.keys.PrevPanel):
		m.cycleFocus(-1)
	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(func(l *uistate.List) bool { return l.MoveCursorUp() }, -1)
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(func(l *uistate.List) bool { return l.MoveCursorDown() }, 1)
	case key.Matches(msg, m.keys.PageUp):
		return m.moveCursor(func(l *uistate.List) bool { return l.MoveCursorPageUp(m.maxVisibleItems()) }, -int(detailFieldCount))
	case key.Matches(msg, m.keys.PageDown):
		return m.moveCursor(func(l *uistate.List) bool { return l.MoveCursorPageDown(m.maxVisibleItems()) }, int(detailFieldCount))
	case key.Matches(msg, m.keys.Home):
		return m.moveCursor(func(l *uistate.List) bool { return l.MoveCursorHome() }, -int(detailFieldCount))
	case key.Matches(msg, m.keys.End):
		return m.moveCursor(func(l *uistate.List) bool { return l.MoveCursorEnd() }, int(detailFieldCount))
	case key.Matches(msg, m.keys.Add):
		return m.addItem()
	case key.Matches(msg, m.keys.Remove):
		return m.removeItem()
	case key.Matches(msg, m.keys.MoveUp):
		return m.moveItem(-1)
	case key.Matches(msg, m.keys.MoveDown):
		return m.moveItem(1)
	case key.Matches(msg, m.keys.Edit):
		return m.activate()
	case key.Matches(msg, m.keys.Template):
		return m.openTemplateEditor()
	case key.Matches(msg, m.keys.PrevValue):
		return m.cycleValue(-1)
	case key.Matches(msg, m.keys.NextValue):
		return m.cycleValue(1)
	case key.Matches(msg, m.keys.Apply):
		return m.dispatch(settings.ApplySettings{})
	case key.Matches(msg, m.keys.Reset):
		return m.dispatch(settings.ResetSettings{})
	case key.Matches(msg, m.keys.Help):
		return m.dispatch(settings.ClickHelp{})
	case key.Matches(msg, m.keys.Find):
		return m.startFind()
	}
	return nil
}

func (m *Model) handleConfirmQuitKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y", "q":
		return tea.Quit
	default:
		m.mode = ModeBrowse
		m.forceClearInfo()
		return nil
	}
}

// requestQuit exits straight away unless there are unapplied edits, in which
// case a second confirmation is required.
func (m *Model) requestQuit() tea.Cmd {
	events.UI.QuitGuard(m.state.IsModified)
	if !m.state.IsModified {
		return tea.Quit
	}
	m.mode = ModeConfirmQuit
	return nil
}

func (m *Model) setFocus(p Panel) {
	if m.focus == p {
		return
	}
	m.focus = p
	events.UI.Focus(p.String())
}

func (m *Model) cycleFocus(delta int) {
	panels := []Panel{PanelCategories, PanelElements}
	if m.state.SelectedElement != nil {
		panels = append(panels, PanelDetails)
	}
	idx := 0
	for i, p := range panels {
		if p == m.focus {
			idx = i
		}
	}
	m.setFocus(panels[wrapIndex(idx+delta, len(panels))])
}

// moveCursor moves the focused list and selects the row under the cursor. In
// the details panel it steps through the fields by fieldDelta instead.
func (m *Model) moveCursor(move func(*uistate.List) bool, fieldDelta int) tea.Cmd {
	switch m.focus {
	case PanelCategories:
		if !move(m.categories) {
			return nil
		}
		m.syncViewports()
		if item, ok := m.categories.Current(); ok {
			return m.dispatch(settings.SelectCategory{ID: item.ID})
		}
	case PanelElements:
		if !move(m.elements) {
			return nil
		}
		m.syncViewports()
		if item, ok := m.elements.Current(); ok {
			return m.dispatch(settings.SelectScreenElement{ID: item.ID})
		}
	case PanelDetails:
		next := int(m.field) + fieldDelta
		if next < 0 {
			next = 0
		}
		if next >= int(detailFieldCount) {
			next = int(detailFieldCount) - 1
		}
		m.field = detailField(next)
	}
	return nil
}

func (m *Model) addItem() tea.Cmd {
	switch m.focus {
	case PanelCategories:
		return m.dispatch(settings.AddCategory{})
	case PanelElements:
		if m.state.SelectedCategory == nil {
			m.setInfo("Select a category first")
			return nil
		}
		return m.dispatch(settings.AddScreenElement{})
	}
	return nil
}

func (m *Model) removeItem() tea.Cmd {
	switch m.focus {
	case PanelCategories:
		if item, ok := m.categories.Current(); ok {
			return m.dispatch(settings.RemoveCategory{ID: item.ID})
		}
	case PanelElements:
		if item, ok := m.elements.Current(); ok {
			return m.dispatch(settings.RemoveScreenElement{ID: item.ID})
		}
	}
	return nil
}

func (m *Model) moveItem(delta int) tea.Cmd {
	switch m.focus {
	case PanelCategories:
		item, ok := m.categories.Current()
		if !ok {
			return nil
		}
		if delta < 0 {
			return m.dispatch(settings.MoveUpCategory{ID: item.ID})
		}
		return m.dispatch(settings.MoveDownCategory{ID: item.ID})
	case PanelElements:
		item, ok := m.elements.Current()
		if !ok {
			return nil
		}
		if delta < 0 {
			return m.dispatch(settings.MoveUpScreenElement{ID: item.ID})
		}
		return m.dispatch(settings.MoveDownScreenElement{ID: item.ID})
	}
	return nil
}

// activate handles enter: rename a category, open an element's details, or
// edit the focused detail field.
func (m *Model) activate() tea.Cmd {
	switch m.focus {
	case PanelCategories:
		if m.state.SelectedCategory == nil {
			return nil
		}
		return m.startEditing(editCategoryName, detailName, m.state.SelectedCategory.Name)
	case PanelElements:
		if m.state.SelectedElement == nil {
			return nil
		}
		m.setFocus(PanelDetails)
	case PanelDetails:
		e := m.state.SelectedElement
		if e == nil {
			return nil
		}
		if m.field.isEnum() {
			return m.dispatch(m.field.cycleAction(*e, 1))
		}
		return m.startEditing(editElementField, m.field, m.field.value(*e))
	}
	return nil
}

// openTemplateEditor opens the template editor for the selected element from any
// panel.
func (m *Model) openTemplateEditor() tea.Cmd {
	e := m.state.SelectedElement
	if e == nil {
		return nil
	}
	m.setFocus(PanelDetails)
	m.field = detailFileName
	return m.startEditing(editTemplate, detailFileName, e.FileNameTemplate)
}

func (m *Model) cycleValue(delta int) tea.Cmd {
	if m.focus != PanelDetails || !m.field.isEnum() || m.state.SelectedElement == nil {
		return nil
	}
	return m.dispatch(m.field.cycleAction(*m.state.SelectedElement, delta))
}

func (m *Model) syncViewports() {
	visible := m.maxVisibleItems()
	m.categories.EnsureCursorVisible(visible)
	m.elements.EnsureCursorVisible(visible)
	m.find.results.EnsureCursorVisible(visible)
}
