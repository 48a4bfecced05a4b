package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/screen-generator/internal/logging/events"
	"github.com/atomicstack/screen-generator/internal/settings"
	"github.com/atomicstack/screen-generator/internal/store"
	"github.com/atomicstack/screen-generator/internal/ui/command"
	uistate "github.com/atomicstack/screen-generator/internal/ui/state"
)

type stateMsg struct {
	state settings.State
}

type effectMsg struct {
	effect settings.Effect
}

type sourceDoneMsg struct{}

type saveResultMsg struct {
	result store.SaveResult
}

type rejectionMsg struct {
	err error
}

func waitForState(src Source) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-src.States()
		if !ok {
			return sourceDoneMsg{}
		}
		return stateMsg{state: st}
	}
}

func waitForEffect(src Source) tea.Cmd {
	return func() tea.Msg {
		effect, ok := <-src.Effects()
		if !ok {
			return nil
		}
		return effectMsg{effect: effect}
	}
}

func waitForSaveResult(ch <-chan store.SaveResult) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-ch
		if !ok {
			return nil
		}
		return saveResultMsg{result: res}
	}
}

func waitForRejection(ch <-chan error) tea.Cmd {
	return func() tea.Msg {
		err, ok := <-ch
		if !ok {
			return nil
		}
		return rejectionMsg{err: err}
	}
}

func (m *Model) handleStateMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(stateMsg)
	if !ok {
		return nil
	}
	m.applyState(update.state)
	if m.source != nil {
		return waitForState(m.source)
	}
	return nil
}

func (m *Model) handleSourceDoneMsg(tea.Msg) tea.Cmd {
	m.source = nil
	return tea.Quit
}

func (m *Model) handleEffectMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(effectMsg)
	if !ok {
		return nil
	}
	if update.effect == settings.ShowHelp {
		m.openHelp()
	}
	if m.source != nil {
		return waitForEffect(m.source)
	}
	return nil
}

func (m *Model) handleSaveResultMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(saveResultMsg)
	if !ok {
		return nil
	}
	if update.result.Err != nil {
		m.errMsg = fmt.Sprintf("save failed: %v", update.result.Err)
	} else {
		m.errMsg = ""
		m.setInfo(fmt.Sprintf("Saved %d categories", update.result.Categories))
	}
	if m.saveResults != nil {
		return waitForSaveResult(m.saveResults)
	}
	return nil
}

func (m *Model) handleRejectionMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(rejectionMsg)
	if !ok {
		return nil
	}
	if update.err != nil {
		m.errMsg = update.err.Error()
	}
	if m.rejections != nil {
		return waitForRejection(m.rejections)
	}
	return nil
}

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.ResultMsg)
	if !ok || res.Err == nil {
		return nil
	}
	m.errMsg = fmt.Sprintf("%s: %v", res.Action, res.Err)
	return nil
}

// applyState replaces the on-screen snapshot. Nothing is submitted while the
// lists and editors are brought in line with st.
func (m *Model) applyState(st settings.State) {
	m.syncing = true
	defer func() { m.syncing = false }()

	m.state = st
	categories := make([]uistate.Item, len(st.Categories))
	for i, c := range st.Categories {
		categories[i] = uistate.Item{ID: c.ID, Label: c.Name}
	}
	m.categories.SetItems(categories, st.SelectedCategoryID)

	var elements []uistate.Item
	if st.SelectedCategory != nil {
		elements = make([]uistate.Item, len(st.SelectedCategory.Elements))
		for i, e := range st.SelectedCategory.Elements {
			elements[i] = uistate.Item{ID: e.ID, Group: st.SelectedCategory.ID, Label: e.Name}
		}
	}
	m.elements.SetItems(elements, st.SelectedElementID)

	if m.focus == PanelDetails && st.SelectedElement == nil {
		m.setFocus(PanelElements)
	}
	if m.mode == ModeEdit && !m.editTargetExists() {
		m.stopEditing(false)
	}
	if m.mode == ModeFind {
		m.refreshFind()
	}
	m.syncViewports()
}

func (m *Model) editTargetExists() bool {
	switch m.editor.target {
	case editCategoryName:
		return m.state.SelectedCategory != nil
	case editElementField, editTemplate:
		return m.state.SelectedElement != nil
	default:
		return false
	}
}

func (m *Model) openHelp() {
	if m.mode == ModeEdit {
		m.stopEditing(false)
	}
	m.mode = ModeHelp
	m.help.ShowAll = true
	events.UI.Help(true)
}

func (m *Model) closeHelp() {
	m.mode = ModeBrowse
	m.help.ShowAll = false
	events.UI.Help(false)
}
