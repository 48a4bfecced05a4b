package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for tests. Commands returned
// by Update are handed back instead of executed, since most of them block on
// the view model's channels.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and returns the resulting command.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	if h.model == nil {
		return nil
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	return cmd
}

// Keys sends each key in turn. Single runes are sent as rune keys, anything
// else is looked up by name ("enter", "ctrl+s", "down").
func (h *Harness) Keys(keys ...string) {
	for _, k := range keys {
		h.Send(KeyMsg(k))
	}
}

// Type sends text one rune at a time.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Sync hands a snapshot to the model as if it arrived from the view model.
func (h *Harness) Sync(src Source) {
	h.Send(stateMsg{state: src.State()})
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

var namedKeys = map[string]tea.KeyType{
	"enter":      tea.KeyEnter,
	"esc":        tea.KeyEsc,
	"tab":        tea.KeyTab,
	"shift+tab":  tea.KeyShiftTab,
	"up":         tea.KeyUp,
	"down":       tea.KeyDown,
	"left":       tea.KeyLeft,
	"right":      tea.KeyRight,
	"shift+up":   tea.KeyShiftUp,
	"shift+down": tea.KeyShiftDown,
	"home":       tea.KeyHome,
	"end":        tea.KeyEnd,
	"pgup":       tea.KeyPgUp,
	"pgdown":     tea.KeyPgDown,
	"delete":     tea.KeyDelete,
	"backspace":  tea.KeyBackspace,
	"ctrl+c":     tea.KeyCtrlC,
	"ctrl+r":     tea.KeyCtrlR,
	"ctrl+s":     tea.KeyCtrlS,
}

// KeyMsg builds the tea.KeyMsg Bubble Tea would deliver for k.
func KeyMsg(k string) tea.KeyMsg {
	if t, ok := namedKeys[k]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}
