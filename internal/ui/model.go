package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/screen-generator/internal/settings"
	"github.com/atomicstack/screen-generator/internal/store"
	"github.com/atomicstack/screen-generator/internal/theme"
	"github.com/atomicstack/screen-generator/internal/ui/command"
	uistate "github.com/atomicstack/screen-generator/internal/ui/state"
)

type Mode int

const (
	ModeBrowse Mode = iota
	ModeEdit
	ModeFind
	ModeHelp
	ModeConfirmQuit
)

func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModeEdit:
		return "edit"
	case ModeFind:
		return "find"
	case ModeHelp:
		return "help"
	case ModeConfirmQuit:
		return "confirm-quit"
	default:
		return "unknown"
	}
}

// Panel identifies the focused column.
type Panel int

const (
	PanelCategories Panel = iota
	PanelElements
	PanelDetails
)

func (p Panel) String() string {
	switch p {
	case PanelCategories:
		return "categories"
	case PanelElements:
		return "elements"
	case PanelDetails:
		return "details"
	default:
		return "unknown"
	}
}

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Source is the read side of the settings view model.
type Source interface {
	State() settings.State
	States() <-chan settings.State
	Effects() <-chan settings.Effect
}

// Config carries the presentation options and the optional status feeds.
type Config struct {
	Width       int
	Height      int
	ShowFooter  bool
	SaveResults <-chan store.SaveResult
	Rejections  <-chan error
}

// Model implements the Bubble Tea model for the settings editor.
type Model struct {
	source      Source
	bus         *command.Bus
	saveResults <-chan store.SaveResult
	rejections  <-chan error

	state   settings.State
	syncing bool

	mode  Mode
	focus Panel

	categories *uistate.List
	elements   *uistate.List
	field      detailField

	editor editor
	find   finder

	keys keyMap
	help help.Model

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the editor around src. Actions go out through bus.
func NewModel(src Source, bus *command.Bus, cfg Config) *Model {
	m := &Model{
		source:      src,
		bus:         bus,
		saveResults: cfg.SaveResults,
		rejections:  cfg.Rejections,
		categories:  uistate.NewList(),
		elements:    uistate.NewList(),
		keys:        defaultKeyMap(),
		help:        help.New(),
		showFooter:  cfg.ShowFooter,
		editor:      editor{input: newInput()},
		find:        finder{input: newInput(), results: uistate.NewList()},
	}
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	if src != nil {
		m.applyState(src.State())
	}
	return m
}

func newInput() textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	if styles.Prompt != nil {
		in.PromptStyle = *styles.Prompt
	}
	if styles.Cursor != nil {
		in.Cursor.Style = *styles.Cursor
	}
	return in
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.source != nil {
		cmds = append(cmds, waitForState(m.source), waitForEffect(m.source))
	}
	if m.saveResults != nil {
		cmds = append(cmds, waitForSaveResult(m.saveResults))
	}
	if m.rejections != nil {
		cmds = append(cmds, waitForRejection(m.rejections))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handled, cmd := m.handleActiveInput(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, batch(cmds)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, batch(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(stateMsg{}):          m.handleStateMsg,
		reflect.TypeOf(effectMsg{}):         m.handleEffectMsg,
		reflect.TypeOf(sourceDoneMsg{}):     m.handleSourceDoneMsg,
		reflect.TypeOf(saveResultMsg{}):     m.handleSaveResultMsg,
		reflect.TypeOf(rejectionMsg{}):      m.handleRejectionMsg,
		reflect.TypeOf(command.ResultMsg{}): m.handleCommandResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// dispatch forwards actions to the view model unless the model is replaying
// a snapshot.
func (m *Model) dispatch(actions ...settings.Action) tea.Cmd {
	if m.syncing {
		return nil
	}
	return m.bus.Dispatch(actions...)
}

// State returns the snapshot currently on screen.
func (m *Model) State() settings.State {
	return m.state
}

// Mode reports the active interaction mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Focus reports the focused panel.
func (m *Model) Focus() Panel {
	return m.focus
}

func batch(cmds []tea.Cmd) tea.Cmd {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}
