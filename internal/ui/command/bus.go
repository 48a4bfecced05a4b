package command

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/screen-generator/internal/logging/events"
	"github.com/atomicstack/screen-generator/internal/settings"
)

const defaultSubmitTimeout = time.Second

// Submitter accepts actions for the settings reducer.
type Submitter interface {
	Submit(ctx context.Context, action settings.Action) error
}

// ResultMsg reports an action that could not be queued.
type ResultMsg struct {
	Action string
	Err    error
}

// Bus forwards UI actions to the settings view model.
type Bus struct {
	target  Submitter
	timeout time.Duration
}

// New initialises a command bus that submits to target.
func New(target Submitter) *Bus {
	return &Bus{target: target, timeout: defaultSubmitTimeout}
}

// Dispatch queues actions in order and returns a command carrying the first
// failure, or nil when every action was accepted. Submission happens on the
// caller's goroutine so consecutive key presses keep their order.
func (b *Bus) Dispatch(actions ...settings.Action) tea.Cmd {
	if b == nil || b.target == nil {
		return nil
	}
	for _, action := range actions {
		if action == nil {
			continue
		}
		name := action.Name()
		events.Command.Queue(name)
		ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
		err := b.target.Submit(ctx, action)
		cancel()
		if err == nil {
			continue
		}
		if errors.Is(err, settings.ErrClosed) {
			events.Command.Closed(name)
		} else {
			events.Command.Error(name, err)
		}
		res := ResultMsg{Action: name, Err: err}
		return func() tea.Msg { return res }
	}
	return nil
}
