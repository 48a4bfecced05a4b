package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/screen-generator/internal/logging"
	"github.com/atomicstack/screen-generator/internal/logging/events"
	"github.com/atomicstack/screen-generator/internal/settings"
	"github.com/atomicstack/screen-generator/internal/store"
	"github.com/atomicstack/screen-generator/internal/ui"
	"github.com/atomicstack/screen-generator/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	SettingsPath string
	StoreKind    store.Kind
	SaveInterval time.Duration
	Width        int
	Height       int
	ShowFooter   bool

	// NewID overrides id generation for new categories and elements.
	NewID func() string `json:"-"`
}

// Session wires a store, its background saver and the settings view model
// into one editor session.
type Session struct {
	Store      store.Store
	Saver      *store.Saver
	ViewModel  *settings.ViewModel
	Rejections <-chan error
}

// Open loads the stored settings (or the defaults) and starts a session.
func Open(ctx context.Context, cfg Config) (*Session, error) {
	st, err := store.Open(ctx, cfg.StoreKind, cfg.SettingsPath)
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	loaded, err := store.LoadOrDefault(ctx, st, cfg.SettingsPath, cfg.NewID)
	if err != nil {
		st.Close() //nolint:errcheck
		return nil, fmt.Errorf("load settings: %w", err)
	}

	rejections := make(chan error, 8)
	saver := store.NewSaver(st, cfg.SaveInterval)
	opts := []settings.Option{
		settings.WithRejectHandler(func(action settings.Action, err error) {
			select {
			case rejections <- fmt.Errorf("%s: %w", actionName(action), err):
			default:
			}
		}),
	}
	if cfg.NewID != nil {
		opts = append(opts, settings.WithIDSource(cfg.NewID))
	}
	vm := settings.NewViewModel(loaded, saver, opts...)
	return &Session{Store: st, Saver: saver, ViewModel: vm, Rejections: rejections}, nil
}

// Model builds the Bubble Tea model for the session.
func (s *Session) Model(cfg Config) *ui.Model {
	return ui.NewModel(s.ViewModel, command.New(s.ViewModel), ui.Config{
		Width:       cfg.Width,
		Height:      cfg.Height,
		ShowFooter:  cfg.ShowFooter,
		SaveResults: s.Saver.Results(),
		Rejections:  s.Rejections,
	})
}

// Close stops the view model first so no further saves are queued, then
// flushes the saver and releases the store.
func (s *Session) Close() error {
	events.App.Stop(s.ViewModel.State().IsModified)
	s.ViewModel.Close()
	s.Saver.Close()
	return s.Store.Close()
}

// Run bootstraps and executes the Bubble Tea program.
func Run(ctx context.Context, cfg Config) error {
	session, err := Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			logging.Error(fmt.Errorf("close settings store: %w", cerr))
		}
	}()
	program := tea.NewProgram(session.Model(cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func actionName(action settings.Action) string {
	if action == nil {
		return "<nil>"
	}
	return action.Name()
}
