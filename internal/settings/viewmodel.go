package settings

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/atomicstack/screen-generator/internal/logging"
	"github.com/atomicstack/screen-generator/internal/logging/events"
	"github.com/atomicstack/screen-generator/internal/model"
)

const (
	defaultQueueSize    = 64
	defaultEffectBuffer = 8
)

type options struct {
	newID        func() string
	queueSize    int
	effectBuffer int
	onReject     func(Action, error)
}

// Option customises a ViewModel.
type Option func(*options)

// WithIDSource overrides the id generator used for new categories and
// elements.
func WithIDSource(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

// WithQueueSize sets how many submitted actions may wait for the reducer.
func WithQueueSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.queueSize = n
		}
	}
}

// WithEffectBuffer sets how many undelivered effects are retained before
// the reducer waits for a reader.
func WithEffectBuffer(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.effectBuffer = n
		}
	}
}

// WithRejectHandler is called from the reducer goroutine for every rejected
// action, after it has been logged.
func WithRejectHandler(fn func(Action, error)) Option {
	return func(o *options) { o.onReject = fn }
}

// ViewModel owns a Session and applies submitted actions to it one at a time
// in submission order. Snapshots are conflated: a slow reader only sees the
// latest one. Effects are delivered exactly once while the ViewModel is open.
type ViewModel struct {
	reducer  *Reducer
	session  *Session
	onReject func(Action, error)

	actions chan Action
	states  chan State
	effects chan Effect
	current atomic.Pointer[State]

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewViewModel opens an edit session over loaded and starts processing.
// Callers must Close the ViewModel when the editor goes away.
func NewViewModel(loaded model.Settings, persister Persister, opts ...Option) *ViewModel {
	o := options{queueSize: defaultQueueSize, effectBuffer: defaultEffectBuffer}
	for _, opt := range opts {
		opt(&o)
	}
	ctx, cancel := context.WithCancel(context.Background())
	vm := &ViewModel{
		reducer:  NewReducer(persister, o.newID),
		session:  NewSession(loaded),
		onReject: o.onReject,
		actions:  make(chan Action, o.queueSize),
		states:   make(chan State, 1),
		effects:  make(chan Effect, o.effectBuffer),
		ctx:      ctx,
		cancel:   cancel,
	}
	events.Settings.Open(len(vm.session.Working.Categories), vm.session.SelectedCategoryID)
	vm.publish(Project(vm.session))

	vm.wg.Add(1)
	go vm.run()
	return vm
}

// Submit queues action for the reducer. It is safe for concurrent use and
// blocks only while the queue is full. A nil action is refused without
// being queued.
func (vm *ViewModel) Submit(ctx context.Context, action Action) error {
	if action == nil {
		return ErrUnknownAction
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if vm.ctx.Err() != nil {
		return ErrClosed
	}
	select {
	case <-vm.ctx.Done():
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	case vm.actions <- action:
		return nil
	}
}

// State returns the latest published snapshot.
func (vm *ViewModel) State() State {
	return *vm.current.Load()
}

// States delivers snapshots. The channel holds at most one pending value and
// is closed by Close.
func (vm *ViewModel) States() <-chan State {
	return vm.states
}

// Effects delivers one-shot effects. Closed by Close.
func (vm *ViewModel) Effects() <-chan Effect {
	return vm.effects
}

// Close stops processing. Actions still queued are discarded unapplied.
func (vm *ViewModel) Close() {
	vm.closeOnce.Do(func() {
		vm.cancel()
		vm.wg.Wait()
		discarded := len(vm.actions)
		for len(vm.actions) > 0 {
			<-vm.actions
		}
		events.Settings.Close(discarded)
		close(vm.states)
		close(vm.effects)
	})
}

func (vm *ViewModel) run() {
	defer vm.wg.Done()
	for {
		select {
		case <-vm.ctx.Done():
			return
		case action := <-vm.actions:
			if vm.ctx.Err() != nil {
				return
			}
			vm.apply(action)
		}
	}
}

func (vm *ViewModel) apply(action Action) {
	name := "<nil>"
	if action != nil {
		name = action.Name()
	}
	events.Settings.Action(name, action)
	effects, err := vm.reducer.Reduce(vm.session, action)
	if err != nil {
		events.Settings.Reject(name, err)
		logging.Error(fmt.Errorf("reject %s: %w", name, err))
		if vm.onReject != nil {
			vm.onReject(action, err)
		}
		return
	}
	st := Project(vm.session)
	events.Settings.Project(st.SelectedCategoryID, st.SelectedElementID, st.FileNameRendered, st.IsModified)
	vm.publish(st)
	for _, effect := range effects {
		vm.emit(effect)
	}
}

// publish replaces any unread snapshot with st. Only the reducer goroutine
// (and the constructor, before it starts) call this.
func (vm *ViewModel) publish(st State) {
	vm.current.Store(&st)
	for {
		select {
		case vm.states <- st:
			return
		default:
			select {
			case <-vm.states:
			default:
			}
		}
	}
}

// emit waits for room in the effects buffer. Only shutdown drops an effect.
func (vm *ViewModel) emit(effect Effect) {
	select {
	case vm.effects <- effect:
		events.Settings.Effect(effect.String())
	case <-vm.ctx.Done():
		events.Settings.EffectDropped(effect.String())
	}
}
