package settings

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atomicstack/screen-generator/internal/model"
	"github.com/atomicstack/screen-generator/internal/testutil"
)

const waitTimeout = 2 * time.Second

// awaitState reads snapshots until match reports true.
func awaitState(t *testing.T, vm *ViewModel, match func(State) bool) State {
	t.Helper()
	deadline := time.After(waitTimeout)
	for {
		select {
		case st, ok := <-vm.States():
			if !ok {
				t.Fatalf("states channel closed while waiting")
			}
			if match(st) {
				return st
			}
		case <-deadline:
			t.Fatalf("timed out waiting for state; last %#v", vm.State())
		}
	}
}

func submit(t *testing.T, vm *ViewModel, actions ...Action) {
	t.Helper()
	for _, a := range actions {
		if err := vm.Submit(context.Background(), a); err != nil {
			t.Fatalf("submit %s: %v", a.Name(), err)
		}
	}
}

type chanPersister chan model.Settings

func (c chanPersister) Save(s model.Settings) { c <- s }

func TestViewModelPublishesInitialState(t *testing.T) {
	vm := NewViewModel(coreSettings(), nil)
	defer vm.Close()
	st := awaitState(t, vm, func(State) bool { return true })
	if st.SelectedCategoryID != "core" || st.IsModified {
		t.Fatalf("unexpected initial state %#v", st)
	}
	if vm.State().SelectedCategoryID != "core" {
		t.Fatalf("expected State() to return the initial snapshot")
	}
}

func TestViewModelScenario(t *testing.T) {
	vm := NewViewModel(coreSettings(), nil, WithIDSource(sequentialIDs("el-")))
	defer vm.Close()

	submit(t, vm, AddScreenElement{}, ChangeName{Text: "B"}, ChangeTemplate{Text: "${Name}Impl.kt"})
	st := awaitState(t, vm, func(st State) bool { return st.FileNameRendered == "BImpl.kt" })
	if !st.IsModified || st.SelectedElementID != "el-1" {
		t.Fatalf("unexpected state %#v", st)
	}

	submit(t, vm, ResetSettings{})
	st = awaitState(t, vm, func(st State) bool { return !st.IsModified })
	if len(st.Categories[0].Elements) != 1 || st.Categories[0].Elements[0].Name != "A" {
		t.Fatalf("expected original element restored, got %#v", st.Categories[0].Elements)
	}
}

func TestViewModelApplyPersistsWithoutBlocking(t *testing.T) {
	saved := make(chanPersister, 1)
	vm := NewViewModel(coreSettings(), saved)
	defer vm.Close()

	submit(t, vm, ChangeCategoryName{Text: "Renamed"}, ApplySettings{})
	select {
	case s := <-saved:
		if s.Categories[0].Name != "Renamed" {
			t.Fatalf("unexpected persisted settings %#v", s)
		}
	case <-time.After(waitTimeout):
		t.Fatalf("expected settings persisted")
	}
	awaitState(t, vm, func(st State) bool { return !st.IsModified && st.Categories[0].Name == "Renamed" })
}

func TestViewModelDeliversHelpEffectOnce(t *testing.T) {
	vm := NewViewModel(coreSettings(), nil)
	defer vm.Close()

	submit(t, vm, ClickHelp{}, ClickHelp{})
	for i := 0; i < 2; i++ {
		select {
		case e := <-vm.Effects():
			if e != ShowHelp {
				t.Fatalf("unexpected effect %v", e)
			}
		case <-time.After(waitTimeout):
			t.Fatalf("expected effect %d", i)
		}
	}
	// nothing else is replayed
	submit(t, vm, SelectCategory{ID: "core"})
	awaitState(t, vm, func(st State) bool { return st.SelectedCategoryID == "core" })
	select {
	case e := <-vm.Effects():
		t.Fatalf("unexpected replayed effect %v", e)
	default:
	}
}

func TestViewModelDeliversEveryEffectPastBuffer(t *testing.T) {
	vm := NewViewModel(coreSettings(), nil, WithEffectBuffer(1))
	defer vm.Close()
	submit(t, vm, ClickHelp{}, ClickHelp{}, ClickHelp{}, ChangeCategoryName{Text: "done"})
	for i := 0; i < 3; i++ {
		select {
		case e := <-vm.Effects():
			if e != ShowHelp {
				t.Fatalf("unexpected effect %v", e)
			}
		case <-time.After(waitTimeout):
			t.Fatalf("expected effect %d of 3", i+1)
		}
	}
	awaitState(t, vm, func(st State) bool { return st.Categories[0].Name == "done" })
	if got := len(vm.Effects()); got != 0 {
		t.Fatalf("expected no extra effects, got %d", got)
	}
}

func TestViewModelCloseUnblocksPendingEffect(t *testing.T) {
	testutil.IsolateLogs(t)
	vm := NewViewModel(coreSettings(), nil, WithEffectBuffer(1))
	submit(t, vm, ClickHelp{}, ClickHelp{})
	closed := make(chan struct{})
	go func() {
		vm.Close()
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(waitTimeout):
		t.Fatalf("Close blocked on an unread effect")
	}
}

func TestViewModelRefusesNilAction(t *testing.T) {
	testutil.IsolateLogs(t)
	var calls int32
	vm := NewViewModel(coreSettings(), nil, WithRejectHandler(func(a Action, _ error) {
		_ = a.Name()
		atomic.AddInt32(&calls, 1)
	}))
	defer vm.Close()

	if err := vm.Submit(context.Background(), nil); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
	// the reducer keeps running after the refusal
	submit(t, vm, ChangeCategoryName{Text: "after"})
	awaitState(t, vm, func(st State) bool { return st.Categories[0].Name == "after" })
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Fatalf("expected no reject callback, got %d", got)
	}
}

func TestViewModelReportsRejectedActions(t *testing.T) {
	testutil.IsolateLogs(t)
	rejected := make(chan error, 1)
	vm := NewViewModel(coreSettings(), nil, WithRejectHandler(func(_ Action, err error) { rejected <- err }))
	defer vm.Close()

	submit(t, vm, SelectScreenElement{ID: "a"})
	awaitState(t, vm, func(st State) bool { return st.SelectedElementID == "a" })
	submit(t, vm, ChangeFileType{Index: 42})
	select {
	case err := <-rejected:
		if !errors.Is(err, ErrInvalidEnumIndex) {
			t.Fatalf("expected ErrInvalidEnumIndex, got %v", err)
		}
	case <-time.After(waitTimeout):
		t.Fatalf("expected rejection")
	}
	select {
	case st := <-vm.States():
		t.Fatalf("expected no snapshot for a rejected action, got %#v", st)
	default:
	}
	if vm.State().SelectedElement.FileType != model.FileTypeKotlin {
		t.Fatalf("expected file type untouched")
	}
}

func TestViewModelAppliesConcurrentSubmissionsExactlyOnce(t *testing.T) {
	const emitters = 8
	const perEmitter = 25
	vm := NewViewModel(model.Settings{}, nil, WithQueueSize(4))
	defer vm.Close()

	var wg sync.WaitGroup
	for i := 0; i < emitters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < perEmitter; n++ {
				if err := vm.Submit(context.Background(), AddCategory{}); err != nil {
					t.Errorf("submit: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	st := awaitState(t, vm, func(st State) bool { return len(st.Categories) == emitters*perEmitter })
	if err := (model.Settings{Categories: st.Categories}).Validate(); err != nil {
		t.Fatalf("expected unique ids: %v", err)
	}
}

func TestViewModelKeepsSubmissionOrder(t *testing.T) {
	const renames = 200
	vm := NewViewModel(coreSettings(), nil)
	defer vm.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for n := 1; n <= renames; n++ {
			if err := vm.Submit(context.Background(), ChangeCategoryName{Text: fmt.Sprintf("%03d", n)}); err != nil {
				t.Errorf("submit: %v", err)
				return
			}
		}
	}()

	// snapshots are conflated, so some values are skipped, but they must
	// never go backwards
	last := ""
	awaitState(t, vm, func(st State) bool {
		name := st.Categories[0].Name
		if name == "Core" {
			return false
		}
		if name < last {
			t.Fatalf("snapshot went backwards: %q after %q", name, last)
		}
		last = name
		return name == fmt.Sprintf("%03d", renames)
	})
	<-done
}

func TestViewModelSubmitAfterCloseFails(t *testing.T) {
	vm := NewViewModel(coreSettings(), nil)
	vm.Close()
	if err := vm.Submit(context.Background(), AddCategory{}); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if _, ok := <-vm.States(); ok {
		// the initial snapshot may still be buffered; the channel must close after it
		if _, ok := <-vm.States(); ok {
			t.Fatalf("expected states channel closed")
		}
	}
	if _, ok := <-vm.Effects(); ok {
		t.Fatalf("expected effects channel closed")
	}
	vm.Close()
}

func TestViewModelSubmitHonoursContext(t *testing.T) {
	vm := NewViewModel(coreSettings(), nil, WithQueueSize(1))
	defer vm.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// fill the queue so only the cancelled context can unblock Submit
	for i := 0; i < 1000; i++ {
		if err := vm.Submit(ctx, ChangeCategoryName{Text: "x"}); err != nil {
			if !errors.Is(err, context.Canceled) {
				t.Fatalf("expected context.Canceled, got %v", err)
			}
			return
		}
	}
}
