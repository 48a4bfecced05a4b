package command

import (
	"context"
	"errors"
	"testing"

	"github.com/atomicstack/screen-generator/internal/settings"
)

type recorder struct {
	got    []string
	failAt int
	err    error
}

func (r *recorder) Submit(_ context.Context, action settings.Action) error {
	if r.err != nil && len(r.got) == r.failAt {
		return r.err
	}
	r.got = append(r.got, action.Name())
	return nil
}

func TestDispatchSubmitsInOrder(t *testing.T) {
	rec := &recorder{}
	bus := New(rec)
	cmd := bus.Dispatch(settings.SelectCategory{ID: "c"}, nil, settings.SelectScreenElement{ID: "e"})
	if cmd != nil {
		t.Fatalf("expected no command on success")
	}
	if len(rec.got) != 2 || rec.got[0] != "SelectCategory" || rec.got[1] != "SelectScreenElement" {
		t.Fatalf("unexpected submissions %v", rec.got)
	}
}

func TestDispatchStopsAtFirstFailure(t *testing.T) {
	rec := &recorder{failAt: 1, err: settings.ErrClosed}
	bus := New(rec)
	cmd := bus.Dispatch(settings.AddCategory{}, settings.ApplySettings{}, settings.ResetSettings{})
	if cmd == nil {
		t.Fatalf("expected failure command")
	}
	res, ok := cmd().(ResultMsg)
	if !ok {
		t.Fatalf("expected ResultMsg")
	}
	if res.Action != "ApplySettings" || !errors.Is(res.Err, settings.ErrClosed) {
		t.Fatalf("unexpected result %#v", res)
	}
	if len(rec.got) != 1 {
		t.Fatalf("expected later actions skipped, got %v", rec.got)
	}
}

func TestNilBusIsInert(t *testing.T) {
	var bus *Bus
	if cmd := bus.Dispatch(settings.ClickHelp{}); cmd != nil {
		t.Fatalf("expected nil command from nil bus")
	}
}
