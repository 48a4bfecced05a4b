package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEnumIndex marks an enum ordinal outside the enum's range.
	ErrInvalidEnumIndex = errors.New("invalid enum index")
	// ErrClosed is returned by Submit once the ViewModel has been closed.
	ErrClosed = errors.New("settings view model closed")
	// ErrUnknownAction is returned for Action implementations the reducer
	// does not recognise, such as a nil action.
	ErrUnknownAction = errors.New("unknown action")
)

// InvalidEnumIndexError reports which enum-valued field received a bad index.
type InvalidEnumIndexError struct {
	Field string
	Index int
	Max   int
}

func (e *InvalidEnumIndexError) Error() string {
	return fmt.Sprintf("%s: %s %d (want 0..%d)", ErrInvalidEnumIndex, e.Field, e.Index, e.Max)
}

func (e *InvalidEnumIndexError) Unwrap() error { return ErrInvalidEnumIndex }
