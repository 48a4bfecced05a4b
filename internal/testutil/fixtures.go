// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/atomicstack/screen-generator/internal/logging"
	"github.com/atomicstack/screen-generator/internal/model"
)

// SequentialIDs returns a goroutine-safe id source yielding prefix-1,
// prefix-2, and so on.
func SequentialIDs(prefix string) func() string {
	var (
		mu sync.Mutex
		n  int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// Element builds a screen element with the editor defaults and the given name
// and template.
func Element(id, name, template string) model.ScreenElement {
	e := model.NewScreenElement(id)
	e.Name = name
	e.FileNameTemplate = template
	return e
}

// CoreSettings is a single "Core" category holding element A.
func CoreSettings() model.Settings {
	return model.Settings{Categories: []model.Category{{
		ID:       "core",
		Name:     "Core",
		Elements: []model.ScreenElement{Element("a", "A", "${Name}")},
	}}}
}

// TwoCategories holds categories c1 and c2 with two elements in c1.
func TwoCategories() model.Settings {
	return model.Settings{Categories: []model.Category{
		{ID: "c1", Name: "Screens", Elements: []model.ScreenElement{
			Element("e1", "Activity", "${Name}Activity"),
			Element("e2", "ViewModel", "${Name}ViewModel"),
		}},
		{ID: "c2", Name: "Layouts"},
	}}
}

// IsolateLogs points the shared error and trace log at a temp file for the
// duration of the test.
func IsolateLogs(t *testing.T) string {
	t.Helper()
	prev := logging.Path()
	path := filepath.Join(t.TempDir(), "screen-generator.log")
	logging.Configure(path)
	t.Cleanup(func() { logging.Configure(prev) })
	return path
}
