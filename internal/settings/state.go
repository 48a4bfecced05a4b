package settings

import (
	"github.com/atomicstack/screen-generator/internal/model"
	"github.com/atomicstack/screen-generator/internal/render"
)

// State is the read-only snapshot published after every transition. It
// shares no mutable memory with the session that produced it.
type State struct {
	Categories         []model.Category
	SelectedCategoryID string
	SelectedElementID  string
	SelectedCategory   *model.Category
	SelectedElement    *model.ScreenElement
	FileNameRendered   string
	IsModified         bool
}

// Project derives the UI-facing snapshot from s. Selection ids that no longer
// resolve inside the working settings are reported as absent.
func Project(s *Session) State {
	working := s.Working.Clone()
	st := State{
		Categories: working.Categories,
		IsModified: !s.Working.Equal(s.Committed),
	}
	category := working.Category(s.SelectedCategoryID)
	if category == nil {
		return st
	}
	st.SelectedCategoryID = category.ID
	selectedCategory := category.Clone()
	st.SelectedCategory = &selectedCategory

	element := category.Element(s.SelectedElementID)
	if element == nil {
		return st
	}
	selectedElement := *element
	st.SelectedElementID = selectedElement.ID
	st.SelectedElement = &selectedElement
	st.FileNameRendered = render.FileName(selectedElement)
	return st
}

// CategoryIndex returns the position of the selected category, or -1.
func (st State) CategoryIndex() int {
	for i, c := range st.Categories {
		if c.ID == st.SelectedCategoryID && st.SelectedCategoryID != "" {
			return i
		}
	}
	return -1
}

// ElementIndex returns the position of the selected element within the
// selected category, or -1.
func (st State) ElementIndex() int {
	if st.SelectedCategory == nil || st.SelectedElementID == "" {
		return -1
	}
	for i, e := range st.SelectedCategory.Elements {
		if e.ID == st.SelectedElementID {
			return i
		}
	}
	return -1
}
