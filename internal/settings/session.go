package settings

import "github.com/atomicstack/screen-generator/internal/model"

// Session is the editable state owned by the reducer. Committed is the value
// last accepted by the host, Working is the value being edited. Empty
// selection ids mean nothing is selected.
type Session struct {
	Committed          model.Settings
	Working            model.Settings
	SelectedCategoryID string
	SelectedElementID  string
}

// NewSession seeds both copies from loaded and selects the first category.
func NewSession(loaded model.Settings) *Session {
	s := &Session{
		Committed: loaded.Clone(),
		Working:   loaded.Clone(),
	}
	if len(s.Working.Categories) > 0 {
		s.SelectedCategoryID = s.Working.Categories[0].ID
	}
	return s
}

func (s *Session) selectedCategory() *model.Category {
	return s.Working.Category(s.SelectedCategoryID)
}

func (s *Session) selectedElement() *model.ScreenElement {
	c := s.selectedCategory()
	if c == nil {
		return nil
	}
	return c.Element(s.SelectedElementID)
}
