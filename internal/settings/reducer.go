package settings

import (
	"fmt"

	"github.com/atomicstack/screen-generator/internal/logging/events"
	"github.com/atomicstack/screen-generator/internal/model"
	"github.com/google/uuid"
)

// Persister durably stores applied settings. Save must not block the caller
// and owns its own failure handling.
type Persister interface {
	Save(model.Settings)
}

// PersisterFunc adapts a function to Persister.
type PersisterFunc func(model.Settings)

func (f PersisterFunc) Save(s model.Settings) { f(s) }

// Reducer applies actions to a Session.
type Reducer struct {
	newID     func() string
	persister Persister
}

// NewReducer returns a reducer that hands applied settings to persister.
// A nil newID falls back to random UUIDs; a nil persister discards saves.
func NewReducer(persister Persister, newID func() string) *Reducer {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Reducer{newID: newID, persister: persister}
}

// Reduce applies action to s and returns the effects it emits. An error
// means the action was rejected and s is untouched.
func (r *Reducer) Reduce(s *Session, action Action) ([]Effect, error) {
	if err := validate(action); err != nil {
		return nil, err
	}
	switch a := action.(type) {
	case AddCategory:
		id := r.freshCategoryID(s)
		s.Working.AddCategory(model.Category{ID: id})
		s.SelectedCategoryID = id
		s.SelectedElementID = ""
	case RemoveCategory:
		if s.Working.RemoveCategory(a.ID) && a.ID == s.SelectedCategoryID {
			s.SelectedCategoryID = ""
			s.SelectedElementID = ""
		}
	case MoveUpCategory:
		s.Working.MoveCategoryUp(a.ID)
	case MoveDownCategory:
		s.Working.MoveCategoryDown(a.ID)
	case SelectCategory:
		s.SelectedCategoryID = a.ID
		s.SelectedElementID = ""
	case ChangeCategoryName:
		s.Working.RenameCategory(s.SelectedCategoryID, a.Text)

	case AddScreenElement:
		c := s.selectedCategory()
		if c == nil {
			break
		}
		id := r.freshElementID(c)
		c.AddElement(model.NewScreenElement(id))
		s.SelectedElementID = id
	case RemoveScreenElement:
		if c := s.selectedCategory(); c != nil && c.RemoveElement(a.ID) && a.ID == s.SelectedElementID {
			s.SelectedElementID = ""
		}
	case MoveUpScreenElement:
		if c := s.selectedCategory(); c != nil {
			c.MoveElementUp(a.ID)
		}
	case MoveDownScreenElement:
		if c := s.selectedCategory(); c != nil {
			c.MoveElementDown(a.ID)
		}
	case SelectScreenElement:
		s.SelectedElementID = a.ID

	case ChangeName:
		r.setField(s, model.FieldName, a.Text)
	case ChangeFileName:
		r.setField(s, model.FieldFileNameTemplate, a.Text)
	case ChangeTemplate:
		r.setField(s, model.FieldFileNameTemplate, a.Text)
	case ChangeSubdirectory:
		r.setField(s, model.FieldSubdirectory, a.Text)
	case ChangeSourceSet:
		r.setField(s, model.FieldSourceSet, a.Text)
	case ChangeFileType:
		fileType, _ := model.FileTypeFromIndex(a.Index)
		if c := s.selectedCategory(); c != nil {
			c.SetFileType(s.SelectedElementID, fileType)
		}
	case ChangeAndroidComponent:
		component, _ := model.AndroidComponentFromIndex(a.Index)
		if c := s.selectedCategory(); c != nil {
			c.SetAndroidComponent(s.SelectedElementID, component)
		}

	case ApplySettings:
		s.Committed = s.Working.Clone()
		events.Settings.Apply(len(s.Committed.Categories))
		if r.persister != nil {
			r.persister.Save(s.Working.Clone())
		}
	case ResetSettings:
		s.Working = s.Committed.Clone()
		events.Settings.Reset(len(s.Working.Categories))
	case ClickHelp:
		return []Effect{ShowHelp}, nil
	}
	return nil, nil
}

// validate rejects malformed actions before any mutation happens.
func validate(action Action) error {
	switch a := action.(type) {
	case nil:
		return ErrUnknownAction
	case ChangeFileType:
		if _, ok := model.FileTypeFromIndex(a.Index); !ok {
			return &InvalidEnumIndexError{Field: "fileType", Index: a.Index, Max: len(model.FileTypes()) - 1}
		}
	case ChangeAndroidComponent:
		if _, ok := model.AndroidComponentFromIndex(a.Index); !ok {
			return &InvalidEnumIndexError{Field: "androidComponent", Index: a.Index, Max: len(model.AndroidComponents()) - 1}
		}
	case AddCategory, RemoveCategory, MoveUpCategory, MoveDownCategory, SelectCategory, ChangeCategoryName,
		AddScreenElement, RemoveScreenElement, MoveUpScreenElement, MoveDownScreenElement, SelectScreenElement,
		ChangeName, ChangeFileName, ChangeSubdirectory, ChangeSourceSet, ChangeTemplate,
		ApplySettings, ResetSettings, ClickHelp:
	default:
		return fmt.Errorf("%w: %T", ErrUnknownAction, action)
	}
	return nil
}

func (r *Reducer) setField(s *Session, field model.Field, value string) {
	if c := s.selectedCategory(); c != nil {
		c.SetField(s.SelectedElementID, field, value)
	}
}

// freshCategoryID draws ids until one is unused. The uuid source never
// collides in practice; injected sources in tests might.
func (r *Reducer) freshCategoryID(s *Session) string {
	for {
		id := r.newID()
		if id != "" && s.Working.CategoryIndex(id) < 0 {
			return id
		}
	}
}

func (r *Reducer) freshElementID(c *model.Category) string {
	for {
		id := r.newID()
		if id != "" && c.ElementIndex(id) < 0 {
			return id
		}
	}
}
