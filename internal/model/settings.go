// Package model holds the persisted shape of the screen generator settings and
// the structural operations the editor applies to it.
package model

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateID = errors.New("duplicate id")
	ErrEmptyID     = errors.New("empty id")
)

// DefaultSourceSet is assigned to new screen elements.
const DefaultSourceSet = "main"

// ScreenElement is a single file-generation rule.
type ScreenElement struct {
	ID               string           `json:"id" toml:"id" yaml:"id"`
	Name             string           `json:"name" toml:"name" yaml:"name"`
	FileType         FileType         `json:"file_type" toml:"file_type" yaml:"file_type"`
	FileNameTemplate string           `json:"file_name_template" toml:"file_name_template" yaml:"file_name_template"`
	Subdirectory     string           `json:"subdirectory" toml:"subdirectory" yaml:"subdirectory"`
	SourceSet        string           `json:"source_set" toml:"source_set" yaml:"source_set"`
	AndroidComponent AndroidComponent `json:"android_component" toml:"android_component" yaml:"android_component"`
}

// Category groups screen elements. Element order is generation order.
type Category struct {
	ID       string          `json:"id" toml:"id" yaml:"id"`
	Name     string          `json:"name" toml:"name" yaml:"name"`
	Elements []ScreenElement `json:"elements" toml:"elements" yaml:"elements"`
}

// Settings is the persisted root of the configuration.
type Settings struct {
	Categories []Category `json:"categories" toml:"categories" yaml:"categories"`
}

// NewScreenElement returns the element inserted by the editor's add button.
func NewScreenElement(id string) ScreenElement {
	return ScreenElement{
		ID:               id,
		FileType:         FileTypeKotlin,
		FileNameTemplate: "${Name}",
		SourceSet:        DefaultSourceSet,
		AndroidComponent: AndroidComponentActivity,
	}
}

// Default returns the configuration used when nothing has been stored yet.
// Ids are drawn from newID in declaration order.
func Default(newID func() string) Settings {
	element := func(name, template string, fileType FileType, component AndroidComponent) ScreenElement {
		return ScreenElement{
			ID:               newID(),
			Name:             name,
			FileType:         fileType,
			FileNameTemplate: template,
			SourceSet:        DefaultSourceSet,
			AndroidComponent: component,
		}
	}
	categoryID := newID()
	return Settings{Categories: []Category{{
		ID:   categoryID,
		Name: "Default",
		Elements: []ScreenElement{
			element("Activity", "${Name}Activity", FileTypeKotlin, AndroidComponentActivity),
			element("Fragment", "${Name}Fragment", FileTypeKotlin, AndroidComponentFragment),
			element("ViewModel", "${Name}ViewModel", FileTypeKotlin, AndroidComponentNone),
			element("Layout", "activity_${name}", FileTypeLayoutXML, AndroidComponentActivity),
		},
	}}}
}

// Clone returns a deep copy sharing no mutable state with s.
func (s Settings) Clone() Settings {
	if s.Categories == nil {
		return Settings{}
	}
	out := Settings{Categories: make([]Category, len(s.Categories))}
	for i, c := range s.Categories {
		out.Categories[i] = c.Clone()
	}
	return out
}

// Clone returns a deep copy of the category.
func (c Category) Clone() Category {
	dup := c
	if c.Elements != nil {
		dup.Elements = make([]ScreenElement, len(c.Elements))
		copy(dup.Elements, c.Elements)
	}
	return dup
}

// Equal reports structural equality. Order matters; a nil and an empty
// element list compare equal.
func (s Settings) Equal(other Settings) bool {
	if len(s.Categories) != len(other.Categories) {
		return false
	}
	for i := range s.Categories {
		if !s.Categories[i].Equal(other.Categories[i]) {
			return false
		}
	}
	return true
}

func (c Category) Equal(other Category) bool {
	if c.ID != other.ID || c.Name != other.Name || len(c.Elements) != len(other.Elements) {
		return false
	}
	for i := range c.Elements {
		if c.Elements[i] != other.Elements[i] {
			return false
		}
	}
	return true
}

// Validate checks id uniqueness: categories globally, elements per category.
func (s Settings) Validate() error {
	seen := make(map[string]struct{}, len(s.Categories))
	for i, c := range s.Categories {
		if c.ID == "" {
			return fmt.Errorf("category %d: %w", i, ErrEmptyID)
		}
		if _, ok := seen[c.ID]; ok {
			return fmt.Errorf("category %q: %w", c.ID, ErrDuplicateID)
		}
		seen[c.ID] = struct{}{}
		elements := make(map[string]struct{}, len(c.Elements))
		for j, e := range c.Elements {
			if e.ID == "" {
				return fmt.Errorf("category %q element %d: %w", c.ID, j, ErrEmptyID)
			}
			if _, ok := elements[e.ID]; ok {
				return fmt.Errorf("category %q element %q: %w", c.ID, e.ID, ErrDuplicateID)
			}
			elements[e.ID] = struct{}{}
		}
	}
	return nil
}
