package model

// Field names a text field of a screen element.
type Field int

const (
	FieldName Field = iota
	FieldFileNameTemplate
	FieldSubdirectory
	FieldSourceSet
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldFileNameTemplate:
		return "fileNameTemplate"
	case FieldSubdirectory:
		return "subdirectory"
	case FieldSourceSet:
		return "sourceSet"
	default:
		return "unknown"
	}
}

// CategoryIndex returns the position of the category, or -1.
func (s *Settings) CategoryIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return i
		}
	}
	return -1
}

// Category returns a pointer into s for the given id, or nil.
func (s *Settings) Category(id string) *Category {
	if idx := s.CategoryIndex(id); idx >= 0 {
		return &s.Categories[idx]
	}
	return nil
}

// AddCategory appends c.
func (s *Settings) AddCategory(c Category) {
	s.Categories = append(s.Categories, c)
}

// RemoveCategory drops the category and the elements it contains.
func (s *Settings) RemoveCategory(id string) bool {
	idx := s.CategoryIndex(id)
	if idx < 0 {
		return false
	}
	s.Categories = append(s.Categories[:idx], s.Categories[idx+1:]...)
	return true
}

// MoveCategoryUp swaps the category with its predecessor.
func (s *Settings) MoveCategoryUp(id string) bool {
	idx := s.CategoryIndex(id)
	if idx <= 0 {
		return false
	}
	s.Categories[idx-1], s.Categories[idx] = s.Categories[idx], s.Categories[idx-1]
	return true
}

// MoveCategoryDown swaps the category with its successor.
func (s *Settings) MoveCategoryDown(id string) bool {
	idx := s.CategoryIndex(id)
	if idx < 0 || idx >= len(s.Categories)-1 {
		return false
	}
	s.Categories[idx+1], s.Categories[idx] = s.Categories[idx], s.Categories[idx+1]
	return true
}

// RenameCategory sets the category name.
func (s *Settings) RenameCategory(id, name string) bool {
	c := s.Category(id)
	if c == nil || c.Name == name {
		return false
	}
	c.Name = name
	return true
}

// ElementIndex returns the position of the element, or -1.
func (c *Category) ElementIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := range c.Elements {
		if c.Elements[i].ID == id {
			return i
		}
	}
	return -1
}

// Element returns a pointer into c for the given id, or nil.
func (c *Category) Element(id string) *ScreenElement {
	if idx := c.ElementIndex(id); idx >= 0 {
		return &c.Elements[idx]
	}
	return nil
}

func (c *Category) AddElement(e ScreenElement) {
	c.Elements = append(c.Elements, e)
}

func (c *Category) RemoveElement(id string) bool {
	idx := c.ElementIndex(id)
	if idx < 0 {
		return false
	}
	c.Elements = append(c.Elements[:idx], c.Elements[idx+1:]...)
	return true
}

func (c *Category) MoveElementUp(id string) bool {
	idx := c.ElementIndex(id)
	if idx <= 0 {
		return false
	}
	c.Elements[idx-1], c.Elements[idx] = c.Elements[idx], c.Elements[idx-1]
	return true
}

func (c *Category) MoveElementDown(id string) bool {
	idx := c.ElementIndex(id)
	if idx < 0 || idx >= len(c.Elements)-1 {
		return false
	}
	c.Elements[idx+1], c.Elements[idx] = c.Elements[idx], c.Elements[idx+1]
	return true
}

// SetField assigns a text field on the element. Unknown fields are ignored.
func (c *Category) SetField(elementID string, field Field, value string) bool {
	e := c.Element(elementID)
	if e == nil {
		return false
	}
	var target *string
	switch field {
	case FieldName:
		target = &e.Name
	case FieldFileNameTemplate:
		target = &e.FileNameTemplate
	case FieldSubdirectory:
		target = &e.Subdirectory
	case FieldSourceSet:
		target = &e.SourceSet
	default:
		return false
	}
	if *target == value {
		return false
	}
	*target = value
	return true
}

func (c *Category) SetFileType(elementID string, fileType FileType) bool {
	e := c.Element(elementID)
	if e == nil || e.FileType == fileType {
		return false
	}
	e.FileType = fileType
	return true
}

func (c *Category) SetAndroidComponent(elementID string, component AndroidComponent) bool {
	e := c.Element(elementID)
	if e == nil || e.AndroidComponent == component {
		return false
	}
	e.AndroidComponent = component
	return true
}
