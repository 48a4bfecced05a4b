package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func sample() Settings {
	return Settings{Categories: []Category{
		{ID: "c1", Name: "Core", Elements: []ScreenElement{
			{ID: "e1", Name: "A"},
			{ID: "e2", Name: "B"},
			{ID: "e3", Name: "C"},
		}},
		{ID: "c2", Name: "Data"},
		{ID: "c3", Name: "Domain"},
	}}
}

func categoryIDs(s Settings) []string {
	ids := make([]string, len(s.Categories))
	for i, c := range s.Categories {
		ids[i] = c.ID
	}
	return ids
}

func TestMoveCategoryBoundariesAreNoOps(t *testing.T) {
	s := sample()
	if s.MoveCategoryUp("c1") {
		t.Fatalf("expected no move at index 0")
	}
	if s.MoveCategoryDown("c3") {
		t.Fatalf("expected no move at last index")
	}
	if !s.Equal(sample()) {
		t.Fatalf("expected settings unchanged, got %v", categoryIDs(s))
	}
	if !s.MoveCategoryDown("c1") {
		t.Fatalf("expected move down")
	}
	if got := fmt.Sprint(categoryIDs(s)); got != "[c2 c1 c3]" {
		t.Fatalf("unexpected order %s", got)
	}
	if !s.MoveCategoryUp("c3") {
		t.Fatalf("expected move up")
	}
	if got := fmt.Sprint(categoryIDs(s)); got != "[c2 c3 c1]" {
		t.Fatalf("unexpected order %s", got)
	}
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	s := sample()
	if s.RemoveCategory("nope") || s.MoveCategoryUp("nope") || s.MoveCategoryDown("nope") || s.RenameCategory("nope", "x") {
		t.Fatalf("expected unknown category id to be ignored")
	}
	c := s.Category("c1")
	if c.RemoveElement("nope") || c.MoveElementUp("nope") || c.SetField("nope", FieldName, "x") {
		t.Fatalf("expected unknown element id to be ignored")
	}
	if !s.Equal(sample()) {
		t.Fatalf("expected settings unchanged")
	}
}

func TestElementMovesPreserveOrder(t *testing.T) {
	s := sample()
	c := s.Category("c1")
	if c.MoveElementUp("e1") || c.MoveElementDown("e3") {
		t.Fatalf("expected boundary moves to be no-ops")
	}
	if !c.MoveElementDown("e1") || !c.MoveElementDown("e1") {
		t.Fatalf("expected e1 to move to the end")
	}
	got := []string{c.Elements[0].ID, c.Elements[1].ID, c.Elements[2].ID}
	if fmt.Sprint(got) != "[e2 e3 e1]" {
		t.Fatalf("unexpected element order %v", got)
	}
}

func TestRemoveCategoryCascades(t *testing.T) {
	s := sample()
	if !s.RemoveCategory("c1") {
		t.Fatalf("expected removal")
	}
	if s.Category("c1") != nil {
		t.Fatalf("expected category gone")
	}
	for _, c := range s.Categories {
		if c.Element("e1") != nil {
			t.Fatalf("expected contained elements gone")
		}
	}
}

func TestSetFieldReportsChange(t *testing.T) {
	s := sample()
	c := s.Category("c1")
	if c.SetField("e1", FieldName, "A") {
		t.Fatalf("expected unchanged value to report false")
	}
	cases := []struct {
		field Field
		get   func(ScreenElement) string
	}{
		{FieldName, func(e ScreenElement) string { return e.Name }},
		{FieldFileNameTemplate, func(e ScreenElement) string { return e.FileNameTemplate }},
		{FieldSubdirectory, func(e ScreenElement) string { return e.Subdirectory }},
		{FieldSourceSet, func(e ScreenElement) string { return e.SourceSet }},
	}
	for _, tc := range cases {
		if !c.SetField("e2", tc.field, "value-"+tc.field.String()) {
			t.Fatalf("expected %s to change", tc.field)
		}
		if got := tc.get(*c.Element("e2")); got != "value-"+tc.field.String() {
			t.Fatalf("expected %s set, got %q", tc.field, got)
		}
	}
}

func TestCloneSharesNoState(t *testing.T) {
	s := sample()
	dup := s.Clone()
	dup.Categories[0].Elements[0].Name = "changed"
	dup.Categories[0].Name = "changed"
	if s.Categories[0].Elements[0].Name != "A" || s.Categories[0].Name != "Core" {
		t.Fatalf("expected original untouched")
	}
	if s.Equal(dup) {
		t.Fatalf("expected clone to diverge")
	}
}

func TestEqualTreatsNilAndEmptyElementsAlike(t *testing.T) {
	a := Settings{Categories: []Category{{ID: "c", Name: "x"}}}
	b := Settings{Categories: []Category{{ID: "c", Name: "x", Elements: []ScreenElement{}}}}
	if !a.Equal(b) {
		t.Fatalf("expected nil and empty element lists to compare equal")
	}
}

func TestValidate(t *testing.T) {
	if err := sample().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dup := sample()
	dup.Categories[1].ID = "c1"
	if err := dup.Validate(); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected duplicate category id error, got %v", err)
	}
	dupElement := sample()
	dupElement.Categories[0].Elements[1].ID = "e1"
	if err := dupElement.Validate(); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected duplicate element id error, got %v", err)
	}
	crossCategory := sample()
	crossCategory.Categories[1].Elements = []ScreenElement{{ID: "e1"}}
	if err := crossCategory.Validate(); err != nil {
		t.Fatalf("element ids only need to be unique per category: %v", err)
	}
	empty := sample()
	empty.Categories[2].ID = ""
	if err := empty.Validate(); !errors.Is(err, ErrEmptyID) {
		t.Fatalf("expected empty id error, got %v", err)
	}
}

func TestDefaultSettingsAreValid(t *testing.T) {
	s := Default(sequentialIDs())
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
	if len(s.Categories) != 1 || len(s.Categories[0].Elements) != 4 {
		t.Fatalf("unexpected default shape %#v", s)
	}
}

func TestEnumIndexBounds(t *testing.T) {
	for i := range FileTypes() {
		if _, ok := FileTypeFromIndex(i); !ok {
			t.Fatalf("expected index %d valid", i)
		}
	}
	if _, ok := FileTypeFromIndex(len(FileTypes())); ok {
		t.Fatalf("expected out of range file type index rejected")
	}
	if _, ok := AndroidComponentFromIndex(-1); ok {
		t.Fatalf("expected negative component index rejected")
	}
}

func TestEnumsEncodeByName(t *testing.T) {
	e := ScreenElement{ID: "e", FileType: FileTypeLayoutXML, AndroidComponent: AndroidComponentNone}
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["file_type"] != "layout_xml" || decoded["android_component"] != "none" {
		t.Fatalf("unexpected encoding %s", data)
	}
	var ft FileType
	if err := ft.UnmarshalText([]byte("bogus")); err == nil {
		t.Fatalf("expected unknown name rejected")
	}
}
