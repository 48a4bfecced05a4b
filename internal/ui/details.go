package ui

import (
	"github.com/atomicstack/screen-generator/internal/model"
	"github.com/atomicstack/screen-generator/internal/settings"
)

type detailField int

const (
	detailName detailField = iota
	detailFileName
	detailSubdirectory
	detailSourceSet
	detailFileType
	detailComponent
	detailFieldCount
)

var detailLabels = [...]string{
	detailName:         "Name",
	detailFileName:     "File name",
	detailSubdirectory: "Subdirectory",
	detailSourceSet:    "Source set",
	detailFileType:     "File type",
	detailComponent:    "Component",
}

func (f detailField) String() string {
	if f < 0 || f >= detailFieldCount {
		return "unknown"
	}
	return detailLabels[f]
}

func (f detailField) isEnum() bool {
	return f == detailFileType || f == detailComponent
}

func (f detailField) value(e model.ScreenElement) string {
	switch f {
	case detailName:
		return e.Name
	case detailFileName:
		return e.FileNameTemplate
	case detailSubdirectory:
		return e.Subdirectory
	case detailSourceSet:
		return e.SourceSet
	case detailFileType:
		return e.FileType.DisplayName()
	case detailComponent:
		return e.AndroidComponent.DisplayName()
	default:
		return ""
	}
}

// changeAction returns the action that writes text into a text field.
func (f detailField) changeAction(text string) settings.Action {
	switch f {
	case detailName:
		return settings.ChangeName{Text: text}
	case detailFileName:
		return settings.ChangeFileName{Text: text}
	case detailSubdirectory:
		return settings.ChangeSubdirectory{Text: text}
	case detailSourceSet:
		return settings.ChangeSourceSet{Text: text}
	default:
		return nil
	}
}

// cycleAction steps an enum field by delta, wrapping at both ends.
func (f detailField) cycleAction(e model.ScreenElement, delta int) settings.Action {
	switch f {
	case detailFileType:
		return settings.ChangeFileType{Index: wrapIndex(int(e.FileType)+delta, len(model.FileTypes()))}
	case detailComponent:
		return settings.ChangeAndroidComponent{Index: wrapIndex(int(e.AndroidComponent)+delta, len(model.AndroidComponents()))}
	default:
		return nil
	}
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
