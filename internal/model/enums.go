package model

import "fmt"

// FileType is the kind of file a screen element generates.
type FileType int

const (
	FileTypeKotlin FileType = iota
	FileTypeJava
	FileTypeLayoutXML
)

var fileTypes = []struct {
	name      string
	display   string
	extension string
}{
	// vvv do NOT reorder these! the UI submits ordinal indexes vvv
	FileTypeKotlin:    {"kotlin", "Kotlin", "kt"},
	FileTypeJava:      {"java", "Java", "java"},
	FileTypeLayoutXML: {"layout_xml", "Layout XML", "xml"},
	// ^^^ do NOT reorder these! ^^^
}

// FileTypes returns every file type in ordinal order.
func FileTypes() []FileType {
	out := make([]FileType, len(fileTypes))
	for i := range fileTypes {
		out[i] = FileType(i)
	}
	return out
}

// FileTypeFromIndex maps an ordinal index onto a FileType.
func FileTypeFromIndex(index int) (FileType, bool) {
	if index < 0 || index >= len(fileTypes) {
		return 0, false
	}
	return FileType(index), true
}

func (f FileType) valid() bool { return f >= 0 && int(f) < len(fileTypes) }

// DisplayName is the label shown in the editor.
func (f FileType) DisplayName() string {
	if !f.valid() {
		return ""
	}
	return fileTypes[f].display
}

// Extension is the file extension without the leading dot.
func (f FileType) Extension() string {
	if !f.valid() {
		return ""
	}
	return fileTypes[f].extension
}

func (f FileType) String() string {
	if !f.valid() {
		return fmt.Sprintf("FileType(%d)", int(f))
	}
	return fileTypes[f].name
}

// MarshalText encodes the file type by its stable name.
func (f FileType) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("invalid file type %d", int(f))
	}
	return []byte(fileTypes[f].name), nil
}

// UnmarshalText decodes a stable file type name.
func (f *FileType) UnmarshalText(text []byte) error {
	for i, entry := range fileTypes {
		if entry.name == string(text) {
			*f = FileType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown file type %q", string(text))
}

// AndroidComponent is the Android component a screen element belongs to.
type AndroidComponent int

const (
	AndroidComponentActivity AndroidComponent = iota
	AndroidComponentFragment
	AndroidComponentNone
)

var androidComponents = []struct {
	name    string
	display string
}{
	// vvv do NOT reorder these! vvv
	AndroidComponentActivity: {"activity", "Activity"},
	AndroidComponentFragment: {"fragment", "Fragment"},
	AndroidComponentNone:     {"none", "None"},
	// ^^^ do NOT reorder these! ^^^
}

// AndroidComponents returns every component kind in ordinal order.
func AndroidComponents() []AndroidComponent {
	out := make([]AndroidComponent, len(androidComponents))
	for i := range androidComponents {
		out[i] = AndroidComponent(i)
	}
	return out
}

// AndroidComponentFromIndex maps an ordinal index onto an AndroidComponent.
func AndroidComponentFromIndex(index int) (AndroidComponent, bool) {
	if index < 0 || index >= len(androidComponents) {
		return 0, false
	}
	return AndroidComponent(index), true
}

func (c AndroidComponent) valid() bool { return c >= 0 && int(c) < len(androidComponents) }

func (c AndroidComponent) DisplayName() string {
	if !c.valid() {
		return ""
	}
	return androidComponents[c].display
}

func (c AndroidComponent) String() string {
	if !c.valid() {
		return fmt.Sprintf("AndroidComponent(%d)", int(c))
	}
	return androidComponents[c].name
}

func (c AndroidComponent) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("invalid android component %d", int(c))
	}
	return []byte(androidComponents[c].name), nil
}

func (c *AndroidComponent) UnmarshalText(text []byte) error {
	for i, entry := range androidComponents {
		if entry.name == string(text) {
			*c = AndroidComponent(i)
			return nil
		}
	}
	return fmt.Errorf("unknown android component %q", string(text))
}
