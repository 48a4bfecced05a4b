package settings

// Action is a user intent submitted to the ViewModel. The set is closed; the
// reducer switches over every implementation.
type Action interface {
	// Name identifies the action in traces.
	Name() string
	isAction()
}

type (
	AddCategory        struct{}
	RemoveCategory     struct{ ID string }
	MoveUpCategory     struct{ ID string }
	MoveDownCategory   struct{ ID string }
	SelectCategory     struct{ ID string }
	ChangeCategoryName struct{ Text string }

	AddScreenElement      struct{}
	RemoveScreenElement   struct{ ID string }
	MoveUpScreenElement   struct{ ID string }
	MoveDownScreenElement struct{ ID string }
	SelectScreenElement   struct{ ID string }

	ChangeName             struct{ Text string }
	ChangeFileName         struct{ Text string }
	ChangeSubdirectory     struct{ Text string }
	ChangeSourceSet        struct{ Text string }
	ChangeTemplate         struct{ Text string }
	ChangeFileType         struct{ Index int }
	ChangeAndroidComponent struct{ Index int }

	ApplySettings struct{}
	ResetSettings struct{}
	ClickHelp     struct{}
)

func (AddCategory) Name() string            { return "AddCategory" }
func (RemoveCategory) Name() string         { return "RemoveCategory" }
func (MoveUpCategory) Name() string         { return "MoveUpCategory" }
func (MoveDownCategory) Name() string       { return "MoveDownCategory" }
func (SelectCategory) Name() string         { return "SelectCategory" }
func (ChangeCategoryName) Name() string     { return "ChangeCategoryName" }
func (AddScreenElement) Name() string       { return "AddScreenElement" }
func (RemoveScreenElement) Name() string    { return "RemoveScreenElement" }
func (MoveUpScreenElement) Name() string    { return "MoveUpScreenElement" }
func (MoveDownScreenElement) Name() string  { return "MoveDownScreenElement" }
func (SelectScreenElement) Name() string    { return "SelectScreenElement" }
func (ChangeName) Name() string             { return "ChangeName" }
func (ChangeFileName) Name() string         { return "ChangeFileName" }
func (ChangeSubdirectory) Name() string     { return "ChangeSubdirectory" }
func (ChangeSourceSet) Name() string        { return "ChangeSourceSet" }
func (ChangeTemplate) Name() string         { return "ChangeTemplate" }
func (ChangeFileType) Name() string         { return "ChangeFileType" }
func (ChangeAndroidComponent) Name() string { return "ChangeAndroidComponent" }
func (ApplySettings) Name() string          { return "ApplySettings" }
func (ResetSettings) Name() string          { return "ResetSettings" }
func (ClickHelp) Name() string              { return "ClickHelp" }

func (AddCategory) isAction()            {}
func (RemoveCategory) isAction()         {}
func (MoveUpCategory) isAction()         {}
func (MoveDownCategory) isAction()       {}
func (SelectCategory) isAction()         {}
func (ChangeCategoryName) isAction()     {}
func (AddScreenElement) isAction()       {}
func (RemoveScreenElement) isAction()    {}
func (MoveUpScreenElement) isAction()    {}
func (MoveDownScreenElement) isAction()  {}
func (SelectScreenElement) isAction()    {}
func (ChangeName) isAction()             {}
func (ChangeFileName) isAction()         {}
func (ChangeSubdirectory) isAction()     {}
func (ChangeSourceSet) isAction()        {}
func (ChangeTemplate) isAction()         {}
func (ChangeFileType) isAction()         {}
func (ChangeAndroidComponent) isAction() {}
func (ApplySettings) isAction()          {}
func (ResetSettings) isAction()          {}
func (ClickHelp) isAction()              {}

// Effect is a one-shot instruction for the UI, delivered outside of State.
type Effect int

const (
	ShowHelp Effect = iota + 1
)

func (e Effect) String() string {
	switch e {
	case ShowHelp:
		return "ShowHelp"
	default:
		return "Effect(unknown)"
	}
}
