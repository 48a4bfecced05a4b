package state

// Item is one row of a list panel. Detail is secondary text shown after the
// label, such as the owning category in find results.
type Item struct {
	ID     string
	Group  string
	Label  string
	Detail string
}

// List tracks the rows of a panel together with the cursor and viewport.
// Cursor is -1 when nothing is selected.
type List struct {
	Items          []Item
	Cursor         int
	ViewportOffset int
}

// NewList returns an empty list with no selection.
func NewList() *List {
	return &List{Cursor: -1}
}

// IndexOf returns the index of the row with the given id, or -1.
func (l *List) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// SetItems replaces the rows and points the cursor at selectedID. An unknown
// or empty id leaves the list without a selection.
func (l *List) SetItems(items []Item, selectedID string) {
	l.Items = CloneItems(items)
	l.Cursor = l.IndexOf(selectedID)
	if len(l.Items) == 0 || l.ViewportOffset > len(l.Items)-1 || l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
}

// Current returns the row under the cursor.
func (l *List) Current() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// CloneItems produces a copy of the provided rows.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
