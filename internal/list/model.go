// Package list owns the ordered collection of rows: their storage
// order, selection flags, animated positions, and the commit-time
// reorder that finishes a drag. All mutation goes through the Model;
// render code only reads.
package list

import (
	"draglist/internal/anim"
	"draglist/internal/domain"
)

const (
	// RowHeight is the vertical extent of one row in list units.
	RowHeight = 22.0

	// DefaultSlewRate is how fast rows travel toward their layout
	// target, in list units per second.
	DefaultSlewRate = 300.0
)

// Item represents one row.
type Item struct {
	ID       domain.ItemID
	Kind     domain.Kind
	Label    string
	Selected bool

	// ListY is the row's vertical offset within the list. DragY is its
	// offset within the floating stack while it is carried by a drag;
	// the two animate independently.
	ListY anim.Pair
	DragY anim.Pair
}

// Header reports whether the item is a section header. Headers are
// never selectable or draggable and always render in place.
func (it Item) Header() bool {
	return it.Kind == domain.KindHeader
}

// Model is the list model. The zero value is not usable; create one
// with New.
type Model struct {
	items    []Item
	index    map[domain.ItemID]int
	nextID   domain.ItemID
	clicks   clickHistory
	slewRate float64
}

// New creates an empty model. slewRate <= 0 selects DefaultSlewRate.
func New(slewRate float64) *Model {
	if slewRate <= 0 {
		slewRate = DefaultSlewRate
	}
	return &Model{
		index:    make(map[domain.ItemID]int),
		slewRate: slewRate,
	}
}

// FromSections builds a model whose rows mirror the given sections in
// order. Every section contributes a header row followed by its value
// rows; the first header doubles as the non-reorderable anchor row. An
// anchor header is inserted if the input starts with no section label.
func FromSections(sections []domain.Section, slewRate float64) *Model {
	m := New(slewRate)
	if len(sections) == 0 {
		m.AppendHeader("Items")
		return m
	}
	for _, s := range sections {
		m.AppendHeader(s.Label)
		for _, v := range s.Values {
			m.AppendValue(v)
		}
	}
	return m
}

// AppendHeader adds a header row at the end of the list.
func (m *Model) AppendHeader(label string) domain.ItemID {
	return m.append(domain.KindHeader, label)
}

// AppendValue adds a value row at the end of the list. The first row of
// a list must be a header; a value appended to an empty model gets an
// unnamed anchor header placed above it.
func (m *Model) AppendValue(label string) domain.ItemID {
	if len(m.items) == 0 {
		m.AppendHeader("Items")
	}
	return m.append(domain.KindValue, label)
}

func (m *Model) append(kind domain.Kind, label string) domain.ItemID {
	m.nextID++
	id := m.nextID
	m.items = append(m.items, Item{ID: id, Kind: kind, Label: label})
	m.index[id] = len(m.items) - 1
	return id
}

// Len returns the number of rows.
func (m *Model) Len() int {
	return len(m.items)
}

// At returns the row at index i. The pointer stays valid until the next
// commit.
func (m *Model) At(i int) *Item {
	return &m.items[i]
}

// ByID resolves an id to its row. Returns nil for stale ids.
func (m *Model) ByID(id domain.ItemID) *Item {
	i, ok := m.index[id]
	if !ok {
		return nil
	}
	return &m.items[i]
}

// IndexOf resolves an id to its current storage index.
func (m *Model) IndexOf(id domain.ItemID) (int, bool) {
	i, ok := m.index[id]
	return i, ok
}

// IsHeader reports whether id names a header row. Stale ids report
// false.
func (m *Model) IsHeader(id domain.ItemID) bool {
	it := m.ByID(id)
	return it != nil && it.Header()
}

// SelectToggle flips the selection flag of a value row. Headers and
// stale ids are no-ops.
func (m *Model) SelectToggle(id domain.ItemID) bool {
	it := m.ByID(id)
	if it == nil || it.Header() {
		return false
	}
	it.Selected = !it.Selected
	return true
}

// SelectRange selects every value row between anchor and target,
// inclusive, in either click order. If either endpoint has gone stale
// the call is a no-op: a range is never partially applied.
func (m *Model) SelectRange(anchorID, targetID domain.ItemID) bool {
	a, okA := m.index[anchorID]
	b, okB := m.index[targetID]
	if !okA || !okB {
		return false
	}
	if a > b {
		a, b = b, a
	}
	for i := a; i <= b; i++ {
		if !m.items[i].Header() {
			m.items[i].Selected = true
		}
	}
	return true
}

// ClearSelection clears every selection flag.
func (m *Model) ClearSelection() {
	for i := range m.items {
		m.items[i].Selected = false
	}
}

// SelectAll selects every value row.
func (m *Model) SelectAll() {
	for i := range m.items {
		if !m.items[i].Header() {
			m.items[i].Selected = true
		}
	}
}

// SelectedIDs returns the ids of all selected rows in storage order.
// Headers never appear here.
func (m *Model) SelectedIDs() []domain.ItemID {
	var ids []domain.ItemID
	for _, it := range m.items {
		if it.Selected && !it.Header() {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// SelectedCount returns the number of selected rows.
func (m *Model) SelectedCount() int {
	n := 0
	for _, it := range m.items {
		if it.Selected && !it.Header() {
			n++
		}
	}
	return n
}

// LayoutStatic lays rows out in storage order with no gap and snaps
// their displayed positions onto the targets. This path runs whenever
// no drag is active, so the only moments it visibly jumps are start-up
// and the instant a drag commits.
func (m *Model) LayoutStatic() {
	y := 0.0
	for i := range m.items {
		m.items[i].ListY.Snap(y)
		y += RowHeight
	}
}

// LayoutDuringDrag retargets every non-carried row, leaving a gap of
// carriedCount rows at the split index. Carried rows are positioned by
// the drag controller instead and are skipped here.
func (m *Model) LayoutDuringDrag(split, carriedCount int, carried func(domain.ItemID) bool) {
	y := 0.0
	for i := range m.items {
		if i == split {
			y += RowHeight * float64(carriedCount)
		}
		if !carried(m.items[i].ID) {
			m.items[i].ListY.Target = y
			y += RowHeight
		}
	}
}

// SplitPoint walks the displayed non-carried rows and returns the
// storage index at which the carried rows would be inserted for the
// given pointer height: one past the last row whose vertical center
// sits above the pointer. The result never goes below 1, which keeps
// the anchor header pinned at index 0.
func (m *Model) SplitPoint(pointerY float64, carried func(domain.ItemID) bool) int {
	split := 1
	for i := range m.items {
		if carried(m.items[i].ID) {
			continue
		}
		if pointerY > m.items[i].ListY.Current+RowHeight/2 {
			split = i + 1
		}
	}
	return split
}

// BeginCarry seeds the floating-stack offset of every carried row so
// that the rows appear to slide out of their list slots and collapse
// into one contiguous stack under the grabbed row. The seeded current
// offset is the row's displacement from the grabbed row in the list;
// the target is its displacement within the packed stack.
func (m *Model) BeginCarry(dragged domain.ItemID, carried func(domain.ItemID) bool) {
	di, ok := m.index[dragged]
	if !ok {
		return
	}
	dragRank := 0
	for i := 0; i < di; i++ {
		if carried(m.items[i].ID) {
			dragRank++
		}
	}
	rank := 0
	for i := range m.items {
		if !carried(m.items[i].ID) {
			continue
		}
		m.items[i].DragY = anim.Pair{
			Current: float64(i-di) * RowHeight,
			Target:  float64(rank-dragRank) * RowHeight,
		}
		rank++
	}
}

// StepAnimation slews every row one frame: carried rows animate their
// floating-stack offset, the rest animate their list position.
func (m *Model) StepAnimation(dt float64, carried func(domain.ItemID) bool) {
	for i := range m.items {
		if carried(m.items[i].ID) {
			m.items[i].DragY.Update(dt, m.slewRate)
		} else {
			m.items[i].ListY.Update(dt, m.slewRate)
		}
	}
}

// CommitDrag physically reorders the items: rows before the split that
// are not carried, then all carried rows in their original relative
// order, then the remaining rows. A completed drag consumes the
// selection, so all flags are cleared even when the carried set turned
// out to be empty and the reorder was the identity.
func (m *Model) CommitDrag(split int, carried func(domain.ItemID) bool) {
	if split < 1 {
		split = 1
	}
	if split > len(m.items) {
		split = len(m.items)
	}

	reordered := make([]Item, 0, len(m.items))
	for _, it := range m.items[:split] {
		if !carried(it.ID) {
			reordered = append(reordered, it)
		}
	}
	for _, it := range m.items {
		if carried(it.ID) {
			reordered = append(reordered, it)
		}
	}
	for _, it := range m.items[split:] {
		if !carried(it.ID) {
			reordered = append(reordered, it)
		}
	}

	m.items = reordered
	for i := range m.items {
		m.index[m.items[i].ID] = i
		m.items[i].Selected = false
	}
}

// Sections converts the current order back into its serializable shape.
func (m *Model) Sections() []domain.Section {
	var sections []domain.Section
	for _, it := range m.items {
		if it.Header() {
			sections = append(sections, domain.Section{Label: it.Label})
			continue
		}
		if len(sections) == 0 {
			// Should not happen: index 0 is always a header.
			sections = append(sections, domain.Section{})
		}
		s := &sections[len(sections)-1]
		s.Values = append(s.Values, it.Label)
	}
	return sections
}

// Height returns the vertical extent of the laid-out list in list
// units. A drag gap displaces rows but never changes the total: the
// carried rows leave exactly as much room as the gap occupies.
func (m *Model) Height() float64 {
	return float64(len(m.items)) * RowHeight
}
