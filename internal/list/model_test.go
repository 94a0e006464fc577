package list

import (
	"testing"

	"github.com/stretchr/testify/require"

	"draglist/internal/domain"
)

// newTestList builds [Header, 1, 2, 3, 4, 5] and returns the model
// plus the value row ids keyed by label.
func newTestList(t *testing.T) (*Model, map[string]domain.ItemID) {
	t.Helper()
	m := New(0)
	m.AppendHeader("Items")
	ids := make(map[string]domain.ItemID)
	for _, label := range []string{"1", "2", "3", "4", "5"} {
		ids[label] = m.AppendValue(label)
	}
	m.LayoutStatic()
	return m, ids
}

func labels(m *Model) []string {
	out := make([]string, 0, m.Len())
	for i := 0; i < m.Len(); i++ {
		out = append(out, m.At(i).Label)
	}
	return out
}

func carriedSet(ids ...domain.ItemID) func(domain.ItemID) bool {
	set := make(map[domain.ItemID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return func(id domain.ItemID) bool { return set[id] }
}

func TestAppendValueOnEmptyModelInsertsAnchor(t *testing.T) {
	m := New(0)
	m.AppendValue("solo")

	require.Equal(t, 2, m.Len())
	require.True(t, m.At(0).Header(), "an anchor header must precede the first value")
	require.Equal(t, "solo", m.At(1).Label)
}

func TestFromSections(t *testing.T) {
	m := FromSections([]domain.Section{
		{Label: "Group A", Values: []string{"a", "b"}},
		{Label: "Group B", Values: []string{"c"}},
	}, 0)

	require.Equal(t, []string{"Group A", "a", "b", "Group B", "c"}, labels(m))
	require.True(t, m.At(0).Header())
	require.True(t, m.At(3).Header())

	empty := FromSections(nil, 0)
	require.Equal(t, 1, empty.Len())
	require.True(t, empty.At(0).Header())
}

func TestSelectToggle(t *testing.T) {
	m, ids := newTestList(t)

	require.True(t, m.SelectToggle(ids["2"]))
	require.Equal(t, 1, m.SelectedCount())
	require.True(t, m.SelectToggle(ids["2"]))
	require.Equal(t, 0, m.SelectedCount(), "second toggle must deselect")

	header := m.At(0).ID
	require.False(t, m.SelectToggle(header), "headers are not selectable")

	require.False(t, m.SelectToggle(domain.ItemID(999)), "stale ids are no-ops")
	require.Equal(t, 0, m.SelectedCount())
}

func TestSelectRange(t *testing.T) {
	m, ids := newTestList(t)

	require.True(t, m.SelectRange(ids["2"], ids["4"]))
	require.Equal(t, []domain.ItemID{ids["2"], ids["3"], ids["4"]}, m.SelectedIDs())

	m.ClearSelection()
	require.True(t, m.SelectRange(ids["4"], ids["2"]), "reversed endpoints select the same range")
	require.Equal(t, []domain.ItemID{ids["2"], ids["3"], ids["4"]}, m.SelectedIDs())
}

func TestSelectRangeStaleEndpointIsAtomic(t *testing.T) {
	m, ids := newTestList(t)

	require.False(t, m.SelectRange(ids["2"], domain.ItemID(999)))
	require.Equal(t, 0, m.SelectedCount(), "a range with a stale endpoint selects nothing")
}

func TestSelectRangeSkipsHeaders(t *testing.T) {
	m := FromSections([]domain.Section{
		{Label: "Group A", Values: []string{"a", "b"}},
		{Label: "Group B", Values: []string{"c"}},
	}, 0)
	a := m.At(1).ID
	c := m.At(4).ID

	require.True(t, m.SelectRange(a, c))
	require.Equal(t, 3, m.SelectedCount(), "the header inside the range stays unselected")
	require.False(t, m.At(3).Selected)
}

func TestSelectAllAndClear(t *testing.T) {
	m, _ := newTestList(t)

	m.SelectAll()
	require.Equal(t, 5, m.SelectedCount())
	require.False(t, m.At(0).Selected)

	m.ClearSelection()
	require.Equal(t, 0, m.SelectedCount())
}

func TestLayoutStatic(t *testing.T) {
	m, _ := newTestList(t)

	for i := 0; i < m.Len(); i++ {
		require.Equal(t, float64(i)*RowHeight, m.At(i).ListY.Current)
		require.True(t, m.At(i).ListY.Settled(), "static layout snaps, it does not animate")
	}

	m.LayoutStatic()
	require.Equal(t, RowHeight, m.At(1).ListY.Current, "static layout is idempotent")
	require.Equal(t, float64(m.Len())*RowHeight, m.Height())
}

func TestLayoutDuringDragLeavesGap(t *testing.T) {
	m, ids := newTestList(t)
	carried := carriedSet(ids["2"])

	// Row "2" is carried, the gap opens before index 4.
	m.LayoutDuringDrag(4, 1, carried)

	require.Equal(t, 0.0, m.At(0).ListY.Target)
	require.Equal(t, RowHeight, m.ByID(ids["1"]).ListY.Target)
	require.Equal(t, 2*RowHeight, m.ByID(ids["3"]).ListY.Target, "rows after the carried one close up")
	require.Equal(t, 4*RowHeight, m.ByID(ids["4"]).ListY.Target, "the gap displaces rows at the split")
	require.Equal(t, 5*RowHeight, m.ByID(ids["5"]).ListY.Target)
}

func TestSplitPoint(t *testing.T) {
	m, ids := newTestList(t)
	carried := carriedSet(ids["2"])

	require.Equal(t, 1, m.SplitPoint(-100, carried), "the split never goes below 1")
	require.Equal(t, 1, m.SplitPoint(RowHeight/2+1, carried), "pointer below the header center lands after it")
	require.Equal(t, 2, m.SplitPoint(1.5*RowHeight+1, carried))
	require.Equal(t, 6, m.SplitPoint(1000, carried), "far below the list means append at the end")
}

func TestSplitPointIgnoresCarriedRows(t *testing.T) {
	m, ids := newTestList(t)
	carried := carriedSet(ids["1"])

	// With row "1" carried, the pointer just under row "2"'s center
	// counts the header and "2" only.
	require.Equal(t, 3, m.SplitPoint(2.5*RowHeight+1, carried))
}

func TestBeginCarrySeedsStackOffsets(t *testing.T) {
	m, ids := newTestList(t)
	carried := carriedSet(ids["2"], ids["4"])

	m.BeginCarry(ids["4"], carried)

	four := m.ByID(ids["4"])
	require.Equal(t, 0.0, four.DragY.Current, "the grabbed row starts at the stack origin")
	require.Equal(t, 0.0, four.DragY.Target)

	two := m.ByID(ids["2"])
	require.Equal(t, -2*RowHeight, two.DragY.Current, "seeded at its displacement from the grabbed row")
	require.Equal(t, -RowHeight, two.DragY.Target, "targets its packed slot above the grabbed row")
}

func TestCommitDragSingleRow(t *testing.T) {
	m, ids := newTestList(t)

	m.CommitDrag(1, carriedSet(ids["3"]))

	require.Equal(t, []string{"Items", "3", "1", "2", "4", "5"}, labels(m))
	idx, ok := m.IndexOf(ids["3"])
	require.True(t, ok)
	require.Equal(t, 1, idx, "the index map follows the reorder")
}

func TestCommitDragMultipleRows(t *testing.T) {
	m, ids := newTestList(t)
	require.True(t, m.SelectToggle(ids["2"]))
	require.True(t, m.SelectToggle(ids["4"]))

	m.CommitDrag(4, carriedSet(ids["2"], ids["4"]))

	require.Equal(t, []string{"Items", "1", "3", "2", "4", "5"}, labels(m))
	require.Equal(t, 0, m.SelectedCount(), "a commit consumes the selection")
}

func TestCommitDragClampsSplit(t *testing.T) {
	m, ids := newTestList(t)

	m.CommitDrag(0, carriedSet(ids["5"]))
	require.Equal(t, []string{"Items", "5", "1", "2", "3", "4"}, labels(m), "split 0 clamps to 1, protecting the anchor")

	m2, ids2 := newTestList(t)
	m2.CommitDrag(99, carriedSet(ids2["1"]))
	require.Equal(t, []string{"Items", "2", "3", "4", "5", "1"}, labels(m2))
}

func TestCommitDragIdentityStillClearsSelection(t *testing.T) {
	m, ids := newTestList(t)
	require.True(t, m.SelectToggle(ids["3"]))

	m.CommitDrag(3, carriedSet(ids["3"]))

	require.Equal(t, []string{"Items", "1", "2", "3", "4", "5"}, labels(m))
	require.Equal(t, 0, m.SelectedCount())
}

func TestSectionsRoundTrip(t *testing.T) {
	in := []domain.Section{
		{Label: "Group A", Values: []string{"a", "b"}},
		{Label: "Group B", Values: []string{"c"}},
	}
	m := FromSections(in, 0)
	require.Equal(t, in, m.Sections())

	// After a reorder the sections reflect the new order.
	b := m.At(2).ID
	m.CommitDrag(4, carriedSet(b))
	require.Equal(t, []domain.Section{
		{Label: "Group A", Values: []string{"a"}},
		{Label: "Group B", Values: []string{"b", "c"}},
	}, m.Sections())
}
