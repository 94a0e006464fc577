// Package drag implements the drag gesture state machine. A drag is
// born pending on grab, becomes active once the pointer has travelled
// far enough to rule out a jittery click, and returns to idle through a
// single release path that either commits the reorder or quietly
// discards a drag that never really started.
package drag

import (
	"draglist/internal/domain"
)

// DefaultActivationThreshold is the pointer travel, in list units,
// that promotes a pending drag to an active one.
const DefaultActivationThreshold = 5.0

// Phase is the controller's lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePending
	PhaseActive
)

// List is the slice of the list model the controller needs: carried-set
// derivation at grab time and the layout/commit operations that close a
// drag out.
type List interface {
	IndexOf(id domain.ItemID) (int, bool)
	IsHeader(id domain.ItemID) bool
	SelectedIDs() []domain.ItemID
	BeginCarry(dragged domain.ItemID, carried func(domain.ItemID) bool)
	SplitPoint(pointerY float64, carried func(domain.ItemID) bool) int
	CommitDrag(split int, carried func(domain.ItemID) bool)
}

// state exists only between grab and release.
type state struct {
	activated  bool
	startPos   domain.Pos
	grabOffset domain.Vec
	draggedID  domain.ItemID

	// carried is frozen at grab time: the grabbed row plus whatever was
	// selected at that instant. Selection changes during the drag do
	// not re-derive it.
	carried map[domain.ItemID]bool
}

// Controller tracks at most one drag at a time.
type Controller struct {
	list      List
	threshold float64
	st        *state
	split     int
}

// NewController creates a controller over the given list. threshold <= 0
// selects DefaultActivationThreshold.
func NewController(list List, threshold float64) *Controller {
	if threshold <= 0 {
		threshold = DefaultActivationThreshold
	}
	return &Controller{list: list, threshold: threshold, split: 1}
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	switch {
	case c.st == nil:
		return PhaseIdle
	case c.st.activated:
		return PhaseActive
	default:
		return PhasePending
	}
}

// Active reports whether a drag has crossed the activation threshold.
func (c *Controller) Active() bool {
	return c.st != nil && c.st.activated
}

// Dragging reports whether any drag, pending or active, is in flight.
func (c *Controller) Dragging() bool {
	return c.st != nil
}

// DraggedID returns the grabbed row's id, or 0 when idle.
func (c *Controller) DraggedID() domain.ItemID {
	if c.st == nil {
		return 0
	}
	return c.st.draggedID
}

// IsCarried reports whether id is being moved by the current drag.
// Until activation the carried rows stay visually in place, so this
// reports false for everything while the drag is merely pending.
func (c *Controller) IsCarried(id domain.ItemID) bool {
	if c.st == nil || !c.st.activated {
		return false
	}
	return c.st.carried[id]
}

// CarriedCount returns the size of the carried set, zero when idle.
func (c *Controller) CarriedCount() int {
	if c.st == nil {
		return 0
	}
	return len(c.st.carried)
}

// CarriedIDs returns the carried set in list storage order.
func (c *Controller) CarriedIDs() []domain.ItemID {
	if c.st == nil {
		return nil
	}
	ids := make([]domain.ItemID, 0, len(c.st.carried))
	for id := range c.st.carried {
		ids = append(ids, id)
	}
	// Storage order via index lookup; the set is tiny.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0; j-- {
			a, _ := c.list.IndexOf(ids[j-1])
			b, _ := c.list.IndexOf(ids[j])
			if b < a {
				ids[j-1], ids[j] = ids[j], ids[j-1]
			}
		}
	}
	return ids
}

// SplitPoint returns the insertion index computed on the last Update.
func (c *Controller) SplitPoint() int {
	return c.split
}

// Anchor returns the top-left of the floating stack for the given
// pointer position: the pointer stays glued to the same spot on the
// grabbed row that it went down on.
func (c *Controller) Anchor(pointer domain.Pos) domain.Pos {
	if c.st == nil {
		return pointer
	}
	return pointer.Add(c.st.grabOffset)
}

// Begin starts a pending drag on the given row. Headers, stale ids and
// re-entrant grabs are no-ops. itemTopLeft is the grabbed row's
// top-left at grab time; the offset to the pointer is frozen for the
// whole drag.
func (c *Controller) Begin(id domain.ItemID, pointer, itemTopLeft domain.Pos) bool {
	if c.st != nil {
		return false
	}
	if _, ok := c.list.IndexOf(id); !ok {
		return false
	}
	if c.list.IsHeader(id) {
		return false
	}

	carried := map[domain.ItemID]bool{id: true}
	for _, sel := range c.list.SelectedIDs() {
		carried[sel] = true
	}

	c.st = &state{
		startPos:   pointer,
		grabOffset: itemTopLeft.Sub(pointer),
		draggedID:  id,
		carried:    carried,
	}
	c.split = 1
	c.list.BeginCarry(id, func(x domain.ItemID) bool { return carried[x] })
	return true
}

// Update advances the state machine for the current pointer position:
// it promotes a pending drag whose pointer has strayed past the
// threshold and, while active, re-derives the split point from the
// displayed row positions. Returns true on the frame the drag
// activates.
func (c *Controller) Update(pointer domain.Pos) bool {
	if c.st == nil {
		return false
	}
	activatedNow := false
	if !c.st.activated && pointer.Sub(c.st.startPos).Len() > c.threshold {
		c.st.activated = true
		activatedNow = true
	}
	if c.st.activated {
		c.split = c.list.SplitPoint(pointer.Y, c.IsCarried)
	}
	return activatedNow
}

// Release ends the drag. An active drag commits the reorder at the
// last split point; a pending one is discarded so the gesture can
// resolve as a plain click. Both paths return the controller to idle.
func (c *Controller) Release() bool {
	if c.st == nil {
		return false
	}
	committed := false
	if c.st.activated {
		c.list.CommitDrag(c.split, c.IsCarried)
		committed = true
	}
	c.st = nil
	return committed
}
