package domain

import "math"

// ItemID identifies a list item for the lifetime of the process.
// IDs are assigned monotonically and never reused, so they stay valid
// across reorders where positional indices do not.
type ItemID uint64

// Kind distinguishes section headers from draggable value rows.
type Kind int

const (
	KindHeader Kind = iota
	KindValue
)

// Section is the serializable shape of one header plus the value rows
// that follow it, in display order.
type Section struct {
	Label  string
	Values []string
}

// Pos is a point in list space. The y axis grows downward; one row of
// the list occupies a fixed height in these units.
type Pos struct {
	X, Y float64
}

// Vec is a displacement between two positions.
type Vec struct {
	X, Y float64
}

// Sub returns the vector from q to p.
func (p Pos) Sub(q Pos) Vec {
	return Vec{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add offsets p by v.
func (p Pos) Add(v Vec) Pos {
	return Pos{X: p.X + v.X, Y: p.Y + v.Y}
}

// Len returns the euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}
