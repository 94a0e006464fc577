package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Row is a single rendered line of the list.
type Row struct {
	ZoneID   string // empty disables hit-zone marking
	Label    string
	Header   bool
	Selected bool
	Hovered  bool
	Cursor   bool
	Carried  bool
	Cell     int // terminal row within the list canvas
}

// RowRenderer handles rendering of individual list rows
type RowRenderer struct {
	styles *Styles
}

// NewRowRenderer creates a new row renderer
func NewRowRenderer(styles *Styles) *RowRenderer {
	return &RowRenderer{styles: styles}
}

// RenderRow renders a single row padded to width
func (r *RowRenderer) RenderRow(row Row, width int) string {
	var parts []string

	if row.Header {
		line := pad(" "+row.Label, width)
		rendered := r.styles.Header.Render(line)
		if row.ZoneID != "" {
			rendered = zone.Mark(row.ZoneID, rendered)
		}
		return rendered
	}

	parts = append(parts, r.styles.Grip.Render(" ≡ "))

	indicator := "[ ]"
	if row.Selected {
		indicator = "[x]"
	}
	if row.Selected {
		parts = append(parts, r.styles.Selected.Render(indicator))
	} else {
		parts = append(parts, indicator)
	}

	parts = append(parts, " "+row.Label)

	line := pad(strings.Join(parts, ""), width)

	style := r.styles.Row
	switch {
	case row.Carried:
		style = r.styles.Carried
	case row.Cursor:
		style = r.styles.RowCursor
	case row.Hovered:
		style = r.styles.RowHover
	}
	rendered := style.Render(line)
	if row.ZoneID != "" {
		rendered = zone.Mark(row.ZoneID, rendered)
	}
	return rendered
}

// pad fills line with spaces up to width, truncating on overflow
func pad(line string, width int) string {
	w := lipgloss.Width(line)
	if w >= width {
		return line
	}
	return line + strings.Repeat(" ", width-w)
}
