package views

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// Composite splices the overlay lines into base at the given cell position.
// Base cells covered by an overlay line are replaced; everything else is
// left untouched. Rows outside the base are dropped.
func Composite(base string, overlay []string, row, col int) string {
	if len(overlay) == 0 {
		return base
	}
	if col < 0 {
		col = 0
	}

	lines := strings.Split(base, "\n")
	for i, ov := range overlay {
		target := row + i
		if target < 0 || target >= len(lines) {
			continue
		}
		lines[target] = spliceLine(lines[target], ov, col)
	}
	return strings.Join(lines, "\n")
}

// spliceLine overwrites line with ov starting at column col.
func spliceLine(line, ov string, col int) string {
	ovWidth := xansi.StringWidth(ov)
	if ovWidth == 0 {
		return line
	}

	lineWidth := xansi.StringWidth(line)
	if lineWidth < col {
		line = line + strings.Repeat(" ", col-lineWidth)
		lineWidth = col
	}

	left := xansi.Cut(line, 0, col)
	right := ""
	if lineWidth > col+ovWidth {
		right = xansi.Cut(line, col+ovWidth, lineWidth)
	}
	return left + ov + right
}
