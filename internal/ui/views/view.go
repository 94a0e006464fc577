package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"draglist/internal/domain"
	"draglist/internal/list"
)

// Terminal layout of the screen. The title occupies row 0, row 1 is
// blank and the list canvas starts at ListOriginRow. Every canvas cell
// spans CellWidthPoints points horizontally and list.RowHeight points
// vertically, which is what the mouse translation relies on.
const (
	ListOriginRow = 2
	ListOriginCol = 0

	CellWidthPoints = 11.0

	listWidth = 34
)

// PointAt maps a terminal cell to the point at the cell's center.
func PointAt(cellX, cellY int) domain.Pos {
	return domain.Pos{
		X: float64(cellX-ListOriginCol)*CellWidthPoints + CellWidthPoints/2,
		Y: float64(cellY-ListOriginRow)*list.RowHeight + list.RowHeight/2,
	}
}

// CellForY maps a point y coordinate to a canvas row.
func CellForY(y float64) int {
	return int(math.Round(y / list.RowHeight))
}

// CellForX maps a point x coordinate to a canvas column.
func CellForX(x float64) int {
	return int(math.Round(x / CellWidthPoints))
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Rows       []Row // settled rows, positioned by Cell
	CanvasRows int   // height of the list canvas in cells

	Dragging   bool
	Carried    []Row // carried stack, positioned by Cell
	CarriedCol int

	StatusMessage string
	SelectedCount int
	FooterHelp    string
}

// Renderer handles all view rendering
type Renderer struct {
	styles    *Styles
	rowRender *RowRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:    styles,
		rowRender: NewRowRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n\n")
	content.WriteString(r.renderCanvas(state))

	if state.FooterHelp != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.FooterHelp))
	}

	return content.String()
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("draglist")

	rightContent := ""
	if state.SelectedCount > 0 {
		rightContent = fmt.Sprintf("%d selected", state.SelectedCount)
	}
	if state.StatusMessage != "" {
		if rightContent != "" {
			rightContent = fmt.Sprintf("%s | %s", rightContent, state.StatusMessage)
		} else {
			rightContent = state.StatusMessage
		}
	}
	if rightContent == "" {
		return logo
	}

	rightContent = r.styles.Dim.Render(rightContent)
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	paddingWidth := termWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth <= 0 {
		return fmt.Sprintf("%s  %s", logo, rightContent)
	}
	return logo + strings.Repeat(" ", paddingWidth) + rightContent
}

func (r *Renderer) renderCanvas(state ViewState) string {
	height := state.CanvasRows
	for _, row := range state.Rows {
		if row.Cell+1 > height {
			height = row.Cell + 1
		}
	}

	lines := make([]string, height)
	for i := range lines {
		lines[i] = pad("", listWidth)
	}
	for _, row := range state.Rows {
		if row.Cell < 0 || row.Cell >= height {
			continue
		}
		lines[row.Cell] = r.rowRender.RenderRow(row, listWidth)
	}
	canvas := strings.Join(lines, "\n")

	if state.Dragging {
		for _, row := range state.Carried {
			line := r.rowRender.RenderRow(row, listWidth)
			canvas = Composite(canvas, []string{line}, row.Cell, state.CarriedCol)
		}
	}

	return canvas
}
