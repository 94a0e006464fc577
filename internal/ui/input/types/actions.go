package types

import "draglist/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type SelectToggleAction struct {
	Index int // -1 for current cursor row
}

func (a SelectToggleAction) Type() string { return "select_toggle" }

type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "select_all" }

type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

// Pointer actions
type ClickAction struct {
	ID   domain.ItemID
	Ctrl bool
}

func (a ClickAction) Type() string { return "click" }

type DragStartAction struct {
	ID      domain.ItemID
	Pointer domain.Pos
}

func (a DragStartAction) Type() string { return "drag_start" }

type DragMoveAction struct {
	Pointer domain.Pos
}

func (a DragMoveAction) Type() string { return "drag_move" }

type DragReleaseAction struct{}

func (a DragReleaseAction) Type() string { return "drag_release" }

// Keyboard reorder of the selected rows
type MoveSelectionAction struct {
	Direction string // "up" or "down"
}

func (a MoveSelectionAction) Type() string { return "move_selection" }

// Command actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type SaveOrderAction struct{}

func (a SaveOrderAction) Type() string { return "save_order" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
