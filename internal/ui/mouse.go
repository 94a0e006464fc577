package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"draglist/internal/domain"
	"draglist/internal/drag"
	"draglist/internal/ui/input/types"
	"draglist/internal/ui/views"
)

// pressedState tracks a left button press that has not become a drag yet
type pressedState struct {
	id   domain.ItemID
	pos  domain.Pos
	ctrl bool
}

func rowZoneID(id domain.ItemID) string {
	return fmt.Sprintf("row-%d", id)
}

// rowAt returns the item under the mouse, resolved through the hit zones
func (m *Model) rowAt(msg tea.MouseMsg) (domain.ItemID, bool) {
	for i := 0; i < m.list.Len(); i++ {
		item := m.list.At(i)
		if zone.Get(rowZoneID(item.ID)).InBounds(msg) {
			return item.ID, true
		}
	}
	return 0, false
}

// translateMouse turns raw mouse events into input actions
func (m *Model) translateMouse(msg tea.MouseMsg) []types.Action {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		id, ok := m.rowAt(msg)
		if !ok || m.list.IsHeader(id) {
			m.pressed = nil
			return nil
		}
		m.pressed = &pressedState{
			id:   id,
			pos:  views.PointAt(msg.X, msg.Y),
			ctrl: msg.Ctrl,
		}
		return nil

	case tea.MouseActionMotion:
		pointer := views.PointAt(msg.X, msg.Y)
		m.updateHover(msg)

		if m.ctrl.Phase() != drag.PhaseIdle {
			return []types.Action{types.DragMoveAction{Pointer: pointer}}
		}
		if m.pressed != nil {
			// First motion while pressed arms the drag at the press point
			return []types.Action{
				types.DragStartAction{ID: m.pressed.id, Pointer: m.pressed.pos},
				types.DragMoveAction{Pointer: pointer},
			}
		}
		return nil

	case tea.MouseActionRelease:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		pressed := m.pressed
		m.pressed = nil

		if m.ctrl.Active() {
			return []types.Action{types.DragReleaseAction{}}
		}
		// A drag that never crossed the threshold resolves as a click.
		var actions []types.Action
		if m.ctrl.Phase() == drag.PhasePending {
			actions = append(actions, types.DragReleaseAction{})
		}
		if pressed != nil {
			actions = append(actions, types.ClickAction{ID: pressed.id, Ctrl: pressed.ctrl})
		}
		return actions
	}
	return nil
}

// updateHover tracks which value row the pointer is over
func (m *Model) updateHover(msg tea.MouseMsg) {
	id, ok := m.rowAt(msg)
	if !ok || m.list.IsHeader(id) {
		m.hovered = 0
		return
	}
	m.hovered = id
}
