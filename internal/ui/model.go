package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"draglist/internal/config"
	"draglist/internal/domain"
	"draglist/internal/drag"
	"draglist/internal/eventbus"
	"draglist/internal/list"
	"draglist/internal/ui/input"
	"draglist/internal/ui/input/types"
	"draglist/internal/ui/views"
)

const (
	frameInterval = time.Second / 30
	statusTTL     = 3 * time.Second
)

// Model is the top-level Bubble Tea model
type Model struct {
	bus        eventbus.EventBus
	cfg        *config.Config
	cfgService config.Service
	cfgPath    string

	list *list.Model
	ctrl *drag.Controller

	handler    *input.Handler
	renderer   *views.Renderer
	helpRender *HelpRenderer
	program    *tea.Program

	keys keyMap
	help help.Model

	width  int
	height int

	cursor  int           // storage index of the cursor row
	hovered domain.ItemID // 0 when the pointer is not over a value row
	pressed *pressedState
	pointer domain.Pos

	lastTick     time.Time
	statusMsg    string
	statusExpiry time.Time
	quitting     bool
}

// NewModel creates the UI model from a loaded config
func NewModel(bus eventbus.EventBus, cfgService config.Service, cfg *config.Config, cfgPath string) *Model {
	lst := list.FromSections(cfg.DomainSections(), cfg.UI.SlewRate)
	lst.LayoutStatic()

	m := &Model{
		bus:        bus,
		cfg:        cfg,
		cfgService: cfgService,
		cfgPath:    cfgPath,
		list:       lst,
		ctrl:       drag.NewController(lst, cfg.UI.ActivationThreshold),
		handler:    input.New(),
		renderer:   views.NewRenderer(),
		helpRender: NewHelpRenderer(),
		keys:       newKeyMap(),
		help:       help.New(),
	}
	m.cursor = m.firstValueRow()
	return m
}

// SetProgram gives the model a reference to the running program,
// needed for releasing the terminal to the help pager.
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.step(time.Time(msg))
		if m.quitting {
			return m, nil
		}
		return m, m.tick()

	case tea.KeyMsg:
		return m.applyActions(m.handler.HandleKey(msg, m))

	case tea.MouseMsg:
		return m.applyActions(m.translateMouse(msg))

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.setStatus("help: " + msg.err.Error())
		}
		return m, nil

	case saveResultMsg:
		if msg.err != nil {
			m.setStatus("save failed: " + msg.err.Error())
		} else {
			m.setStatus("order saved")
		}
		return m, nil
	}
	return m, nil
}

// step advances the animation by one frame
func (m *Model) step(now time.Time) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	if dt < 0 {
		dt = 0
	}
	if dt > 0.1 {
		dt = 0.1
	}
	m.lastTick = now

	if m.ctrl.Active() {
		m.list.LayoutDuringDrag(m.ctrl.SplitPoint(), m.ctrl.CarriedCount(), m.ctrl.IsCarried)
		m.list.StepAnimation(dt, m.ctrl.IsCarried)
	} else {
		m.list.LayoutStatic()
	}

	if !m.statusExpiry.IsZero() && now.After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusExpiry = time.Time{}
	}
}

func (m *Model) applyActions(actions []types.Action) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, action := range actions {
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.NavigateAction:
		m.moveCursor(a.Direction)

	case types.SelectToggleAction:
		idx := a.Index
		if idx < 0 {
			idx = m.cursor
		}
		item := m.list.At(idx)
		if item == nil || item.Header() {
			return nil
		}
		if m.list.SelectToggle(item.ID) {
			m.bus.Publish(eventbus.SelectionChangedEvent{
				Toggled:  item.ID,
				Selected: m.list.SelectedCount(),
			})
		}

	case types.SelectAllAction:
		m.list.SelectAll()
		m.bus.Publish(eventbus.SelectionChangedEvent{Selected: m.list.SelectedCount()})

	case types.DeselectAllAction:
		m.list.ClearSelection()
		m.bus.Publish(eventbus.SelectionClearedEvent{})

	case types.ClickAction:
		m.handleClick(a.ID, a.Ctrl)

	case types.DragStartAction:
		item := m.list.ByID(a.ID)
		if item == nil {
			return nil
		}
		topLeft := domain.Pos{X: 0, Y: item.ListY.Current}
		m.ctrl.Begin(a.ID, a.Pointer, topLeft)

	case types.DragMoveAction:
		m.pointer = a.Pointer
		if m.ctrl.Update(a.Pointer) {
			m.bus.Publish(eventbus.DragStartedEvent{
				Dragged: m.ctrl.DraggedID(),
				Carried: m.ctrl.CarriedCount(),
			})
		}

	case types.DragReleaseAction:
		carried := m.ctrl.CarriedIDs()
		split := m.ctrl.SplitPoint()
		if m.ctrl.Release() {
			m.list.LayoutStatic()
			m.bus.Publish(eventbus.DragCompletedEvent{Carried: carried, Split: split})
			m.bus.Publish(eventbus.ItemsReorderedEvent{Sections: m.list.Sections()})
		}

	case types.MoveSelectionAction:
		if m.moveSelection(a.Direction) {
			m.bus.Publish(eventbus.ItemsReorderedEvent{Sections: m.list.Sections()})
		}

	case types.SaveOrderAction:
		return m.saveCmd()

	case types.ToggleHelpAction:
		return m.fetchHelpPager()

	case types.QuitAction:
		m.quitting = true
		if !a.Force && m.cfg.UI.AutosaveOrder {
			return tea.Sequence(m.saveCmd(), tea.Quit)
		}
		return tea.Quit
	}
	return nil
}

// handleClick runs the click selection protocol: toggle first, then
// extend from the previous click when ctrl is held.
func (m *Model) handleClick(id domain.ItemID, ctrl bool) {
	prev, hadPrev := m.list.LastClick()

	m.list.SelectToggle(id)
	if ctrl && hadPrev {
		m.list.SelectRange(prev.ID, id)
	}
	m.list.RecordClick(id, ctrl)

	if idx, ok := m.list.IndexOf(id); ok {
		m.cursor = idx
	}
	m.bus.Publish(eventbus.SelectionChangedEvent{
		Toggled:  id,
		Selected: m.list.SelectedCount(),
	})
}

func (m *Model) moveCursor(direction string) {
	switch direction {
	case "up":
		for i := m.cursor - 1; i >= 0; i-- {
			if !m.list.At(i).Header() {
				m.cursor = i
				return
			}
		}
	case "down":
		for i := m.cursor + 1; i < m.list.Len(); i++ {
			if !m.list.At(i).Header() {
				m.cursor = i
				return
			}
		}
	case "home":
		m.cursor = m.firstValueRow()
	case "end":
		for i := m.list.Len() - 1; i >= 0; i-- {
			if !m.list.At(i).Header() {
				m.cursor = i
				return
			}
		}
	}
}

func (m *Model) firstValueRow() int {
	for i := 0; i < m.list.Len(); i++ {
		if !m.list.At(i).Header() {
			return i
		}
	}
	return 0
}

// moveSelection shifts the selected rows, or the cursor row when
// nothing is selected, one slot up or down through the same commit
// path a drop uses. Selection is restored afterwards so repeated
// moves keep working.
func (m *Model) moveSelection(direction string) bool {
	ids := m.list.SelectedIDs()
	restore := len(ids) > 0
	if len(ids) == 0 {
		item := m.list.At(m.cursor)
		if item == nil || item.Header() {
			return false
		}
		ids = []domain.ItemID{item.ID}
	}

	set := make(map[domain.ItemID]bool, len(ids))
	minIdx, maxIdx := m.list.Len(), -1
	for _, id := range ids {
		set[id] = true
		idx, ok := m.list.IndexOf(id)
		if !ok {
			return false
		}
		if idx < minIdx {
			minIdx = idx
		}
		if idx > maxIdx {
			maxIdx = idx
		}
	}

	var split int
	switch direction {
	case "up":
		split = minIdx - 1
		if split < 1 {
			return false
		}
	case "down":
		split = maxIdx + 2
		if split > m.list.Len() {
			return false
		}
	default:
		return false
	}

	carried := func(id domain.ItemID) bool { return set[id] }
	m.list.CommitDrag(split, carried)
	if restore {
		for _, id := range ids {
			m.list.SelectToggle(id)
		}
	}
	m.list.LayoutStatic()

	if idx, ok := m.list.IndexOf(ids[0]); ok {
		m.cursor = idx
	}
	return true
}

func (m *Model) saveCmd() tea.Cmd {
	m.cfg.SetSections(m.list.Sections())
	cfg := m.cfg
	svc := m.cfgService
	path := m.cfgPath
	return func() tea.Msg {
		return saveResultMsg{err: svc.SaveToPath(cfg, path)}
	}
}

func (m *Model) fetchHelpPager() tea.Cmd {
	content := m.helpRender.RenderHelpContent()
	ops := NewHelpOps(m.program)
	return func() tea.Msg {
		return helpPagerMsg{err: ops.ShowHelpInPager(content)}
	}
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.ConfigSavedEvent:
		m.setStatus("saved " + e.Path)
	case eventbus.ConfigLoadedEvent:
		m.setStatus("loaded " + e.Path)
	}
}

func (m *Model) setStatus(s string) {
	m.statusMsg = s
	m.statusExpiry = time.Now().Add(statusTTL)
}

// Context interface for input handling

func (m *Model) CurrentIndex() int { return m.cursor }

func (m *Model) TotalItems() int { return m.list.Len() }

func (m *Model) HasSelection() bool { return m.list.SelectedCount() > 0 }

func (m *Model) SelectedCount() int { return m.list.SelectedCount() }

func (m *Model) IsOnHeader() bool {
	item := m.list.At(m.cursor)
	return item == nil || item.Header()
}

func (m *Model) Dragging() bool { return m.ctrl.Dragging() }

func (m *Model) View() string {
	dragging := m.ctrl.Active()

	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		CanvasRows:    m.list.Len(),
		Dragging:      dragging,
		SelectedCount: m.list.SelectedCount(),
		StatusMessage: m.statusMsg,
		FooterHelp:    m.help.View(m.keys),
	}

	for i := 0; i < m.list.Len(); i++ {
		item := m.list.At(i)
		if dragging && m.ctrl.IsCarried(item.ID) {
			continue
		}
		state.Rows = append(state.Rows, views.Row{
			ZoneID:   rowZoneID(item.ID),
			Label:    item.Label,
			Header:   item.Header(),
			Selected: item.Selected,
			Hovered:  !dragging && item.ID == m.hovered,
			Cursor:   !dragging && i == m.cursor,
			Cell:     views.CellForY(item.ListY.Current),
		})
	}

	if dragging {
		anchor := m.ctrl.Anchor(m.pointer)
		col := views.CellForX(anchor.X)
		if col < 0 {
			col = 0
		}
		state.CarriedCol = col
		for _, id := range m.ctrl.CarriedIDs() {
			item := m.list.ByID(id)
			if item == nil {
				continue
			}
			state.Carried = append(state.Carried, views.Row{
				Label:    item.Label,
				Selected: item.Selected,
				Carried:  true,
				Cell:     views.CellForY(anchor.Y + item.DragY.Current),
			})
		}
	}

	return zone.Scan(m.renderer.Render(state))
}
