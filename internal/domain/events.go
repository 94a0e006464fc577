package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventSelectionCleared EventType = "SelectionCleared"
	EventDragStarted      EventType = "DragStarted"
	EventDragCompleted    EventType = "DragCompleted"
	EventItemsReordered   EventType = "ItemsReordered"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted when an item's selection flag flips
type SelectionChangedEvent struct {
	Toggled  ItemID
	Selected int // total selected items after the change
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionClearedEvent is emitted when all selection flags are cleared
type SelectionClearedEvent struct{}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// DragStartedEvent is emitted when a drag gesture crosses the activation
// threshold and items visually detach from the list
type DragStartedEvent struct {
	Dragged ItemID
	Carried int // size of the carried set, grabbed item included
}

func (e DragStartedEvent) Type() EventType { return EventDragStarted }

// DragCompletedEvent is emitted when an active drag is released and the
// reorder has been committed
type DragCompletedEvent struct {
	Carried []ItemID
	Split   int
}

func (e DragCompletedEvent) Type() EventType { return EventDragCompleted }

// ItemsReorderedEvent is emitted whenever the stored order changes,
// carrying the full new order so subscribers can persist it
type ItemsReorderedEvent struct {
	Sections []Section
}

func (e ItemsReorderedEvent) Type() EventType { return EventItemsReordered }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
