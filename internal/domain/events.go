package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRowsLoaded     EventType = "RowsLoaded"
	EventRowsChanged    EventType = "RowsChanged"
	EventRowsDeleted    EventType = "RowsDeleted"
	EventActionInvoked  EventType = "ActionInvoked"
	EventError          EventType = "Error"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
	EventConfigChanged  EventType = "ConfigChanged"
	EventActivityLogged EventType = "ActivityLogged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// RowsLoadedEvent is emitted after the dataset has been read
type RowsLoadedEvent struct {
	Count  int
	Source string
}

func (e RowsLoadedEvent) Type() EventType { return EventRowsLoaded }

// RowsChangedEvent is emitted when the dataset needs to be persisted
type RowsChangedEvent struct {
	Rows []Row // full dataset after the change
}

func (e RowsChangedEvent) Type() EventType { return EventRowsChanged }

// RowsDeletedEvent is emitted after selected rows were removed
type RowsDeletedEvent struct {
	IDs    []string
	Hidden int // how many of the removed rows were not rendered
}

func (e RowsDeletedEvent) Type() EventType { return EventRowsDeleted }

// ActionInvokedEvent is emitted when a toolbar action runs against the selection
type ActionInvokedEvent struct {
	ActionID string
	Label    string
	RowIDs   []string
}

func (e ActionInvokedEvent) Type() EventType { return EventActionInvoked }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path   string
	Locale string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when a runtime setting changed and should be saved
type ConfigChangedEvent struct {
	KeepSelected bool
	PageSize     int
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// ActivityLoggedEvent is emitted for every line appended to the activity log
type ActivityLoggedEvent struct {
	Line string
}

func (e ActivityLoggedEvent) Type() EventType { return EventActivityLogged }
