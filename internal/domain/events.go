package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded   EventType = "CatalogLoaded"
	EventQueryChanged    EventType = "QueryChanged"
	EventResultsRendered EventType = "ResultsRendered"
	EventSymbolSelected  EventType = "SymbolSelected"
	EventError           EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted once the catalog has been loaded and validated
type CatalogLoadedEvent struct {
	Source  string
	Records int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// QueryChangedEvent is emitted when the input widget reports a new value
type QueryChangedEvent struct {
	Query string
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// ResultsRenderedEvent is emitted after the results container was repopulated
type ResultsRenderedEvent struct {
	Query string
	Count int
}

func (e ResultsRenderedEvent) Type() EventType { return EventResultsRendered }

// SymbolSelectedEvent is emitted when the user picks an option
type SymbolSelectedEvent struct {
	Symbol string
	Name   string
}

func (e SymbolSelectedEvent) Type() EventType { return EventSymbolSelected }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
