package domain

import "context"

// EventType categorises fest events for filtering.
type EventType string

const (
	EventTypeTechnical    EventType = "Technical"
	EventTypeNonTechnical EventType = "Non-Technical"
	EventTypeWorkshop     EventType = "Workshop"
)

// EventTypeAll is the filter value that matches every event type.
const EventTypeAll EventType = "All"

// Event is a single fest event a visitor can sign up for. Fee is in rupees.
// swagger:model Event
type Event struct {
	ID   int       `json:"id"`
	Name string    `json:"name"`
	Type EventType `json:"type"`
	Fee  int       `json:"fee"`
}

// Catalog is the ordered list of events offered by the fest.
type Catalog []Event

// Find returns the event with the given id.
func (c Catalog) Find(id int) (Event, bool) {
	for _, e := range c {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

// Filter returns the events of the given type, preserving catalog order.
// An empty type or EventTypeAll returns every event.
func (c Catalog) Filter(t EventType) Catalog {
	if t == "" || t == EventTypeAll {
		return c
	}
	out := Catalog{}
	for _, e := range c {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// EventCatalog provides the fest's event list.
type EventCatalog interface {
	List(ctx context.Context) (Catalog, error)
}

// CatalogService defines read operations over the event catalog.
type CatalogService interface {
	ListEvents(ctx context.Context, eventType EventType) (Catalog, error)
}
