package memory

import (
	"context"

	"altranzfest/internal/domain"
)

// festEvents is the fixed line-up served to visitors.
var festEvents = domain.Catalog{
	{ID: 1, Name: "Hackathon", Type: domain.EventTypeTechnical, Fee: 150},
	{ID: 2, Name: "Coding Contest", Type: domain.EventTypeTechnical, Fee: 100},
	{ID: 3, Name: "Paper Presentation", Type: domain.EventTypeTechnical, Fee: 120},
	{ID: 4, Name: "Treasure Hunt", Type: domain.EventTypeNonTechnical, Fee: 80},
	{ID: 5, Name: "Photography", Type: domain.EventTypeNonTechnical, Fee: 80},
	{ID: 6, Name: "Gaming (FIFA)", Type: domain.EventTypeNonTechnical, Fee: 100},
	{ID: 7, Name: "Web Dev Workshop", Type: domain.EventTypeWorkshop, Fee: 250},
	{ID: 8, Name: "AI/ML Workshop", Type: domain.EventTypeWorkshop, Fee: 300},
}

type eventCatalog struct {
	events domain.Catalog
}

// NewEventCatalog returns the fest's fixed event catalog.
func NewEventCatalog() domain.EventCatalog {
	return &eventCatalog{events: festEvents}
}

// NewEventCatalogFrom serves the given events instead of the fest line-up.
func NewEventCatalogFrom(events domain.Catalog) domain.EventCatalog {
	return &eventCatalog{events: events}
}

// List returns a copy so callers cannot mutate the shared list.
func (c *eventCatalog) List(ctx context.Context) (domain.Catalog, error) {
	out := make(domain.Catalog, len(c.events))
	copy(out, c.events)
	return out, nil
}
