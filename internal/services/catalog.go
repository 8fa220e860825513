package services

import (
	"context"
	"fmt"

	"altranzfest/internal/domain"
)

type catalogService struct {
	catalog domain.EventCatalog
}

// NewCatalogService returns a CatalogService backed by catalog.
func NewCatalogService(catalog domain.EventCatalog) domain.CatalogService {
	return &catalogService{catalog: catalog}
}

// ListEvents returns the catalog in order, narrowed to eventType unless it is empty or "All".
func (s *catalogService) ListEvents(ctx context.Context, eventType domain.EventType) (domain.Catalog, error) {
	events, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events.Filter(eventType), nil
}
