package services

import (
	"context"
	"errors"
	"testing"

	"altranzfest/internal/domain"
	"altranzfest/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCatalog struct{ err error }

func (f failingCatalog) List(ctx context.Context) (domain.Catalog, error) { return nil, f.err }

func TestCatalogService_ListEvents(t *testing.T) {
	svc := NewCatalogService(memory.NewEventCatalog())

	tests := []struct {
		name      string
		eventType domain.EventType
		wantIDs   []int
	}{
		{"empty type returns all", "", []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"all returns all", domain.EventTypeAll, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"technical", domain.EventTypeTechnical, []int{1, 2, 3}},
		{"non-technical", domain.EventTypeNonTechnical, []int{4, 5, 6}},
		{"workshop", domain.EventTypeWorkshop, []int{7, 8}},
		{"unknown type matches nothing", "Cultural", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := svc.ListEvents(context.Background(), tt.eventType)
			require.NoError(t, err)
			ids := make([]int, 0, len(events))
			for _, e := range events {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCatalogService_ListEvents_Error(t *testing.T) {
	boom := errors.New("boom")
	svc := NewCatalogService(failingCatalog{err: boom})
	_, err := svc.ListEvents(context.Background(), "")
	require.ErrorIs(t, err, boom)
}
