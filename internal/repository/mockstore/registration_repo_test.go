package mockstore

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"altranzfest/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationRepository_Create(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	repo := NewRegistrationRepository(logger)
	require.Equal(t, domain.PersistenceModeMock, repo.Mode())

	rec := &domain.RegistrationRecord{
		FullName:      "Asha Rao",
		Email:         "asha@example.com",
		Events:        []domain.Event{{ID: 1, Name: "Hackathon", Fee: 150}},
		TotalFee:      150,
		TransactionID: "TXN123",
	}
	require.NoError(t, repo.Create(context.Background(), rec))

	assert.True(t, strings.HasPrefix(rec.ID, "mock-"))
	assert.Equal(t, domain.PaymentStatusPending, rec.PaymentStatus)
	out := buf.String()
	assert.Contains(t, out, "mock mode: skipping datastore write")
	assert.Contains(t, out, "asha@example.com")
	assert.Contains(t, out, "TXN123")
}

func TestRegistrationRepository_IDsAreUnique(t *testing.T) {
	repo := NewRegistrationRepository(slog.New(slog.DiscardHandler))
	a := &domain.RegistrationRecord{}
	b := &domain.RegistrationRecord{}
	require.NoError(t, repo.Create(context.Background(), a))
	require.NoError(t, repo.Create(context.Background(), b))
	assert.NotEqual(t, a.ID, b.ID)
}
