package client

import (
	"context"
	"errors"
	"sync"
	"testing"

	"altranzfest/internal/domain"
	"altranzfest/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI records submissions and returns a fixed result.
type fakeAPI struct {
	mu        sync.Mutex
	catalog   domain.Catalog
	submitErr error
	submitted []*domain.RegistrationSubmission
	block     chan struct{} // if set, Submit waits for it to be closed
	entered   chan struct{} // if set, closed when Submit is first entered
}

func (f *fakeAPI) ListEvents(ctx context.Context, t domain.EventType) (domain.Catalog, error) {
	return f.catalog.Filter(t), nil
}

func (f *fakeAPI) Submit(ctx context.Context, sub *domain.RegistrationSubmission) (*domain.RegistrationReceipt, error) {
	f.mu.Lock()
	f.submitted = append(f.submitted, sub)
	entered := f.entered
	f.entered = nil
	f.mu.Unlock()
	if entered != nil {
		close(entered)
	}
	if f.block != nil {
		<-f.block
	}
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &domain.RegistrationReceipt{Message: "Registration successful (MOCK)", RegistrationID: "mock-1"}, nil
}

func (f *fakeAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.submitted)
}

var asha = PersonalDetails{
	FullName:   "Asha Rao",
	Email:      "asha@example.com",
	Phone:      "9876543210",
	College:    "City College",
	Department: "CSE",
	Year:       "3",
}

func newTestSession(t *testing.T, api *fakeAPI, opts ...SessionOption) (*Session, domain.DraftStore) {
	t.Helper()
	drafts := memory.NewDraftStore()
	s := NewSession("sess-1", api, drafts, opts...)
	require.NoError(t, s.LoadCatalog(context.Background()))
	return s, drafts
}

func TestSession_Scenario(t *testing.T) {
	api := &fakeAPI{catalog: twoEvents}
	s, drafts := newTestSession(t, api)
	ctx := context.Background()

	s.Toggle(1)
	s.Toggle(4)
	assert.Equal(t, 230, s.TotalFee())

	draft, err := s.SubmitRegistration(ctx, asha)
	require.NoError(t, err)
	assert.Equal(t, 230, draft.TotalFee)
	assert.Equal(t, StateSaved, s.State())

	loaded, err := s.EnterPayment(ctx)
	require.NoError(t, err)
	assert.Equal(t, 230, loaded.TotalFee)
	assert.Len(t, loaded.SelectedEvents, 2)

	receipt, err := s.ConfirmPayment(ctx, "TXN123")
	require.NoError(t, err)
	assert.Equal(t, "mock-1", receipt.RegistrationID)
	assert.Equal(t, StateConfirmed, s.State())

	require.Len(t, api.submitted, 1)
	sub := api.submitted[0]
	assert.Equal(t, 230, sub.TotalFee)
	assert.Len(t, sub.SelectedEvents, 2)
	assert.Equal(t, "TXN123", sub.TransactionID)
	assert.Equal(t, "Asha Rao", sub.FullName)

	_, err = drafts.Load(ctx, "sess-1")
	require.ErrorIs(t, err, domain.ErrDraftAbsent)
	assert.Equal(t, 0, s.TotalFee())
}

func TestSession_SubmitRegistration_EmptySelection(t *testing.T) {
	api := &fakeAPI{catalog: twoEvents}
	s, drafts := newTestSession(t, api)
	ctx := context.Background()

	prior := &domain.RegistrationDraft{FullName: "earlier", TotalFee: 80}
	require.NoError(t, drafts.Save(ctx, "sess-1", prior))

	_, err := s.SubmitRegistration(ctx, asha)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "at least one event required")
	assert.Equal(t, StateBuilding, s.State())

	stored, err := drafts.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "earlier", stored.FullName, "existing draft must not be overwritten")
}

func TestSession_SubmitRegistration_OverwritesDraft(t *testing.T) {
	api := &fakeAPI{catalog: twoEvents}
	s, drafts := newTestSession(t, api)
	ctx := context.Background()

	s.Toggle(1)
	_, err := s.SubmitRegistration(ctx, asha)
	require.NoError(t, err)
	s.Toggle(4)
	_, err = s.SubmitRegistration(ctx, asha)
	require.NoError(t, err)

	stored, err := drafts.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 230, stored.TotalFee)
}

func TestSession_NoDraftAbandons(t *testing.T) {
	api := &fakeAPI{catalog: twoEvents}
	s, _ := newTestSession(t, api)

	_, err := s.ConfirmPayment(context.Background(), "TXN123")
	require.ErrorIs(t, err, domain.ErrDraftAbsent)
	assert.Equal(t, StateAbandoned, s.State())
	assert.Equal(t, 0, api.calls())

	s.Toggle(1)
	assert.Equal(t, StateBuilding, s.State())
}

func TestSession_EmptyTransactionID(t *testing.T) {
	api := &fakeAPI{catalog: twoEvents}
	s, drafts := newTestSession(t, api)
	ctx := context.Background()

	s.Toggle(1)
	_, err := s.SubmitRegistration(ctx, asha)
	require.NoError(t, err)

	for _, txn := range []string{"", "   "} {
		_, err = s.ConfirmPayment(ctx, txn)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Equal(t, 0, api.calls())
	_, err = drafts.Load(ctx, "sess-1")
	require.NoError(t, err, "draft must still be present")
}

func TestSession_RejectedKeepsDraft(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"server error", &domain.ServerError{StatusCode: 500, Message: "Server error during registration"}},
		{"transport error", &domain.TransportError{Err: errors.New("connection refused")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{catalog: twoEvents, submitErr: tt.err}
			s, drafts := newTestSession(t, api)
			ctx := context.Background()

			s.Toggle(4)
			_, err := s.SubmitRegistration(ctx, asha)
			require.NoError(t, err)

			_, err = s.ConfirmPayment(ctx, "TXN9")
			require.ErrorIs(t, err, tt.err)
			assert.Equal(t, StateRejected, s.State())
			_, err = drafts.Load(ctx, "sess-1")
			require.NoError(t, err)

			api.submitErr = nil
			_, err = s.ConfirmPayment(ctx, "TXN9")
			require.NoError(t, err)
			assert.Equal(t, StateConfirmed, s.State())
			assert.Equal(t, 2, api.calls())
		})
	}
}

func TestSession_SingleSubmissionInFlight(t *testing.T) {
	api := &fakeAPI{catalog: twoEvents, block: make(chan struct{}), entered: make(chan struct{})}
	entered := api.entered
	s, _ := newTestSession(t, api)
	ctx := context.Background()

	s.Toggle(1)
	_, err := s.SubmitRegistration(ctx, asha)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := s.ConfirmPayment(ctx, "TXN1")
		done <- err
	}()
	<-entered

	_, err = s.ConfirmPayment(ctx, "TXN1")
	require.ErrorIs(t, err, ErrSubmissionInFlight)

	close(api.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, api.calls())
}

func TestSession_RendersOnChange(t *testing.T) {
	var views []View
	api := &fakeAPI{catalog: twoEvents}
	s, _ := newTestSession(t, api, WithRenderer(func(v View) { views = append(views, v) }))
	require.Len(t, views, 1, "catalog load renders")

	s.Toggle(1)
	last := views[len(views)-1]
	assert.Equal(t, 150, last.TotalFee)
	require.Len(t, last.Events, 2)
	assert.True(t, last.Events[0].Selected)
	assert.False(t, last.Events[1].Selected)

	s.SetFilter(domain.EventTypeNonTechnical)
	last = views[len(views)-1]
	assert.Equal(t, domain.EventTypeNonTechnical, last.Filter)
	require.Len(t, last.Events, 1)
	assert.Equal(t, "Treasure Hunt", last.Events[0].Name)
	assert.Equal(t, 150, last.TotalFee, "filter does not change the fee")
	assert.True(t, s.IsSelected(1))
}
