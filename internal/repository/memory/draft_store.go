package memory

import (
	"context"
	"sync"

	"altranzfest/internal/domain"
)

type draftStore struct {
	mu     sync.Mutex
	drafts map[string]domain.RegistrationDraft
}

// NewDraftStore returns a process-local DraftStore. Drafts live until cleared
// or until the process exits.
func NewDraftStore() domain.DraftStore {
	return &draftStore{drafts: make(map[string]domain.RegistrationDraft)}
}

func (s *draftStore) Save(ctx context.Context, sessionID string, draft *domain.RegistrationDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[sessionID] = cloneDraft(draft)
	return nil
}

func (s *draftStore) Load(ctx context.Context, sessionID string) (*domain.RegistrationDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[sessionID]
	if !ok {
		return nil, domain.ErrDraftAbsent
	}
	out := cloneDraft(&d)
	return &out, nil
}

func (s *draftStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
	return nil
}

func cloneDraft(d *domain.RegistrationDraft) domain.RegistrationDraft {
	out := *d
	out.SelectedEvents = append([]domain.Event(nil), d.SelectedEvents...)
	return out
}
