package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"altranzfest/internal/domain"
)

// ErrSubmissionInFlight is returned when a payment confirmation is already being sent.
var ErrSubmissionInFlight = errors.New("a submission is already in progress")

// State is the position of a session in the registration workflow.
type State string

const (
	StateBuilding  State = "building"
	StateSaved     State = "saved"
	StateSubmitted State = "submitted"
	StateConfirmed State = "confirmed"
	StateRejected  State = "rejected"
	StateAbandoned State = "abandoned"
)

// PersonalDetails are the registrant fields collected in the first phase.
type PersonalDetails struct {
	FullName   string
	Email      string
	Phone      string
	College    string
	Department string
	Year       string
}

// EventView is one catalog row as presented to the visitor.
type EventView struct {
	domain.Event
	Selected bool
}

// View is a full snapshot of what the visitor sees. It is rebuilt after every change.
type View struct {
	Events   []EventView
	Filter   domain.EventType
	TotalFee int
	State    State
}

// Session is one visitor's browsing session. It is safe for concurrent use.
type Session struct {
	id     string
	api    domain.RegistrationAPI
	drafts domain.DraftStore
	render func(View)

	mu        sync.Mutex
	catalog   domain.Catalog
	selection Selection
	filter    domain.EventType
	state     State

	inFlight atomic.Bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRenderer registers fn to receive a fresh View after each change.
func WithRenderer(fn func(View)) SessionOption {
	return func(s *Session) { s.render = fn }
}

// NewSession starts an empty session identified by id. Drafts are kept in
// drafts under that id.
func NewSession(id string, api domain.RegistrationAPI, drafts domain.DraftStore, opts ...SessionOption) *Session {
	s := &Session{
		id:     id,
		api:    api,
		drafts: drafts,
		filter: domain.EventTypeAll,
		state:  StateBuilding,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() string { return s.id }

// LoadCatalog fetches the full catalog from the server.
func (s *Session) LoadCatalog(ctx context.Context) error {
	events, err := s.api.ListEvents(ctx, domain.EventTypeAll)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	s.mu.Lock()
	s.catalog = events
	s.mu.Unlock()
	s.rerender()
	return nil
}

// Toggle flips the selection of event id and returns the new state of that event.
func (s *Session) Toggle(id int) bool {
	s.mu.Lock()
	selected := s.selection.Toggle(id)
	s.state = StateBuilding
	s.mu.Unlock()
	s.rerender()
	return selected
}

func (s *Session) IsSelected(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.IsSelected(id)
}

// SetFilter narrows the displayed events. It never changes the selection.
func (s *Session) SetFilter(t domain.EventType) {
	if t == "" {
		t = domain.EventTypeAll
	}
	s.mu.Lock()
	s.filter = t
	s.mu.Unlock()
	s.rerender()
}

func (s *Session) TotalFee() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TotalFee(&s.selection, s.catalog)
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	shown := s.catalog.Filter(s.filter)
	events := make([]EventView, len(shown))
	for i, e := range shown {
		events[i] = EventView{Event: e, Selected: s.selection.IsSelected(e.ID)}
	}
	return View{
		Events:   events,
		Filter:   s.filter,
		TotalFee: TotalFee(&s.selection, s.catalog),
		State:    s.state,
	}
}

func (s *Session) rerender() {
	if s.render == nil {
		return
	}
	s.render(s.View())
}

func (s *Session) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	s.rerender()
}

// SubmitRegistration builds a draft from details and the current selection and
// saves it, replacing any earlier draft for this session. An empty selection
// is rejected without touching the draft store.
func (s *Session) SubmitRegistration(ctx context.Context, details PersonalDetails) (*domain.RegistrationDraft, error) {
	s.mu.Lock()
	if s.selection.Len() == 0 {
		s.mu.Unlock()
		return nil, domain.NewValidationError("at least one event required")
	}
	draft := &domain.RegistrationDraft{
		FullName:       details.FullName,
		Email:          details.Email,
		Phone:          details.Phone,
		College:        details.College,
		Department:     details.Department,
		Year:           details.Year,
		SelectedEvents: Selected(&s.selection, s.catalog),
		TotalFee:       TotalFee(&s.selection, s.catalog),
	}
	s.mu.Unlock()

	if len(draft.SelectedEvents) == 0 {
		return nil, domain.NewValidationError("selected events are not in the catalog")
	}
	if err := s.drafts.Save(ctx, s.id, draft); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	s.setState(StateSaved)
	return draft, nil
}

// EnterPayment loads the saved draft for the payment phase. Without a draft
// the session is abandoned and domain.ErrDraftAbsent is returned.
func (s *Session) EnterPayment(ctx context.Context) (*domain.RegistrationDraft, error) {
	draft, err := s.drafts.Load(ctx, s.id)
	if err != nil {
		if errors.Is(err, domain.ErrDraftAbsent) {
			s.setState(StateAbandoned)
		}
		return nil, err
	}
	return draft, nil
}

// ConfirmPayment attaches transactionID to the saved draft and submits it.
// On success the draft is cleared. On a *domain.ServerError or
// *domain.TransportError the draft is kept so the visitor can retry.
// A clear failure after an accepted submission is returned alongside the receipt.
func (s *Session) ConfirmPayment(ctx context.Context, transactionID string) (*domain.RegistrationReceipt, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	confirmation := domain.PaymentConfirmation{TransactionID: transactionID}
	if problems := confirmation.Validate(); len(problems) > 0 {
		return nil, domain.NewValidationError(problems...)
	}

	draft, err := s.EnterPayment(ctx)
	if err != nil {
		return nil, err
	}

	s.setState(StateSubmitted)
	receipt, err := s.api.Submit(ctx, draft.Submission(confirmation))
	if err != nil {
		s.setState(StateRejected)
		return nil, err
	}

	clearErr := s.drafts.Clear(ctx, s.id)
	s.mu.Lock()
	s.selection.Clear()
	s.mu.Unlock()
	s.setState(StateConfirmed)

	if clearErr != nil {
		return receipt, fmt.Errorf("clear draft: %w", clearErr)
	}
	return receipt, nil
}
