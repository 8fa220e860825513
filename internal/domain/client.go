package domain

import "context"

// RegistrationReceipt is what a client learns from an accepted submission.
type RegistrationReceipt struct {
	Message        string
	RegistrationID string
}

// RegistrationAPI is the client's view of the registration server.
// Failures are reported as *ServerError or *TransportError.
type RegistrationAPI interface {
	ListEvents(ctx context.Context, eventType EventType) (Catalog, error)
	Submit(ctx context.Context, sub *RegistrationSubmission) (*RegistrationReceipt, error)
}
