package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"altranzfest/internal/delivery/http/helpers"
	"altranzfest/internal/domain"
)

const (
	msgRegistered     = "Registration successful"
	msgRegisteredMock = "Registration successful (MOCK)"
	msgServerError    = "Server error during registration"
)

// MockRegistration is the echoed submission returned when no datastore is configured.
type MockRegistration struct {
	ID string `json:"id"`
	domain.RegistrationSubmission
}

// RegisterLiveResponse documents the 201 body for a stored registration.
type RegisterLiveResponse struct {
	Message string                      `json:"message" example:"Registration successful"`
	Data    []domain.RegistrationRecord `json:"data"`
}

// RegisterMockResponse documents the 201 body in mock mode.
type RegisterMockResponse struct {
	Message string             `json:"message" example:"Registration successful (MOCK)"`
	Data    []MockRegistration `json:"data"`
}

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Submit a registration
// @Description Stores a paid registration. fullName, email, phone and at least one event are required; each event must exist in the catalog and totalFee must equal their fees. Without datastore credentials the payload is echoed back with a mock id and nothing is stored.
// @Tags registrations
// @Accept json
// @Produce json
// @Param registration body domain.RegistrationSubmission true "Registration"
// @Success 201 {object} controllers.RegisterLiveResponse "live mode"
// @Success 201 {object} controllers.RegisterMockResponse "mock mode"
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/register [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	var sub domain.RegistrationSubmission
	if !helpers.DecodeJSON(w, r, &sub) {
		return
	}

	out, err := c.Service.Register(r.Context(), &sub)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	if out.Mode == domain.PersistenceModeMock {
		helpers.WriteJSONMessage(w, http.StatusCreated, msgRegisteredMock, []MockRegistration{
			{ID: out.Record.ID, RegistrationSubmission: *out.Submission},
		})
		return
	}
	helpers.WriteJSONMessage(w, http.StatusCreated, msgRegistered, []*domain.RegistrationRecord{out.Record})
}
