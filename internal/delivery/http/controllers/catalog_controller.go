package controllers

import (
	"log/slog"
	"net/http"

	"altranzfest/internal/delivery/http/helpers"
	"altranzfest/internal/domain"
)

type CatalogController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewCatalogController(logger *slog.Logger, svc domain.CatalogService) *CatalogController {
	return &CatalogController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List fest events
// @Description Returns the event catalog in display order. Pass type to narrow it to one category; "All" or an empty value returns every event.
// @Tags events
// @Produce json
// @Param type query string false "Event type" Enums(All, Technical, Non-Technical, Workshop)
// @Success 200 {array} domain.Event
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [get]
func (c *CatalogController) ListEvents(w http.ResponseWriter, r *http.Request) {
	eventType := domain.EventType(r.URL.Query().Get("type"))
	events, err := c.Service.ListEvents(r.Context(), eventType)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "failed to load events")
		return
	}
	if events == nil {
		events = domain.Catalog{}
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}
