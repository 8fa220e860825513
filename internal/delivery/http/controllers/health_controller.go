package controllers

import (
	"net/http"

	"altranzfest/internal/delivery/http/helpers"
	"altranzfest/internal/domain"
)

// HealthResponse reports liveness and which registration store is active.
type HealthResponse struct {
	Status      string                 `json:"status" example:"ok"`
	Persistence domain.PersistenceMode `json:"persistence" example:"mock"`
}

type HealthController struct {
	Mode domain.PersistenceMode
}

func NewHealthController(mode domain.PersistenceMode) *HealthController {
	return &HealthController{Mode: mode}
}

// Health godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok", Persistence: c.Mode})
}
