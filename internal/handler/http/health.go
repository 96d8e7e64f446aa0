package http

import (
	"net/http"

	"github.com/palavrapasse/import-web-api/internal/logger"
	"github.com/palavrapasse/import-web-api/internal/utils"
	"github.com/palavrapasse/import-web-api/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		utils.WriteJSON(w, models.HealthResponse{Status: models.HealthStatusUnhealthy, Error: err.Error()}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: models.HealthStatusHealthy}, http.StatusOK)
}
