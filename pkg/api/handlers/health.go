package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iracd/iracd/pkg/api/types"
	"github.com/iracd/iracd/pkg/remote"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	svc remote.Service
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(svc remote.Service) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Health handles GET /health
// @Summary      Health check
// @Description  Returns the health of the API and whether transmitter hardware is attached
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse  "Service is healthy"
// @Failure      503  {object}  types.HealthResponse  "Service is degraded"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	transmitter := "disconnected"
	status := "degraded"
	httpStatus := http.StatusServiceUnavailable

	if h.svc.IsConnected() {
		transmitter = "connected"
		status = "healthy"
		httpStatus = http.StatusOK
	}

	c.JSON(httpStatus, types.HealthResponse{
		Status:      status,
		Transmitter: transmitter,
		Timestamp:   time.Now(),
	})
}
