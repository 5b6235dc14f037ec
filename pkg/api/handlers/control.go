package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iracd/iracd/pkg/api/types"
	"github.com/iracd/iracd/pkg/remote"
)

// ControlHandler handles remote state endpoints
type ControlHandler struct {
	svc remote.Service
}

// NewControlHandler creates a new control handler
func NewControlHandler(svc remote.Service) *ControlHandler {
	return &ControlHandler{svc: svc}
}

// GetState handles GET /remotes/:id/state
// @Summary      Get remote state
// @Description  Returns the desired settings, what a send would put on air, and the send history baseline
// @Tags         remotes
// @Produce      json
// @Param        id   path      string  true  "Remote ID or name"
// @Success      200  {object}  types.StateResponse
// @Failure      404  {object}  types.ErrorResponse  "Remote not found"
// @Failure      500  {object}  types.ErrorResponse  "Service error"
// @Router       /remotes/{id}/state [get]
func (h *ControlHandler) GetState(c *gin.Context) {
	id := c.Param("id")

	view, err := h.svc.GetRemoteState(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.StateResponse{
		Remote:    id,
		StateView: *view,
		Timestamp: time.Now(),
	})
}

// ListTransmissions handles GET /remotes/:id/transmissions
// @Summary      List recent transmissions
// @Description  Returns the remote's transmission journal, newest first, including failed and dry-run sends
// @Tags         remotes
// @Produce      json
// @Param        id     path      string  true   "Remote ID or name"
// @Param        limit  query     int     false  "Maximum entries to return (default 50)"
// @Success      200    {object}  types.TransmissionsResponse
// @Failure      400    {object}  types.ErrorResponse  "Invalid limit"
// @Failure      404    {object}  types.ErrorResponse  "Remote not found"
// @Failure      500    {object}  types.ErrorResponse  "Service error"
// @Router       /remotes/{id}/transmissions [get]
func (h *ControlHandler) ListTransmissions(c *gin.Context) {
	id := c.Param("id")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Error:   "invalid_request",
				Message: "limit must be an integer",
			})
			return
		}
		limit = n
	}

	entries, err := h.svc.ListTransmissions(c.Request.Context(), id, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.TransmissionsResponse{
		Remote:        id,
		Transmissions: entries,
		Count:         len(entries),
	})
}

// SetState handles POST /remotes/:id/state
// @Summary      Set remote state
// @Description  Merges a state patch into the remote's desired settings and transmits the result. Only the keys present change; toggle buttons are pressed only when their setting crossed since the last send.
// @Tags         remotes
// @Accept       json
// @Produce      json
// @Param        id       path      string  true  "Remote ID or name"
// @Param        request  body      object  true  "State patch"
// @Success      200      {object}  types.StateResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid or unvalidatable payload"
// @Failure      404      {object}  types.ErrorResponse  "Remote not found"
// @Failure      422      {object}  types.ErrorResponse  "Unsupported protocol"
// @Failure      504      {object}  types.ErrorResponse  "Blaster did not acknowledge"
// @Failure      500      {object}  types.ErrorResponse  "Service error"
// @Router       /remotes/{id}/state [post]
func (h *ControlHandler) SetState(c *gin.Context) {
	id := c.Param("id")

	var patch map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&patch); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	view, err := h.svc.SetRemoteState(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.StateResponse{
		Remote:    id,
		StateView: *view,
		Timestamp: time.Now(),
	})
}
