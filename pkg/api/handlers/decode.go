package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iracd/iracd/pkg/aircon"
	"github.com/iracd/iracd/pkg/api/types"
	"github.com/iracd/iracd/pkg/irproto"
	"github.com/iracd/iracd/pkg/remote"
)

// DecodeHandler turns captured frames back into states
type DecodeHandler struct {
	svc remote.Service
}

// NewDecodeHandler creates a new decode handler
func NewDecodeHandler(svc remote.Service) *DecodeHandler {
	return &DecodeHandler{svc: svc}
}

// Decode handles POST /decode
// @Summary      Decode a captured frame
// @Description  Interprets a captured IR frame as a canonical state. Give remote_id to decode against that remote's send history, which settles toggle frames.
// @Tags         protocols
// @Accept       json
// @Produce      json
// @Param        request  body      types.DecodeRequest  true  "Captured frame"
// @Success      200      {object}  types.DecodeResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request or frame"
// @Failure      404      {object}  types.ErrorResponse  "Remote not found"
// @Failure      422      {object}  types.ErrorResponse  "No decoder for protocol"
// @Failure      500      {object}  types.ErrorResponse  "Service error"
// @Router       /decode [post]
func (h *DecodeHandler) Decode(c *gin.Context) {
	var req types.DecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "protocol is required",
		})
		return
	}

	proto, ok := aircon.ParseProtocol(req.Protocol)
	if !ok || proto == aircon.ProtocolUnknown {
		c.JSON(http.StatusUnprocessableEntity, types.ErrorResponse{
			Error:   "unsupported_protocol",
			Message: "unknown protocol " + req.Protocol,
		})
		return
	}

	res, err := h.svc.DecodeCapture(c.Request.Context(), req.RemoteID, irproto.Capture{
		Protocol: proto,
		Value:    req.Value,
		Bytes:    req.Bytes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DecodeResponse{
		State:       res.State,
		Description: res.Description,
	})
}
