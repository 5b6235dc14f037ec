package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iracd/iracd/pkg/api/types"
	"github.com/iracd/iracd/pkg/remote"
)

// ProtocolsHandler reports the supported protocol families
type ProtocolsHandler struct {
	svc remote.Service
}

// NewProtocolsHandler creates a new protocols handler
func NewProtocolsHandler(svc remote.Service) *ProtocolsHandler {
	return &ProtocolsHandler{svc: svc}
}

// ListProtocols handles GET /protocols
// @Summary      List supported protocols
// @Description  Returns the protocol families states can be encoded for, and whether captures of each can be decoded
// @Tags         protocols
// @Produce      json
// @Success      200  {object}  types.ProtocolsResponse
// @Router       /protocols [get]
func (h *ProtocolsHandler) ListProtocols(c *gin.Context) {
	protocols := h.svc.Protocols()
	c.JSON(http.StatusOK, types.ProtocolsResponse{
		Protocols: protocols,
		Count:     len(protocols),
	})
}
