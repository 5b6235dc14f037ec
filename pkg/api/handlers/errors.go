package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iracd/iracd/pkg/api/types"
	"github.com/iracd/iracd/pkg/remote"
)

// respondError maps service errors onto HTTP statuses. Anything the switch
// does not recognize is a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, remote.ErrNotFound):
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:   "not_found",
			Message: "Remote not found",
		})
	case errors.Is(err, remote.ErrExists):
		c.JSON(http.StatusConflict, types.ErrorResponse{
			Error:   "conflict",
			Message: err.Error(),
		})
	case errors.Is(err, remote.ErrValidation):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
	case errors.Is(err, remote.ErrUnsupported):
		c.JSON(http.StatusUnprocessableEntity, types.ErrorResponse{
			Error:   "unsupported_protocol",
			Message: err.Error(),
		})
	case errors.Is(err, remote.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, types.ErrorResponse{
			Error:   "timeout",
			Message: "The blaster did not acknowledge the transmission",
		})
	case errors.Is(err, remote.ErrNotConnected):
		c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
			Error:   "not_connected",
			Message: "No transmitter hardware is attached",
		})
	default:
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}
