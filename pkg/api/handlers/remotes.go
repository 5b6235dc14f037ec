package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iracd/iracd/pkg/api/types"
	"github.com/iracd/iracd/pkg/remote"
)

// RemotesHandler handles remote CRUD endpoints
type RemotesHandler struct {
	svc remote.Service
}

// NewRemotesHandler creates a new remotes handler
func NewRemotesHandler(svc remote.Service) *RemotesHandler {
	return &RemotesHandler{svc: svc}
}

// ListRemotes handles GET /remotes
// @Summary      List all remotes
// @Description  Returns every remote configured in the active profile
// @Tags         remotes
// @Produce      json
// @Success      200  {object}  types.ListRemotesResponse
// @Failure      500  {object}  types.ErrorResponse  "Service error"
// @Router       /remotes [get]
func (h *RemotesHandler) ListRemotes(c *gin.Context) {
	remotes, err := h.svc.ListRemotes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ListRemotesResponse{
		Remotes: remotes,
		Count:   len(remotes),
	})
}

// GetRemote handles GET /remotes/:id
// @Summary      Get remote details
// @Description  Returns a single remote by ID or name
// @Tags         remotes
// @Produce      json
// @Param        id   path      string  true  "Remote ID or name"
// @Success      200  {object}  types.RemoteResponse
// @Failure      404  {object}  types.ErrorResponse  "Remote not found"
// @Failure      500  {object}  types.ErrorResponse  "Service error"
// @Router       /remotes/{id} [get]
func (h *RemotesHandler) GetRemote(c *gin.Context) {
	r, err := h.svc.GetRemote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.RemoteResponse{Remote: *r})
}

// CreateRemote handles POST /remotes
// @Summary      Create a remote
// @Description  Registers an air conditioner under a name, bound to a protocol and transmitter channel
// @Tags         remotes
// @Accept       json
// @Produce      json
// @Param        request  body      types.CreateRemoteRequest  true  "Remote definition"
// @Success      201      {object}  types.RemoteResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      409      {object}  types.ErrorResponse  "Name already taken"
// @Failure      422      {object}  types.ErrorResponse  "Unsupported protocol"
// @Failure      500      {object}  types.ErrorResponse  "Service error"
// @Router       /remotes [post]
func (h *RemotesHandler) CreateRemote(c *gin.Context) {
	var req types.CreateRemoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "name and protocol are required",
		})
		return
	}

	r, err := h.svc.CreateRemote(c.Request.Context(), remote.NewRemote{
		Name:       req.Name,
		Protocol:   req.Protocol,
		Model:      req.Model,
		Channel:    req.Channel,
		Inverted:   req.Inverted,
		Modulation: req.Modulation,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.RemoteResponse{Remote: *r})
}

// RenameRemote handles PATCH /remotes/:id
// @Summary      Rename a remote
// @Description  Changes a remote's name; the ID stays stable
// @Tags         remotes
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Remote ID or name"
// @Param        request  body      types.RenameRemoteRequest  true  "New name"
// @Success      200      {object}  types.RemoteResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      404      {object}  types.ErrorResponse  "Remote not found"
// @Failure      409      {object}  types.ErrorResponse  "Name already taken"
// @Failure      500      {object}  types.ErrorResponse  "Service error"
// @Router       /remotes/{id} [patch]
func (h *RemotesHandler) RenameRemote(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	var req types.RenameRemoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "name is required",
		})
		return
	}

	if err := h.svc.RenameRemote(ctx, id, req.Name); err != nil {
		respondError(c, err)
		return
	}

	r, err := h.svc.GetRemote(ctx, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.RemoteResponse{Remote: *r})
}

// RemoveRemote handles DELETE /remotes/:id
// @Summary      Remove a remote
// @Description  Deletes a remote and its transmission history
// @Tags         remotes
// @Produce      json
// @Param        id   path  string  true  "Remote ID or name"
// @Success      204  "Remote removed"
// @Failure      404  {object}  types.ErrorResponse  "Remote not found"
// @Failure      500  {object}  types.ErrorResponse  "Service error"
// @Router       /remotes/{id} [delete]
func (h *RemotesHandler) RemoveRemote(c *gin.Context) {
	if err := h.svc.RemoveRemote(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
