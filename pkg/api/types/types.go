package types

import (
	"time"

	"github.com/iracd/iracd/pkg/aircon"
	"github.com/iracd/iracd/pkg/remote"
)

// --- Request DTOs ---

// CreateRemoteRequest is the request body for POST /remotes
type CreateRemoteRequest struct {
	Name       string `json:"name" binding:"required"`
	Protocol   string `json:"protocol" binding:"required"`
	Model      string `json:"model"`
	Channel    uint8  `json:"channel"`
	Inverted   bool   `json:"inverted"`
	Modulation *bool  `json:"modulation"`
}

// RenameRemoteRequest is the request body for PATCH /remotes/:id
type RenameRemoteRequest struct {
	Name string `json:"name" binding:"required"`
}

// DecodeRequest is the request body for POST /decode. Captures up to 64
// bits travel in value; longer protocols use bytes. Naming a remote decodes
// against that remote's send history, which settles toggle frames.
type DecodeRequest struct {
	Protocol string `json:"protocol" binding:"required"`
	Value    uint64 `json:"value,omitempty"`
	Bytes    []byte `json:"bytes,omitempty"`
	RemoteID string `json:"remote_id,omitempty"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status      string    `json:"status"`
	Transmitter string    `json:"transmitter"`
	Timestamp   time.Time `json:"timestamp"`
}

// ListRemotesResponse is returned from GET /remotes
type ListRemotesResponse struct {
	Remotes []remote.Remote `json:"remotes"`
	Count   int             `json:"count"`
}

// RemoteResponse is returned from single-remote endpoints
type RemoteResponse struct {
	Remote remote.Remote `json:"remote"`
}

// StateResponse is returned from GET/POST /remotes/:id/state
type StateResponse struct {
	Remote string `json:"remote"`
	remote.StateView
	Timestamp time.Time `json:"timestamp"`
}

// ProtocolsResponse is returned from GET /protocols
type ProtocolsResponse struct {
	Protocols []remote.ProtocolInfo `json:"protocols"`
	Count     int                   `json:"count"`
}

// DecodeResponse is returned from POST /decode
type DecodeResponse struct {
	State       aircon.State `json:"state"`
	Description string       `json:"description"`
}

// TransmissionsResponse is returned from GET /remotes/:id/transmissions
type TransmissionsResponse struct {
	Remote        string                     `json:"remote"`
	Transmissions []remote.TransmissionEntry `json:"transmissions"`
	Count         int                        `json:"count"`
}
