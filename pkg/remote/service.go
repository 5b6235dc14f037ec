// Package remote manages the configured remotes: persistent definitions in
// the database, and an in-memory sending session per remote. Sessions hold
// the reconciliation history and never survive a restart; after startup the
// first send to each unit carries every toggle fresh.
package remote

import (
	"context"

	"github.com/iracd/iracd/pkg/irproto"
)

// Service is the surface the HTTP and MCP layers consume. Manager is the
// only production implementation; the interface keeps handlers testable
// against fakes.
type Service interface {
	// ListRemotes returns all remotes configured in the active profile
	ListRemotes(ctx context.Context) ([]Remote, error)

	// GetRemote returns a single remote by ID or name
	GetRemote(ctx context.Context, id string) (*Remote, error)

	// CreateRemote registers a new remote and returns it
	CreateRemote(ctx context.Context, req NewRemote) (*Remote, error)

	// RenameRemote changes a remote's friendly name; the ID stays stable
	RenameRemote(ctx context.Context, id, newName string) error

	// RemoveRemote deletes a remote and its send history
	RemoveRemote(ctx context.Context, id string) error

	// GetRemoteState reports the remote's desired state and what a send
	// would put on air right now
	GetRemoteState(ctx context.Context, id string) (*StateView, error)

	// SetRemoteState merges a state patch into the remote's desired state
	// and transmits the result
	SetRemoteState(ctx context.Context, id string, patch map[string]any) (*StateView, error)

	// ListTransmissions returns the remote's most recent journal entries,
	// newest first. limit <= 0 selects a sensible default.
	ListTransmissions(ctx context.Context, id string, limit int) ([]TransmissionEntry, error)

	// DecodeCapture interprets a captured frame as a canonical state.
	// A remote ID may be given to decode against that remote's history;
	// pass "" to decode standalone.
	DecodeCapture(ctx context.Context, remoteID string, c irproto.Capture) (*DecodeResult, error)

	// Protocols lists the protocol families frames can be encoded for
	Protocols() []ProtocolInfo

	// IsConnected returns true if transmitter hardware is attached
	IsConnected() bool

	// Close releases the transmitter
	Close()
}
