package remote

import (
	"encoding/json"
	"time"

	"github.com/iracd/iracd/pkg/aircon"
)

// Remote is a configured air conditioner: the pairing of a vendor IR
// protocol with one transmitter channel, under a caller-chosen name.
type Remote struct {
	ID         string     `json:"id"`                     // Stable identifier derived from the name at creation
	Name       string     `json:"name"`                   // User-friendly name, unique per profile
	Protocol   string     `json:"protocol"`               // Vendor protocol family (e.g. LG2, COOLIX)
	Model      string     `json:"model,omitempty"`        // Remote variant within the family, if it matters
	Channel    uint8      `json:"channel"`                // Blaster output channel
	Inverted   bool       `json:"inverted"`               // Drive the IR LED active-low
	Modulation bool       `json:"modulation"`             // Carrier modulation on (off for direct-wire setups)
	LastSentAt *time.Time `json:"last_sent_at,omitempty"` // When this remote last put a frame on air
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewRemote carries the caller-supplied fields for creating a remote.
// Modulation defaults to on; nearly every blaster wants a modulated carrier.
type NewRemote struct {
	Name       string `json:"name"`
	Protocol   string `json:"protocol"`
	Model      string `json:"model,omitempty"`
	Channel    uint8  `json:"channel,omitempty"`
	Inverted   bool   `json:"inverted,omitempty"`
	Modulation *bool  `json:"modulation,omitempty"`
}

// StateView is the result of a state operation. Desired is what the caller
// asked for, Effective is the prepared form that goes on air after toggle
// reconciliation and unit conversion, Prev is the reconciliation baseline
// (the desired state of the last successful send, absent until one happens).
// Transmitted reports whether this call put a frame on air.
type StateView struct {
	Desired     aircon.State  `json:"desired"`
	Effective   aircon.State  `json:"effective"`
	Prev        *aircon.State `json:"prev,omitempty"`
	Transmitted bool          `json:"transmitted"`
}

// DecodeResult is a decoded capture: the canonical state a received frame
// describes plus a one-line human summary.
type DecodeResult struct {
	State       aircon.State `json:"state"`
	Description string       `json:"description"`
}

// ProtocolInfo describes one supported protocol family.
type ProtocolInfo struct {
	Name      string `json:"name"`      // Conventional uppercase protocol name
	Decodable bool   `json:"decodable"` // Whether captures of this protocol can be decoded
}

// TransmissionEntry is one row of a remote's send history. State is the
// prepared state JSON exactly as it was journaled.
type TransmissionEntry struct {
	ID       int64           `json:"id"`
	Protocol string          `json:"protocol"`
	State    json.RawMessage `json:"state"`
	OK       bool            `json:"ok"`
	DryRun   bool            `json:"dry_run,omitempty"`
	SentAt   time.Time       `json:"sent_at"`
}
