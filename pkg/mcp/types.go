package mcp

import (
	"time"

	"github.com/iracd/iracd/pkg/aircon"
	"github.com/iracd/iracd/pkg/remote"
)

// --- Health Tool ---

// GetHealthInput is the input for the get_health tool
type GetHealthInput struct{}

// GetHealthOutput is the output for the get_health tool
type GetHealthOutput struct {
	Status      string `json:"status" jsonschema:"description=Overall health status (healthy or degraded)"`
	Transmitter string `json:"transmitter" jsonschema:"description=IR transmitter connection status"`
	Timestamp   string `json:"timestamp" jsonschema:"description=ISO8601 timestamp"`
}

// --- List Remotes Tool ---

// ListRemotesInput is the input for the list_remotes tool
type ListRemotesInput struct{}

// ListRemotesOutput is the output for the list_remotes tool
type ListRemotesOutput struct {
	Remotes []RemoteInfo `json:"remotes" jsonschema:"description=List of configured remotes"`
	Count   int          `json:"count" jsonschema:"description=Total number of remotes"`
}

// RemoteInfo represents a remote in tool outputs
type RemoteInfo struct {
	ID         string        `json:"id" jsonschema:"description=Stable remote identifier"`
	Name       string        `json:"name" jsonschema:"description=User-friendly remote name"`
	Protocol   string        `json:"protocol" jsonschema:"description=Vendor IR protocol family"`
	Model      string        `json:"model,omitempty" jsonschema:"description=Remote model within the family"`
	Channel    uint8         `json:"channel" jsonschema:"description=Blaster output channel"`
	LastSentAt string        `json:"last_sent_at,omitempty" jsonschema:"description=When this remote last put a frame on air"`
	Desired    *aircon.State `json:"desired,omitempty" jsonschema:"description=Stored desired settings"`
}

// --- Get Remote Tool ---

// GetRemoteInput is the input for the get_remote tool
type GetRemoteInput struct {
	ID string `json:"id" jsonschema:"required,description=Remote ID or name"`
}

// GetRemoteOutput is the output for the get_remote tool
type GetRemoteOutput struct {
	Remote RemoteInfo `json:"remote" jsonschema:"description=Remote information"`
}

// --- Create Remote Tool ---

// CreateRemoteInput is the input for the create_remote tool
type CreateRemoteInput struct {
	Name       string `json:"name" jsonschema:"required,description=User-friendly name for the remote"`
	Protocol   string `json:"protocol" jsonschema:"required,description=Vendor IR protocol family"`
	Model      string `json:"model,omitempty" jsonschema:"description=Remote model within the family"`
	Channel    int    `json:"channel,omitempty" jsonschema:"description=Blaster output channel"`
	Inverted   bool   `json:"inverted,omitempty" jsonschema:"description=Drive the IR LED active-low"`
	Modulation *bool  `json:"modulation,omitempty" jsonschema:"description=Modulate the carrier (default true)"`
}

// CreateRemoteOutput is the output for the create_remote tool
type CreateRemoteOutput struct {
	Remote RemoteInfo `json:"remote" jsonschema:"description=The created remote"`
}

// --- Rename Remote Tool ---

// RenameRemoteInput is the input for the rename_remote tool
type RenameRemoteInput struct {
	ID      string `json:"id" jsonschema:"required,description=Remote ID or current name"`
	NewName string `json:"new_name" jsonschema:"required,description=New friendly name for the remote"`
}

// RenameRemoteOutput is the output for the rename_remote tool
type RenameRemoteOutput struct {
	Success bool   `json:"success" jsonschema:"description=Whether the rename succeeded"`
	Message string `json:"message" jsonschema:"description=Status message"`
}

// --- Remove Remote Tool ---

// RemoveRemoteInput is the input for the remove_remote tool
type RemoveRemoteInput struct {
	ID string `json:"id" jsonschema:"required,description=Remote ID or name"`
}

// RemoveRemoteOutput is the output for the remove_remote tool
type RemoveRemoteOutput struct {
	Success bool   `json:"success" jsonschema:"description=Whether the removal succeeded"`
	Message string `json:"message" jsonschema:"description=Status message"`
}

// --- Get Remote State Tool ---

// GetRemoteStateInput is the input for the get_remote_state tool
type GetRemoteStateInput struct {
	ID string `json:"id" jsonschema:"required,description=Remote ID or name"`
}

// GetRemoteStateOutput is the output for the get_remote_state tool
type GetRemoteStateOutput struct {
	RemoteID  string        `json:"remote_id" jsonschema:"description=Remote identifier"`
	Desired   aircon.State  `json:"desired" jsonschema:"description=Stored desired settings"`
	Effective aircon.State  `json:"effective" jsonschema:"description=What a send would put on air after mode and toggle resolution"`
	Prev      *aircon.State `json:"prev,omitempty" jsonschema:"description=Reconciliation baseline from the last successful send"`
}

// --- Set Remote State Tool ---

// SetRemoteStateInput is the input for the set_remote_state tool
type SetRemoteStateInput struct {
	ID    string         `json:"id" jsonschema:"required,description=Remote ID or name"`
	State map[string]any `json:"state" jsonschema:"required,description=State properties to set (validated against the canonical state schema)"`
}

// SetRemoteStateOutput is the output for the set_remote_state tool
type SetRemoteStateOutput struct {
	RemoteID    string        `json:"remote_id" jsonschema:"description=Remote identifier"`
	Desired     aircon.State  `json:"desired" jsonschema:"description=Desired settings after the patch"`
	Effective   aircon.State  `json:"effective" jsonschema:"description=Settings that went on air"`
	Prev        *aircon.State `json:"prev,omitempty" jsonschema:"description=Reconciliation baseline carried forward"`
	Transmitted bool          `json:"transmitted" jsonschema:"description=Whether a frame was handed to the transmitter"`
}

// --- List Protocols Tool ---

// ListProtocolsInput is the input for the list_protocols tool
type ListProtocolsInput struct{}

// ListProtocolsOutput is the output for the list_protocols tool
type ListProtocolsOutput struct {
	Protocols []remote.ProtocolInfo `json:"protocols" jsonschema:"description=Supported protocol families"`
	Count     int                   `json:"count" jsonschema:"description=Number of supported protocols"`
}

// --- Decode Capture Tool ---

// DecodeCaptureInput is the input for the decode_capture tool
type DecodeCaptureInput struct {
	Protocol string `json:"protocol" jsonschema:"required,description=Vendor IR protocol family of the capture"`
	Value    string `json:"value,omitempty" jsonschema:"description=Captured frame value, decimal or 0x-prefixed hex"`
	Bytes    string `json:"bytes,omitempty" jsonschema:"description=Base64-encoded frame bytes for protocols longer than 64 bits"`
	RemoteID string `json:"remote_id,omitempty" jsonschema:"description=Decode against this remote's send history"`
}

// DecodeCaptureOutput is the output for the decode_capture tool
type DecodeCaptureOutput struct {
	State       aircon.State `json:"state" jsonschema:"description=Canonical settings the frame describes"`
	Description string       `json:"description" jsonschema:"description=One-line human summary"`
}

// --- List Transmissions Tool ---

// ListTransmissionsInput is the input for the list_transmissions tool
type ListTransmissionsInput struct {
	ID    string `json:"id" jsonschema:"required,description=Remote ID or name"`
	Limit int    `json:"limit,omitempty" jsonschema:"description=Maximum entries to return (default 50)"`
}

// ListTransmissionsOutput is the output for the list_transmissions tool
type ListTransmissionsOutput struct {
	RemoteID      string                     `json:"remote_id" jsonschema:"description=Remote identifier"`
	Transmissions []remote.TransmissionEntry `json:"transmissions" jsonschema:"description=Journal entries, newest first"`
	Count         int                        `json:"count" jsonschema:"description=Number of entries returned"`
}

// --- Turn On Tool ---

// TurnOnInput is the input for the turn_on tool
type TurnOnInput struct {
	ID      string   `json:"id" jsonschema:"required,description=Remote ID or name"`
	Mode    string   `json:"mode,omitempty" jsonschema:"description=Operating mode (auto/cool/heat/dry/fan)"`
	Degrees *float64 `json:"degrees,omitempty" jsonschema:"description=Target temperature in celsius"`
}

// TurnOnOutput is the output for the turn_on tool
type TurnOnOutput struct {
	RemoteID    string       `json:"remote_id" jsonschema:"description=Remote identifier"`
	Desired     aircon.State `json:"desired" jsonschema:"description=Desired settings after the change"`
	Effective   aircon.State `json:"effective" jsonschema:"description=Settings that went on air"`
	Transmitted bool         `json:"transmitted" jsonschema:"description=Whether a frame was handed to the transmitter"`
}

// --- Turn Off Tool ---

// TurnOffInput is the input for the turn_off tool
type TurnOffInput struct {
	ID string `json:"id" jsonschema:"required,description=Remote ID or name"`
}

// TurnOffOutput is the output for the turn_off tool
type TurnOffOutput struct {
	RemoteID    string       `json:"remote_id" jsonschema:"description=Remote identifier"`
	Desired     aircon.State `json:"desired" jsonschema:"description=Desired settings after the change"`
	Effective   aircon.State `json:"effective" jsonschema:"description=Settings that went on air"`
	Transmitted bool         `json:"transmitted" jsonschema:"description=Whether a frame was handed to the transmitter"`
}

// --- Helper conversions ---

// RemoteToInfo converts a remote.Remote to RemoteInfo
func RemoteToInfo(r *remote.Remote) RemoteInfo {
	info := RemoteInfo{
		ID:       r.ID,
		Name:     r.Name,
		Protocol: r.Protocol,
		Model:    r.Model,
		Channel:  r.Channel,
	}
	if r.LastSentAt != nil {
		info.LastSentAt = r.LastSentAt.UTC().Format(time.RFC3339)
	}
	return info
}
