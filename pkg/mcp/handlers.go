package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/iracd/iracd/pkg/aircon"
	"github.com/iracd/iracd/pkg/irproto"
	"github.com/iracd/iracd/pkg/remote"
)

func (s *Server) handleGetHealth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	transmitterStatus := "disconnected"
	if s.svc.IsConnected() {
		transmitterStatus = "connected"
	}

	status := "healthy"
	if transmitterStatus != "connected" {
		status = "degraded"
	}

	out := GetHealthOutput{
		Status:      status,
		Transmitter: transmitterStatus,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListRemotes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	remotes, err := s.svc.ListRemotes(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list remotes: %s", err)), nil
	}

	infos := make([]RemoteInfo, 0, len(remotes))
	for i := range remotes {
		info := RemoteToInfo(&remotes[i])
		// Try to get the desired settings for each remote
		view, err := s.svc.GetRemoteState(ctx, remotes[i].ID)
		if err == nil {
			info.Desired = &view.Desired
		}
		infos = append(infos, info)
	}

	out := ListRemotesOutput{
		Remotes: infos,
		Count:   len(infos),
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetRemote(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	r, err := s.svc.GetRemote(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("remote not found: %s", err)), nil
	}

	info := RemoteToInfo(r)
	view, err := s.svc.GetRemoteState(ctx, r.ID)
	if err == nil {
		info.Desired = &view.Desired
	}

	out := GetRemoteOutput{Remote: info}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleCreateRemote(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := requiredString(request, "name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	protocol, err := requiredString(request, "protocol")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()
	req := remote.NewRemote{
		Name:     name,
		Protocol: protocol,
	}
	if m, ok := args["model"].(string); ok {
		req.Model = m
	}
	if ch, ok := args["channel"].(float64); ok {
		req.Channel = uint8(ch)
	}
	if inv, ok := args["inverted"].(bool); ok {
		req.Inverted = inv
	}
	if mod, ok := args["modulation"].(bool); ok {
		req.Modulation = &mod
	}

	r, err := s.svc.CreateRemote(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create remote: %s", err)), nil
	}

	out := CreateRemoteOutput{Remote: RemoteToInfo(r)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleRenameRemote(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	newName, err := requiredString(request, "new_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.svc.RenameRemote(ctx, id, newName); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to rename remote: %s", err)), nil
	}

	out := RenameRemoteOutput{
		Success: true,
		Message: fmt.Sprintf("Remote %q renamed to %q", id, newName),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleRemoveRemote(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.svc.RemoveRemote(ctx, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to remove remote: %s", err)), nil
	}

	out := RemoveRemoteOutput{
		Success: true,
		Message: fmt.Sprintf("Remote %q removed", id),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetRemoteState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	view, err := s.svc.GetRemoteState(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get remote state: %s", err)), nil
	}

	out := GetRemoteStateOutput{
		RemoteID:  id,
		Desired:   view.Desired,
		Effective: view.Effective,
		Prev:      view.Prev,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleSetRemoteState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()

	// Extract state from args — it can be passed as a nested "state" object or as flat args
	stateMap := map[string]any{}
	if stateRaw, ok := args["state"]; ok {
		if sm, ok := stateRaw.(map[string]any); ok {
			stateMap = sm
		}
	} else {
		// Fall back: use all args except "id" as state properties
		for k, v := range args {
			if k != "id" {
				stateMap[k] = v
			}
		}
	}

	view, err := s.svc.SetRemoteState(ctx, id, stateMap)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to set remote state: %s", err)), nil
	}

	out := SetRemoteStateOutput{
		RemoteID:    id,
		Desired:     view.Desired,
		Effective:   view.Effective,
		Prev:        view.Prev,
		Transmitted: view.Transmitted,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListProtocols(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	protocols := s.svc.Protocols()

	out := ListProtocolsOutput{
		Protocols: protocols,
		Count:     len(protocols),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleDecodeCapture(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	protocol, err := requiredString(request, "protocol")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, ok := aircon.ParseProtocol(protocol)
	if !ok || p == aircon.ProtocolUnknown {
		return mcp.NewToolResultError(fmt.Sprintf("unknown protocol %q", protocol)), nil
	}

	args := request.GetArguments()
	capture := irproto.Capture{Protocol: p}
	if v, ok := args["value"].(string); ok && v != "" {
		value, err := strconv.ParseUint(v, 0, 64)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid value %q: %s", v, err)), nil
		}
		capture.Value = value
	}
	if b, ok := args["bytes"].(string); ok && b != "" {
		raw, err := base64.StdEncoding.DecodeString(b)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid bytes: %s", err)), nil
		}
		capture.Bytes = raw
	}
	if capture.Value == 0 && len(capture.Bytes) == 0 {
		return mcp.NewToolResultError("either value or bytes is required"), nil
	}

	remoteID := ""
	if r, ok := args["remote_id"].(string); ok {
		remoteID = r
	}

	result, err := s.svc.DecodeCapture(ctx, remoteID, capture)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode capture: %s", err)), nil
	}

	out := DecodeCaptureOutput{
		State:       result.State,
		Description: result.Description,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListTransmissions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	limit := 0
	if l, ok := request.GetArguments()["limit"].(float64); ok {
		limit = int(l)
	}

	entries, err := s.svc.ListTransmissions(ctx, id, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list transmissions: %s", err)), nil
	}

	out := ListTransmissionsOutput{
		RemoteID:      id,
		Transmissions: entries,
		Count:         len(entries),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleTurnOn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()
	patch := map[string]any{"power": true}
	if m, ok := args["mode"].(string); ok && m != "" {
		patch["mode"] = m
	}
	if d, ok := args["degrees"].(float64); ok {
		patch["degrees"] = d
	}

	// Mode off means unit off, so powering on with the stored mode still
	// off would come out as another off frame. Fall back to auto.
	if _, ok := patch["mode"]; !ok {
		view, err := s.svc.GetRemoteState(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to get remote state: %s", err)), nil
		}
		if view.Desired.Mode == aircon.ModeOff {
			patch["mode"] = "auto"
		}
	}

	view, err := s.svc.SetRemoteState(ctx, id, patch)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to turn on remote: %s", err)), nil
	}

	out := TurnOnOutput{
		RemoteID:    id,
		Desired:     view.Desired,
		Effective:   view.Effective,
		Transmitted: view.Transmitted,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleTurnOff(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredString(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	view, err := s.svc.SetRemoteState(ctx, id, map[string]any{"power": false})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to turn off remote: %s", err)), nil
	}

	out := TurnOffOutput{
		RemoteID:    id,
		Desired:     view.Desired,
		Effective:   view.Effective,
		Transmitted: view.Transmitted,
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

// --- helpers ---

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func formatJSON(v any) string {
	b, err := encodeJSON(v)
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}

func encodeJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
