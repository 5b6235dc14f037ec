package mcp

import "github.com/mark3labs/mcp-go/mcp"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	// Health check
	s.mcpServer.AddTool(
		mcp.NewTool("get_health",
			mcp.WithDescription("Check the health status of the iracd service and IR transmitter connectivity"),
		),
		s.handleGetHealth,
	)

	// List remotes
	s.mcpServer.AddTool(
		mcp.NewTool("list_remotes",
			mcp.WithDescription("List all configured air conditioner remotes with their desired settings"),
		),
		s.handleListRemotes,
	)

	// Get remote
	s.mcpServer.AddTool(
		mcp.NewTool("get_remote",
			mcp.WithDescription("Get detailed information about a specific remote by ID or name"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Remote ID or name"),
			),
		),
		s.handleGetRemote,
	)

	// Create remote
	s.mcpServer.AddTool(
		mcp.NewTool("create_remote",
			mcp.WithDescription("Register a new air conditioner remote for a vendor IR protocol"),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("User-friendly name for the remote (e.g. \"Living Room AC\")"),
			),
			mcp.WithString("protocol",
				mcp.Required(),
				mcp.Description("Vendor IR protocol family (e.g. LG2, COOLIX). Use list_protocols for the supported set."),
			),
			mcp.WithString("model",
				mcp.Description("Remote model within the protocol family, when the vendor ships incompatible variants (e.g. AKB75215403)"),
			),
			mcp.WithNumber("channel",
				mcp.Description("Blaster output channel (default 0)"),
			),
			mcp.WithBoolean("inverted",
				mcp.Description("Drive the IR LED active-low (default false)"),
			),
			mcp.WithBoolean("modulation",
				mcp.Description("Modulate the carrier (default true; disable for direct-wire setups)"),
			),
		),
		s.handleCreateRemote,
	)

	// Rename remote
	s.mcpServer.AddTool(
		mcp.NewTool("rename_remote",
			mcp.WithDescription("Change a remote's friendly name; its ID stays stable"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Remote ID or current name"),
			),
			mcp.WithString("new_name",
				mcp.Required(),
				mcp.Description("New friendly name for the remote"),
			),
		),
		s.handleRenameRemote,
	)

	// Remove remote
	s.mcpServer.AddTool(
		mcp.NewTool("remove_remote",
			mcp.WithDescription("Remove a remote and its transmission history"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Remote ID or name"),
			),
		),
		s.handleRemoveRemote,
	)

	// Get remote state
	s.mcpServer.AddTool(
		mcp.NewTool("get_remote_state",
			mcp.WithDescription("Get a remote's desired settings and what a send would put on air right now"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Remote ID or name"),
			),
		),
		s.handleGetRemoteState,
	)

	// Set remote state
	s.mcpServer.AddTool(
		mcp.NewTool("set_remote_state",
			mcp.WithDescription("Merge a state patch into a remote's desired settings and transmit the result. Only the keys present change; toggle buttons are pressed only when their setting crossed since the last send."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Remote ID or name"),
			),
			mcp.WithObject("state",
				mcp.Required(),
				mcp.Description("State properties to set (e.g. {\"power\": true, \"mode\": \"cool\", \"degrees\": 22})"),
			),
		),
		s.handleSetRemoteState,
	)

	// List protocols
	s.mcpServer.AddTool(
		mcp.NewTool("list_protocols",
			mcp.WithDescription("List the vendor IR protocol families frames can be encoded for, and which can be decoded"),
		),
		s.handleListProtocols,
	)

	// Decode capture
	s.mcpServer.AddTool(
		mcp.NewTool("decode_capture",
			mcp.WithDescription("Interpret a captured IR frame as air conditioner settings"),
			mcp.WithString("protocol",
				mcp.Required(),
				mcp.Description("Vendor IR protocol family of the capture"),
			),
			mcp.WithString("value",
				mcp.Description("Captured frame value for protocols up to 64 bits, decimal or 0x-prefixed hex"),
			),
			mcp.WithString("bytes",
				mcp.Description("Base64-encoded frame bytes for longer protocols"),
			),
			mcp.WithString("remote_id",
				mcp.Description("Decode against this remote's send history, which settles toggle frames (optional)"),
			),
		),
		s.handleDecodeCapture,
	)

	// List transmissions
	s.mcpServer.AddTool(
		mcp.NewTool("list_transmissions",
			mcp.WithDescription("List a remote's recent transmissions, newest first, including failed and dry-run sends"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Remote ID or name"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum entries to return (default 50)"),
			),
		),
		s.handleListTransmissions,
	)

	// Turn on (convenience)
	s.mcpServer.AddTool(
		mcp.NewTool("turn_on",
			mcp.WithDescription("Turn on an air conditioner, optionally setting mode and temperature"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Remote ID or name"),
			),
			mcp.WithString("mode",
				mcp.Description("Operating mode (auto/cool/heat/dry/fan). Defaults to the stored mode, or auto if the unit was off."),
			),
			mcp.WithNumber("degrees",
				mcp.Description("Target temperature in celsius (optional)"),
			),
		),
		s.handleTurnOn,
	)

	// Turn off (convenience)
	s.mcpServer.AddTool(
		mcp.NewTool("turn_off",
			mcp.WithDescription("Turn off an air conditioner"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Remote ID or name"),
			),
		),
		s.handleTurnOff,
	)
}
