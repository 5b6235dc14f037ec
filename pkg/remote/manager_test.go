package remote

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iracd/iracd/pkg/aircon"
	"github.com/iracd/iracd/pkg/db"
	"github.com/iracd/iracd/pkg/irproto"
	"github.com/iracd/iracd/pkg/irproto/lg"
	_ "github.com/iracd/iracd/pkg/irproto/protocols"
	"github.com/iracd/iracd/pkg/irsend"
)

func newTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	ctx := context.Background()
	if err := database.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.Bootstrap(ctx); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	return database
}

func newTestManager(t *testing.T) (*Manager, *irsend.MemoryTransmitter) {
	t.Helper()
	tx := irsend.NewMemoryTransmitter()
	m, err := NewManager(context.Background(), newTestDB(t), tx, false)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return m, tx
}

func createTestRemote(t *testing.T, m *Manager) *Remote {
	t.Helper()
	r, err := m.CreateRemote(context.Background(), NewRemote{
		Name:     "Living Room AC",
		Protocol: "LG2",
		Model:    "AKB75215403",
		Channel:  1,
	})
	if err != nil {
		t.Fatalf("create remote: %v", err)
	}
	return r
}

func TestManager_CreateAndGet(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	r := createTestRemote(t, m)
	if r.ID != "living-room-ac" {
		t.Errorf("expected id living-room-ac, got %q", r.ID)
	}
	if r.Protocol != "LG2" {
		t.Errorf("expected protocol LG2, got %q", r.Protocol)
	}
	if !r.Modulation {
		t.Error("modulation should default to on")
	}
	if r.LastSentAt != nil {
		t.Error("fresh remote should have no send time")
	}

	byID, err := m.GetRemote(ctx, "living-room-ac")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	byName, err := m.GetRemote(ctx, "Living Room AC")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if byID.ID != byName.ID {
		t.Errorf("lookups disagree: %q vs %q", byID.ID, byName.ID)
	}
}

func TestManager_CreateRejectsBadInput(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	_, err := m.CreateRemote(ctx, NewRemote{Protocol: "LG2"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("empty name: expected ErrValidation, got %v", err)
	}

	_, err = m.CreateRemote(ctx, NewRemote{Name: "x", Protocol: "NOT_A_PROTOCOL"})
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("unknown protocol: expected ErrUnsupported, got %v", err)
	}

	// DAIKIN is a known protocol name but has no encoder registered.
	_, err = m.CreateRemote(ctx, NewRemote{Name: "x", Protocol: "DAIKIN"})
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("encoder-less protocol: expected ErrUnsupported, got %v", err)
	}

	createTestRemote(t, m)
	_, err = m.CreateRemote(ctx, NewRemote{Name: "Living Room AC", Protocol: "LG2"})
	if !errors.Is(err, ErrExists) {
		t.Errorf("duplicate name: expected ErrExists, got %v", err)
	}
}

func TestManager_ListRemotes(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	createTestRemote(t, m)
	if _, err := m.CreateRemote(ctx, NewRemote{Name: "Bedroom", Protocol: "COOLIX"}); err != nil {
		t.Fatalf("create second remote: %v", err)
	}

	remotes, err := m.ListRemotes(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(remotes) != 2 {
		t.Fatalf("expected 2 remotes, got %d", len(remotes))
	}
	// The store lists by name.
	if remotes[0].Name != "Bedroom" || remotes[1].Name != "Living Room AC" {
		t.Errorf("unexpected order: %q, %q", remotes[0].Name, remotes[1].Name)
	}
}

func TestManager_Rename(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	createTestRemote(t, m)
	if err := m.RenameRemote(ctx, "living-room-ac", "Lounge"); err != nil {
		t.Fatalf("rename: %v", err)
	}

	r, err := m.GetRemote(ctx, "Lounge")
	if err != nil {
		t.Fatalf("get by new name: %v", err)
	}
	if r.ID != "living-room-ac" {
		t.Errorf("rename must keep the id, got %q", r.ID)
	}

	if _, err := m.CreateRemote(ctx, NewRemote{Name: "Bedroom", Protocol: "COOLIX"}); err != nil {
		t.Fatal(err)
	}
	if err := m.RenameRemote(ctx, "bedroom", "Lounge"); !errors.Is(err, ErrExists) {
		t.Errorf("rename onto taken name: expected ErrExists, got %v", err)
	}

	if err := m.RenameRemote(ctx, "no-such", "X"); !errors.Is(err, ErrNotFound) {
		t.Errorf("rename missing: expected ErrNotFound, got %v", err)
	}
}

func TestManager_Remove(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	createTestRemote(t, m)
	if err := m.RemoveRemote(ctx, "living-room-ac"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := m.GetRemote(ctx, "living-room-ac"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after removal, got %v", err)
	}
	if err := m.RemoveRemote(ctx, "living-room-ac"); !errors.Is(err, ErrNotFound) {
		t.Errorf("double removal: expected ErrNotFound, got %v", err)
	}
}

func TestManager_GetState_Fresh(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	createTestRemote(t, m)
	view, err := m.GetRemoteState(ctx, "living-room-ac")
	if err != nil {
		t.Fatalf("get state: %v", err)
	}

	if view.Desired.Protocol != aircon.ProtocolLG2 {
		t.Errorf("desired protocol = %v, want LG2", view.Desired.Protocol)
	}
	if view.Desired.Model != aircon.LGAKB75215403 {
		t.Errorf("desired model = %v, want AKB75215403", view.Desired.Model)
	}
	if view.Desired.Power {
		t.Error("fresh desired state should be powered off")
	}
	if view.Prev != nil {
		t.Error("fresh session should have no send history")
	}
	if view.Transmitted {
		t.Error("GetRemoteState must not transmit")
	}
}

func TestManager_SetState_Transmits(t *testing.T) {
	m, tx := newTestManager(t)
	ctx := context.Background()

	createTestRemote(t, m)
	view, err := m.SetRemoteState(ctx, "living-room-ac", map[string]any{
		"power":   true,
		"mode":    "cool",
		"degrees": float64(22),
		"fan":     "high",
	})
	if err != nil {
		t.Fatalf("set state: %v", err)
	}

	if !view.Transmitted {
		t.Error("expected transmitted view")
	}
	if !view.Desired.Power || view.Desired.Mode != aircon.ModeCool || view.Desired.Degrees != 22 {
		t.Errorf("desired not merged: %+v", view.Desired)
	}
	if view.Prev == nil {
		t.Fatal("successful send must establish history")
	}
	if view.Prev.Mode != aircon.ModeCool {
		t.Errorf("history mode = %v, want cool", view.Prev.Mode)
	}
	if len(tx.Sent()) == 0 {
		t.Error("nothing reached the transmitter")
	}

	r, err := m.GetRemote(ctx, "living-room-ac")
	if err != nil {
		t.Fatal(err)
	}
	if r.LastSentAt == nil {
		t.Error("send time not recorded on the remote")
	}
}

func TestManager_SetState_AppendsJournal(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	createTestRemote(t, m)
	if _, err := m.SetRemoteState(ctx, "living-room-ac", map[string]any{
		"power": true,
		"mode":  "cool",
	}); err != nil {
		t.Fatal(err)
	}

	entries, err := m.ListTransmissions(ctx, "living-room-ac", 10)
	if err != nil {
		t.Fatalf("list journal: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 journal entry, got %d", len(entries))
	}
	if !entries[0].OK {
		t.Error("journal entry should record success")
	}
	if entries[0].DryRun {
		t.Error("journal entry should not be flagged dry-run")
	}
	if entries[0].Protocol != "LG2" {
		t.Errorf("journal protocol = %q, want LG2", entries[0].Protocol)
	}
	if !strings.Contains(string(entries[0].State), `"power":true`) {
		t.Errorf("journal state does not carry power: %s", entries[0].State)
	}
}

func TestManager_SetState_MergeKeepsUnpatchedFields(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	createTestRemote(t, m)
	if _, err := m.SetRemoteState(ctx, "living-room-ac", map[string]any{
		"power": true,
		"mode":  "cool",
		"quiet": true,
	}); err != nil {
		t.Fatal(err)
	}

	view, err := m.SetRemoteState(ctx, "living-room-ac", map[string]any{
		"degrees": float64(26),
	})
	if err != nil {
		t.Fatal(err)
	}
	if view.Desired.Mode != aircon.ModeCool || !view.Desired.Quiet || !view.Desired.Power {
		t.Errorf("patch clobbered unrelated fields: %+v", view.Desired)
	}
	if view.Desired.Degrees != 26 {
		t.Errorf("degrees = %v, want 26", view.Desired.Degrees)
	}
}

func TestManager_SetState_RejectsBadPayloads(t *testing.T) {
	m, tx := newTestManager(t)
	ctx := context.Background()

	createTestRemote(t, m)

	// Misspelled key, wrong type, out-of-range clock, unknown mode.
	cases := []map[string]any{
		{"degress": float64(24)},
		{"power": "on"},
		{"clock": float64(2000)},
		{"mode": "defrost"},
	}
	for _, patch := range cases {
		if _, err := m.SetRemoteState(ctx, "living-room-ac", patch); !errors.Is(err, ErrValidation) {
			t.Errorf("patch %v: expected ErrValidation, got %v", patch, err)
		}
	}
	if len(tx.Sent()) != 0 {
		t.Error("rejected payloads must not transmit")
	}
}

func TestManager_SetState_ConfiguredProtocolWins(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	createTestRemote(t, m)
	view, err := m.SetRemoteState(ctx, "living-room-ac", map[string]any{
		"protocol": "COOLIX",
		"model":    float64(9),
		"power":    true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if view.Desired.Protocol != aircon.ProtocolLG2 {
		t.Errorf("patch changed the protocol to %v", view.Desired.Protocol)
	}
	if view.Desired.Model != aircon.LGAKB75215403 {
		t.Errorf("patch changed the model to %v", view.Desired.Model)
	}
}

func TestManager_SetState_OffModeNormalizes(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	createTestRemote(t, m)
	view, err := m.SetRemoteState(ctx, "living-room-ac", map[string]any{
		"power": true,
		"mode":  "off",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !view.Desired.Power {
		t.Error("desired keeps the caller's power setting")
	}
	if view.Effective.Power {
		t.Error("mode off must go on air as power off")
	}
}

func TestManager_DesiredSurvivesRestart_HistoryDoesNot(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	m1, err := NewManager(ctx, database, irsend.NewMemoryTransmitter(), false)
	if err != nil {
		t.Fatal(err)
	}
	createTestRemote(t, m1)
	if _, err := m1.SetRemoteState(ctx, "living-room-ac", map[string]any{
		"power": true,
		"mode":  "heat",
	}); err != nil {
		t.Fatal(err)
	}

	// A new manager on the same database is a daemon restart.
	m2, err := NewManager(ctx, database, irsend.NewMemoryTransmitter(), false)
	if err != nil {
		t.Fatal(err)
	}
	view, err := m2.GetRemoteState(ctx, "living-room-ac")
	if err != nil {
		t.Fatal(err)
	}
	if !view.Desired.Power || view.Desired.Mode != aircon.ModeHeat {
		t.Errorf("desired settings lost across restart: %+v", view.Desired)
	}
	if view.Prev != nil {
		t.Error("send history must not survive a restart")
	}
}

type failingTransmitter struct{}

func (failingTransmitter) Transmit(context.Context, irsend.Message) error {
	return errors.New("blaster unplugged")
}
func (failingTransmitter) IsConnected() bool { return false }
func (failingTransmitter) Close() error      { return nil }

func TestManager_SetState_FailedSendKeepsHistoryEmpty(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	m, err := NewManager(ctx, database, failingTransmitter{}, false)
	if err != nil {
		t.Fatal(err)
	}
	createTestRemote(t, m)

	_, err = m.SetRemoteState(ctx, "living-room-ac", map[string]any{"power": true})
	if err == nil {
		t.Fatal("expected send failure")
	}

	view, err := m.GetRemoteState(ctx, "living-room-ac")
	if err != nil {
		t.Fatal(err)
	}
	if view.Prev != nil {
		t.Error("failed send must not establish history")
	}
	// The attempt is still journaled, marked failed.
	entries, err := m.ListTransmissions(ctx, "living-room-ac", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].OK {
		t.Errorf("expected one failed journal entry, got %+v", entries)
	}
}

func TestManager_DryRunFlagsJournal(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	m, err := NewManager(ctx, database, irsend.NewMemoryTransmitter(), true)
	if err != nil {
		t.Fatal(err)
	}
	createTestRemote(t, m)
	if _, err := m.SetRemoteState(ctx, "living-room-ac", map[string]any{"power": true}); err != nil {
		t.Fatal(err)
	}

	entries, err := m.ListTransmissions(ctx, "living-room-ac", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !entries[0].DryRun {
		t.Errorf("expected a dry-run journal entry, got %+v", entries)
	}
}

func TestManager_ListTransmissions(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t)
	createTestRemote(t, m)

	if _, err := m.ListTransmissions(ctx, "no-such-remote", 10); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	for _, degrees := range []float64{20, 21, 22} {
		patch := map[string]any{"power": true, "mode": "cool", "degrees": degrees}
		if _, err := m.SetRemoteState(ctx, "living-room-ac", patch); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := m.ListTransmissions(ctx, "living-room-ac", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("limit 2 returned %d entries", len(entries))
	}
	// Newest first.
	if !strings.Contains(string(entries[0].State), `"degrees":22`) {
		t.Errorf("first entry is not the latest send: %s", entries[0].State)
	}
	if entries[0].ID <= entries[1].ID {
		t.Errorf("entries not ordered newest first: %d then %d", entries[0].ID, entries[1].ID)
	}
}

func TestManager_DecodeCapture_Standalone(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	res, err := m.DecodeCapture(ctx, "", irproto.Capture{
		Protocol: aircon.ProtocolLG2,
		Value:    uint64(lg.OffCommand),
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.State.Power {
		t.Error("off command should decode to power off")
	}
	if !strings.Contains(res.Description, "Power: off") {
		t.Errorf("description does not mention power: %s", res.Description)
	}
}

func TestManager_DecodeCapture_UsesRemoteHistory(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	createTestRemote(t, m)
	if _, err := m.SetRemoteState(ctx, "living-room-ac", map[string]any{
		"power": true,
		"quiet": true,
	}); err != nil {
		t.Fatal(err)
	}

	// Control frame for cool, 22 degrees, fan high. Frames carry no quiet
	// bit; decoding against the remote's history keeps its quiet setting.
	const coolFrame = 0x880074B
	res, err := m.DecodeCapture(ctx, "living-room-ac", irproto.Capture{
		Protocol: aircon.ProtocolLG2,
		Value:    coolFrame,
	})
	if err != nil {
		t.Fatalf("decode with history: %v", err)
	}
	if res.State.Degrees != 22 || res.State.Mode != aircon.ModeCool {
		t.Errorf("frame fields wrong: %+v", res.State)
	}
	if !res.State.Quiet {
		t.Error("history fields should carry into the decoded state")
	}

	plain, err := m.DecodeCapture(ctx, "", irproto.Capture{
		Protocol: aircon.ProtocolLG2,
		Value:    coolFrame,
	})
	if err != nil {
		t.Fatal(err)
	}
	if plain.State.Quiet {
		t.Error("standalone decode should not invent a quiet setting")
	}
}

func TestManager_DecodeCapture_Errors(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	_, err := m.DecodeCapture(ctx, "", irproto.Capture{
		Protocol: aircon.ProtocolCoolix,
		Value:    0xB27BE0,
	})
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("decoder-less protocol: expected ErrUnsupported, got %v", err)
	}

	_, err = m.DecodeCapture(ctx, "", irproto.Capture{
		Protocol: aircon.ProtocolLG2,
		Value:    0x1234567,
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("invalid frame: expected ErrValidation, got %v", err)
	}

	_, err = m.DecodeCapture(ctx, "no-such-remote", irproto.Capture{
		Protocol: aircon.ProtocolLG2,
		Value:    uint64(lg.OffCommand),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown remote: expected ErrNotFound, got %v", err)
	}
}

func TestManager_Protocols(t *testing.T) {
	m, _ := newTestManager(t)

	infos := m.Protocols()
	if len(infos) == 0 {
		t.Fatal("no protocols reported")
	}
	byName := make(map[string]ProtocolInfo, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}
	if info, ok := byName["LG2"]; !ok || !info.Decodable {
		t.Errorf("LG2 should be listed decodable, got %+v", info)
	}
	if info, ok := byName["COOLIX"]; !ok || info.Decodable {
		t.Errorf("COOLIX should be listed without a decoder, got %+v", info)
	}
}

func TestManager_IsConnected(t *testing.T) {
	m, _ := newTestManager(t)
	// The in-memory transmitter never claims hardware.
	if m.IsConnected() {
		t.Error("expected disconnected manager")
	}
}
