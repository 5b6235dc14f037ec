package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/iracd/iracd/pkg/aircon"
	"github.com/iracd/iracd/pkg/db"
	"github.com/iracd/iracd/pkg/irac"
	"github.com/iracd/iracd/pkg/irproto"
	"github.com/iracd/iracd/pkg/irsend"
	"github.com/iracd/iracd/pkg/remote/schema"
)

// Manager implements Service on top of the database and one shared
// transmitter. Remote definitions live in the remotes table; each remote
// gets a lazily created irac.Controller session for the process lifetime.
type Manager struct {
	db     *db.DB
	tx     irsend.Transmitter
	dryRun bool

	profileID int64

	mu       sync.Mutex
	sessions map[string]*irac.Controller
}

// NewManager creates a Manager bound to the active profile. With dryRun set,
// journal entries are flagged so operators can tell rehearsals from real
// traffic; the transmitter itself decides whether frames reach hardware.
func NewManager(ctx context.Context, database *db.DB, tx irsend.Transmitter, dryRun bool) (*Manager, error) {
	profile, err := database.Profiles().GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve active profile: %w", err)
	}

	log.Info().
		Str("profile", profile.Name).
		Bool("dry_run", dryRun).
		Bool("connected", tx.IsConnected()).
		Msg("Remote manager ready")

	return &Manager{
		db:        database,
		tx:        tx,
		dryRun:    dryRun,
		profileID: profile.ID,
		sessions:  make(map[string]*irac.Controller),
	}, nil
}

// --- inventory ---

func (m *Manager) ListRemotes(ctx context.Context) ([]Remote, error) {
	recs, err := m.db.Remotes().List(ctx, m.profileID)
	if err != nil {
		return nil, fmt.Errorf("list remotes: %w", err)
	}

	remotes := make([]Remote, 0, len(recs))
	for _, rec := range recs {
		remotes = append(remotes, toView(rec))
	}
	return remotes, nil
}

func (m *Manager) GetRemote(ctx context.Context, id string) (*Remote, error) {
	rec, err := m.resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	v := toView(rec)
	return &v, nil
}

func (m *Manager) CreateRemote(ctx context.Context, req NewRemote) (*Remote, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	proto, ok := aircon.ParseProtocol(req.Protocol)
	if !ok || proto == aircon.ProtocolUnknown {
		return nil, fmt.Errorf("%w: unknown protocol %q", ErrUnsupported, req.Protocol)
	}
	if !irproto.Supported(proto) {
		return nil, fmt.Errorf("%w: no encoder for %s", ErrUnsupported, proto)
	}

	id := slugify(name)
	if id == "" {
		return nil, fmt.Errorf("%w: name %q yields no usable identifier", ErrValidation, name)
	}
	if _, err := m.db.Remotes().Get(ctx, id); err == nil {
		return nil, fmt.Errorf("%w: id %q", ErrExists, id)
	} else if !errors.Is(err, db.ErrRemoteNotFound) {
		return nil, err
	}
	if _, err := m.db.Remotes().GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: name %q", ErrExists, name)
	} else if !errors.Is(err, db.ErrRemoteNotFound) {
		return nil, err
	}

	modulation := true
	if req.Modulation != nil {
		modulation = *req.Modulation
	}

	rec := &db.Remote{
		ID:         id,
		ProfileID:  m.profileID,
		Name:       name,
		Protocol:   proto.String(),
		Model:      strings.TrimSpace(req.Model),
		Channel:    req.Channel,
		Inverted:   req.Inverted,
		Modulation: modulation,
		Desired:    "{}",
	}
	if err := m.db.Remotes().Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create remote: %w", err)
	}

	log.Info().
		Str("remote", id).
		Str("name", name).
		Str("protocol", rec.Protocol).
		Uint8("channel", rec.Channel).
		Msg("Remote created")

	return m.GetRemote(ctx, id)
}

func (m *Manager) RenameRemote(ctx context.Context, id, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	rec, err := m.resolve(ctx, id)
	if err != nil {
		return err
	}
	if other, err := m.db.Remotes().GetByName(ctx, newName); err == nil && other.ID != rec.ID {
		return fmt.Errorf("%w: name %q", ErrExists, newName)
	}

	if err := m.db.Remotes().Rename(ctx, rec.ID, newName); err != nil {
		if errors.Is(err, db.ErrRemoteNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("rename remote: %w", err)
	}
	return nil
}

func (m *Manager) RemoveRemote(ctx context.Context, id string) error {
	rec, err := m.resolve(ctx, id)
	if err != nil {
		return err
	}
	if err := m.db.Remotes().Delete(ctx, rec.ID); err != nil {
		if errors.Is(err, db.ErrRemoteNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete remote: %w", err)
	}

	m.mu.Lock()
	delete(m.sessions, rec.ID)
	m.mu.Unlock()

	log.Info().Str("remote", rec.ID).Msg("Remote removed")
	return nil
}

// --- state ---

func (m *Manager) GetRemoteState(ctx context.Context, id string) (*StateView, error) {
	rec, err := m.resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	sess, err := m.session(rec)
	if err != nil {
		return nil, err
	}

	desired := sess.Desired()
	prev := prevOf(sess)
	return &StateView{
		Desired:   desired,
		Effective: irac.Prepare(desired, prev),
		Prev:      prev,
	}, nil
}

// SetRemoteState merges the patch into the remote's desired settings,
// persists them and puts the prepared result on air. Only keys present in
// the patch change; the remote's configured protocol and model always win
// over anything the patch carries.
func (m *Manager) SetRemoteState(ctx context.Context, id string, patch map[string]any) (*StateView, error) {
	rec, err := m.resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := schema.ValidateState(patch); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	sess, err := m.session(rec)
	if err != nil {
		return nil, err
	}

	desired := sess.Desired()
	if err := mergePatch(&desired, patch); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	desired.Protocol, desired.Model = configuredProtocol(rec)

	raw, err := json.Marshal(desired)
	if err != nil {
		return nil, fmt.Errorf("encode desired state: %w", err)
	}
	if err := m.db.Remotes().UpdateDesired(ctx, rec.ID, string(raw)); err != nil {
		return nil, fmt.Errorf("persist desired state: %w", err)
	}
	sess.SetDesired(desired)

	prepared := irac.Prepare(desired, prevOf(sess))

	if err := sess.Send(ctx); err != nil {
		m.journal(ctx, rec, prepared, false)
		return nil, sendError(err)
	}

	preparedJSON, _ := json.Marshal(prepared)
	if err := m.db.Remotes().MarkSent(ctx, rec.ID, string(preparedJSON)); err != nil {
		log.Warn().Err(err).Str("remote", rec.ID).Msg("Failed to record send time")
	}
	m.journal(ctx, rec, prepared, true)

	log.Info().
		Str("remote", rec.ID).
		Str("protocol", rec.Protocol).
		Bool("dry_run", m.dryRun).
		Msg("State transmitted")

	return &StateView{
		Desired:     desired,
		Effective:   prepared,
		Prev:        prevOf(sess),
		Transmitted: true,
	}, nil
}

func (m *Manager) ListTransmissions(ctx context.Context, id string, limit int) ([]TransmissionEntry, error) {
	rec, err := m.resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := m.db.Transmissions().ListRecent(ctx, rec.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("list transmissions: %w", err)
	}

	entries := make([]TransmissionEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, TransmissionEntry{
			ID:       row.ID,
			Protocol: row.Protocol,
			State:    json.RawMessage(row.State),
			OK:       row.OK,
			DryRun:   row.DryRun,
			SentAt:   row.SentAt,
		})
	}
	return entries, nil
}

func (m *Manager) DecodeCapture(ctx context.Context, remoteID string, c irproto.Capture) (*DecodeResult, error) {
	var prev *aircon.State
	if remoteID != "" {
		rec, err := m.resolve(ctx, remoteID)
		if err != nil {
			return nil, err
		}
		sess, err := m.session(rec)
		if err != nil {
			return nil, err
		}
		prev = prevOf(sess)
	}

	st, err := irproto.DecodeToState(c, prev)
	if err != nil {
		switch {
		case errors.Is(err, irproto.ErrUnsupportedProtocol):
			return nil, fmt.Errorf("%w: no decoder for %s", ErrUnsupported, c.Protocol)
		case errors.Is(err, irproto.ErrInvalidFrame):
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return nil, err
	}

	return &DecodeResult{State: st, Description: st.String()}, nil
}

func (m *Manager) Protocols() []ProtocolInfo {
	supported := irproto.Protocols()
	infos := make([]ProtocolInfo, 0, len(supported))
	for _, p := range supported {
		infos = append(infos, ProtocolInfo{
			Name:      p.String(),
			Decodable: irproto.Decodable(p),
		})
	}
	return infos
}

func (m *Manager) IsConnected() bool {
	return m.tx.IsConnected()
}

func (m *Manager) Close() {
	if err := m.tx.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close transmitter")
	}
	log.Info().Msg("Remote manager closed")
}

// --- internals ---

// resolve looks a remote up by ID, falling back to the name.
func (m *Manager) resolve(ctx context.Context, id string) (*db.Remote, error) {
	rec, err := m.db.Remotes().Get(ctx, id)
	if errors.Is(err, db.ErrRemoteNotFound) {
		rec, err = m.db.Remotes().GetByName(ctx, id)
	}
	if errors.Is(err, db.ErrRemoteNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load remote: %w", err)
	}
	return rec, nil
}

// session returns the remote's sending session, creating it on first use.
// The persisted desired settings are restored; the send history is not.
// History is in-memory only, so the first send after a restart presses
// every toggle the desired settings call for.
func (m *Manager) session(rec *db.Remote) (*irac.Controller, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[rec.ID]; ok {
		return sess, nil
	}

	cfg := irsend.Config{
		Channel:    rec.Channel,
		Inverted:   rec.Inverted,
		Modulation: rec.Modulation,
	}
	sess := irac.NewController(m.tx, cfg)

	desired := aircon.DefaultState()
	if rec.Desired != "" && rec.Desired != "{}" {
		if err := json.Unmarshal([]byte(rec.Desired), &desired); err != nil {
			return nil, fmt.Errorf("stored desired state for %s: %w", rec.ID, err)
		}
	}
	desired.Protocol, desired.Model = configuredProtocol(rec)
	sess.SetDesired(desired)

	m.sessions[rec.ID] = sess
	return sess, nil
}

// journal appends an audit row. Journal failures are logged, not returned;
// the transmission outcome is already decided.
func (m *Manager) journal(ctx context.Context, rec *db.Remote, st aircon.State, ok bool) {
	raw, err := json.Marshal(st)
	if err != nil {
		log.Warn().Err(err).Str("remote", rec.ID).Msg("Failed to encode journal state")
		return
	}
	entry := &db.Transmission{
		RemoteID: rec.ID,
		Protocol: rec.Protocol,
		State:    string(raw),
		OK:       ok,
		DryRun:   m.dryRun,
	}
	if err := m.db.Transmissions().Append(ctx, entry); err != nil {
		log.Warn().Err(err).Str("remote", rec.ID).Msg("Failed to append transmission journal")
	}
}

func configuredProtocol(rec *db.Remote) (aircon.Protocol, aircon.Model) {
	proto, _ := aircon.ParseProtocol(rec.Protocol)
	return proto, aircon.ParseModel(rec.Model, aircon.ModelUnset)
}

// mergePatch applies the patch on top of the current settings. Keys absent
// from the patch keep their value; protocol and model are dropped because
// the remote's configuration decides them.
func mergePatch(st *aircon.State, patch map[string]any) error {
	trimmed := make(map[string]any, len(patch))
	for k, v := range patch {
		if k == "protocol" || k == "model" {
			continue
		}
		trimmed[k] = v
	}
	raw, err := json.Marshal(trimmed)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, st)
}

func prevOf(sess *irac.Controller) *aircon.State {
	if p, ok := sess.Prev(); ok {
		return &p
	}
	return nil
}

// sendError maps transport failures onto the package sentinels.
func sendError(err error) error {
	switch {
	case errors.Is(err, irproto.ErrUnsupportedProtocol):
		return fmt.Errorf("%w: %v", ErrUnsupported, err)
	case errors.Is(err, irsend.ErrAckTimeout), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("transmit: %w", err)
}

func toView(rec *db.Remote) Remote {
	v := Remote{
		ID:         rec.ID,
		Name:       rec.Name,
		Protocol:   rec.Protocol,
		Model:      rec.Model,
		Channel:    rec.Channel,
		Inverted:   rec.Inverted,
		Modulation: rec.Modulation,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
	if !rec.LastSentAt.IsZero() {
		t := rec.LastSentAt
		v.LastSentAt = &t
	}
	return v
}

// slugify turns a friendly name into a stable lowercase identifier:
// letters and digits kept, runs of anything else collapsed to one dash.
func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if b.Len() > 0 && !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
