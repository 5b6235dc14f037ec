package db

import (
	"context"
	"time"
)

// Transmission is one journal entry: the prepared state that went on air,
// or failed to. The journal is an audit trail; nothing in the send path
// reads it back.
type Transmission struct {
	ID       int64
	RemoteID string
	Protocol string
	State    string
	OK       bool
	DryRun   bool
	SentAt   time.Time
}

// TransmissionStore appends to and inspects the transmission journal.
type TransmissionStore interface {
	Append(ctx context.Context, t *Transmission) error
	ListRecent(ctx context.Context, remoteID string, limit int) ([]*Transmission, error)
}

// Transmissions returns a TransmissionStore for this database.
func (db *DB) Transmissions() TransmissionStore {
	return &transmissionStore{db: db}
}

type transmissionStore struct {
	db *DB
}

func (s *transmissionStore) Append(ctx context.Context, t *Transmission) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO transmissions (remote_id, protocol, state, ok, dry_run)
		VALUES (?, ?, ?, ?, ?)
	`, t.RemoteID, t.Protocol, t.State, t.OK, t.DryRun)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = id
	return nil
}

func (s *transmissionStore) ListRecent(ctx context.Context, remoteID string, limit int) ([]*Transmission, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, remote_id, protocol, state, ok, dry_run, sent_at
		FROM transmissions WHERE remote_id = ?
		ORDER BY id DESC LIMIT ?
	`, remoteID, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []*Transmission
	for rows.Next() {
		t := &Transmission{}
		var sentAt string
		if err := rows.Scan(&t.ID, &t.RemoteID, &t.Protocol, &t.State, &t.OK, &t.DryRun, &sentAt); err != nil {
			return nil, err
		}
		t.SentAt, _ = time.Parse(time.DateTime, sentAt)
		entries = append(entries, t)
	}
	return entries, rows.Err()
}
