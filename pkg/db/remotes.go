package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var ErrRemoteNotFound = errors.New("remote not found")

// Remote is a configured handset: one air conditioner bound to a protocol
// and a transmitter line. Desired and LastSent hold canonical state JSON;
// LastSent is empty until something was put on air.
type Remote struct {
	ID         string
	ProfileID  int64
	Name       string
	Protocol   string
	Model      string
	Channel    uint8
	Inverted   bool
	Modulation bool
	Desired    string
	LastSent   string
	LastSentAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RemoteStore provides remote CRUD operations.
type RemoteStore interface {
	Get(ctx context.Context, id string) (*Remote, error)
	GetByName(ctx context.Context, name string) (*Remote, error)
	List(ctx context.Context, profileID int64) ([]*Remote, error)
	Create(ctx context.Context, r *Remote) error
	Rename(ctx context.Context, id, newName string) error
	UpdateDesired(ctx context.Context, id, desired string) error
	MarkSent(ctx context.Context, id, lastSent string) error
	Delete(ctx context.Context, id string) error
}

// Remotes returns a RemoteStore for this database.
func (db *DB) Remotes() RemoteStore {
	return &remoteStore{db: db}
}

type remoteStore struct {
	db *DB
}

const remoteColumns = `id, profile_id, name, protocol, model, channel, inverted, modulation,
		desired, last_sent, last_sent_at, created_at, updated_at`

func scanRemote(row rowScanner) (*Remote, error) {
	r := &Remote{}
	var lastSent, lastSentAt sql.NullString
	var createdAt, updatedAt string
	err := row.Scan(&r.ID, &r.ProfileID, &r.Name, &r.Protocol, &r.Model, &r.Channel,
		&r.Inverted, &r.Modulation, &r.Desired, &lastSent, &lastSentAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	r.LastSent = lastSent.String
	if lastSentAt.Valid {
		r.LastSentAt, _ = time.Parse(time.DateTime, lastSentAt.String)
	}
	r.CreatedAt, _ = time.Parse(time.DateTime, createdAt)
	r.UpdatedAt, _ = time.Parse(time.DateTime, updatedAt)
	return r, nil
}

func (s *remoteStore) getWhere(ctx context.Context, where string, args ...any) (*Remote, error) {
	r, err := scanRemote(s.db.QueryRowContext(ctx,
		`SELECT `+remoteColumns+` FROM remotes WHERE `+where, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRemoteNotFound
	}
	return r, err
}

func (s *remoteStore) Get(ctx context.Context, id string) (*Remote, error) {
	return s.getWhere(ctx, `id = ?`, id)
}

func (s *remoteStore) GetByName(ctx context.Context, name string) (*Remote, error) {
	return s.getWhere(ctx, `name = ?`, name)
}

func (s *remoteStore) List(ctx context.Context, profileID int64) ([]*Remote, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+remoteColumns+` FROM remotes WHERE profile_id = ? ORDER BY name`, profileID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var remotes []*Remote
	for rows.Next() {
		r, err := scanRemote(rows)
		if err != nil {
			return nil, err
		}
		remotes = append(remotes, r)
	}
	return remotes, rows.Err()
}

func (s *remoteStore) Create(ctx context.Context, r *Remote) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO remotes (id, profile_id, name, protocol, model, channel, inverted, modulation, desired)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.ProfileID, r.Name, r.Protocol, r.Model, r.Channel, r.Inverted, r.Modulation, r.Desired)
	if err != nil {
		return fmt.Errorf("failed to create remote: %w", err)
	}
	return nil
}

func (s *remoteStore) Rename(ctx context.Context, id, newName string) error {
	return s.exec(ctx, `
		UPDATE remotes SET name = ?, updated_at = datetime('now')
		WHERE id = ?
	`, newName, id)
}

func (s *remoteStore) UpdateDesired(ctx context.Context, id, desired string) error {
	return s.exec(ctx, `
		UPDATE remotes SET desired = ?, updated_at = datetime('now')
		WHERE id = ?
	`, desired, id)
}

func (s *remoteStore) MarkSent(ctx context.Context, id, lastSent string) error {
	return s.exec(ctx, `
		UPDATE remotes SET last_sent = ?, last_sent_at = datetime('now'), updated_at = datetime('now')
		WHERE id = ?
	`, lastSent, id)
}

func (s *remoteStore) Delete(ctx context.Context, id string) error {
	return s.exec(ctx, `DELETE FROM remotes WHERE id = ?`, id)
}

// exec runs a statement that must touch an existing remote.
func (s *remoteStore) exec(ctx context.Context, query string, args ...any) error {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRemoteNotFound
	}
	return nil
}
