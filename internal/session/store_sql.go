package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	syncx "github.com/formativa/rubrica/internal/sync"
)

// SQLStore keeps one JSON blob per form key in form_sessions and records every
// save and reset in the event log.
type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
	events *syncx.EventRepo
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver, events: syncx.NewEventRepo(db)}
}

func (s *SQLStore) Load(ctx context.Context, formKey string) (FormSession, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT data_json FROM form_sessions WHERE form_key=$1`, formKey)
	var blob string
	if err := row.Scan(&blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Empty(), nil
		}
		return Empty(), err
	}
	var fs FormSession
	if err := json.Unmarshal([]byte(blob), &fs); err != nil {
		// Unreadable blob loads as a fresh session.
		return Empty(), nil
	}
	return fs, nil
}

func (s *SQLStore) Save(ctx context.Context, formKey string, fs FormSession) error {
	blob, err := json.Marshal(fs)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO form_sessions (form_key, data_json, updated_at)
		 VALUES ($1,$2,$3)
		 ON CONFLICT (form_key) DO UPDATE SET data_json=EXCLUDED.data_json, updated_at=EXCLUDED.updated_at`,
		formKey, string(blob), time.Now().Unix())
	if err != nil {
		return err
	}
	return s.events.Append(ctx, syncx.Event{
		Type: syncx.EventSessionSaved, Key: formKey, DataJSON: string(blob),
	})
}

func (s *SQLStore) Delete(ctx context.Context, formKey string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM form_sessions WHERE form_key=$1`, formKey); err != nil {
		return err
	}
	return s.events.Append(ctx, syncx.Event{
		Type: syncx.EventSessionReset, Key: formKey, DataJSON: "{}",
	})
}
