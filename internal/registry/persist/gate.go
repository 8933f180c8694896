// Package persist implements the durable snapshot of the whitelisted
// state slices: the staff session, the theme preference, and the
// cached person collection. Everything else always restarts from its
// hardcoded initial value.
package persist

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dserbyn/regconsole/internal/logging"
	"github.com/dserbyn/regconsole/internal/registry/models"
)

// Keys of the namespaced durable record. The namespace prefix keeps
// the table shareable with future tools without key collisions.
const (
	keySession = "regconsole/session"
	keyTheme   = "regconsole/theme"
	keyPeople  = "regconsole/people"
)

// Snapshot is the whitelisted subset that survives a restart.
type Snapshot struct {
	Session   *models.StaffSession
	DarkTheme bool
	People    []models.Person
}

// Gate owns the snapshot storage. Load runs before the shell mounts;
// Save runs on every store notification; ClearSession runs on logout.
type Gate struct {
	db  *sql.DB
	log logging.Logger
}

// Open creates (or reuses) the snapshot database at path. The sqlite
// driver must already be registered by the importer, usually via
// a blank import of modernc.org/sqlite in the main package.
func Open(ctx context.Context, path string, log logging.Logger) (*Gate, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS snapshot (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating snapshot table: %w", err)
	}

	return &Gate{db: db, log: log}, nil
}

// Close releases the underlying database.
func (g *Gate) Close() error {
	return g.db.Close()
}

// Load rehydrates the whitelisted slices. Rehydration is all-or-nothing
// per slice: a missing or corrupt value falls back to that slice's
// zero value without failing the load, so a damaged snapshot can never
// keep the console from starting.
func (g *Gate) Load(ctx context.Context) (Snapshot, error) {
	snap := Snapshot{}

	var sess models.StaffSession
	if ok := g.loadKey(ctx, keySession, &sess); ok {
		snap.Session = &sess
	}
	g.loadKey(ctx, keyTheme, &snap.DarkTheme)
	g.loadKey(ctx, keyPeople, &snap.People)

	return snap, nil
}

// loadKey reads and unmarshals one key into out, reporting whether a
// usable value was found.
func (g *Gate) loadKey(ctx context.Context, key string, out any) bool {
	var raw []byte
	err := g.db.QueryRowContext(ctx, `SELECT value FROM snapshot WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			g.log.Warn(ctx, "snapshot read failed", "key", key, "err", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		g.log.Warn(ctx, "snapshot corrupt, using defaults", "key", key, "err", err)
		return false
	}
	return true
}

// Save writes the whitelisted subset in one transaction.
func (g *Gate) Save(ctx context.Context, snap Snapshot) error {
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting snapshot tx: %w", err)
	}
	defer tx.Rollback()

	if snap.Session != nil {
		if err := saveKey(ctx, tx, keySession, snap.Session); err != nil {
			return err
		}
	} else {
		if _, err := tx.ExecContext(ctx, `DELETE FROM snapshot WHERE key = ?`, keySession); err != nil {
			return fmt.Errorf("deleting session: %w", err)
		}
	}
	if err := saveKey(ctx, tx, keyTheme, snap.DarkTheme); err != nil {
		return err
	}
	if err := saveKey(ctx, tx, keyPeople, snap.People); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

func saveKey(ctx context.Context, tx *sql.Tx, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshot (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, raw)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// ClearSession removes the identity-scoped keys on logout: the session
// and the cached person collection. The theme preference deliberately
// survives; losing it was an accidental side effect of the old
// full-storage wipe.
func (g *Gate) ClearSession(ctx context.Context) error {
	_, err := g.db.ExecContext(ctx,
		`DELETE FROM snapshot WHERE key IN (?, ?)`, keySession, keyPeople)
	if err != nil {
		return fmt.Errorf("clearing session keys: %w", err)
	}
	return nil
}
