package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"sacco-backend/internal/models"
)

// Document kinds, one per entity collection. Mirrors the per-kind layout the
// persisted state has always used.
const (
	kindMembers      = "members"
	kindLoans        = "loans"
	kindPayments     = "payments"
	kindSettings     = "settings"
	kindActivityLogs = "activity_logs"
)

// SQLiteGateway stores each collection as one JSON document in the
// ledger_documents table
type SQLiteGateway struct {
	db *sql.DB
}

// NewSQLiteGateway creates a gateway over an initialized database connection
func NewSQLiteGateway(db *sql.DB) *SQLiteGateway {
	return &SQLiteGateway{db: db}
}

// Load reads all documents and assembles a snapshot. Kinds that have never
// been saved are left nil so the caller can fall back to seed data.
func (g *SQLiteGateway) Load() (*models.Snapshot, error) {
	rows, err := g.db.Query("SELECT kind, payload FROM ledger_documents")
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger documents: %w", err)
	}
	defer rows.Close()

	snapshot := &models.Snapshot{}
	for rows.Next() {
		var kind, payload string
		if err := rows.Scan(&kind, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan ledger document: %w", err)
		}

		switch kind {
		case kindMembers:
			err = json.Unmarshal([]byte(payload), &snapshot.Members)
		case kindLoans:
			err = json.Unmarshal([]byte(payload), &snapshot.Loans)
		case kindPayments:
			err = json.Unmarshal([]byte(payload), &snapshot.Payments)
		case kindSettings:
			err = json.Unmarshal([]byte(payload), &snapshot.Settings)
		case kindActivityLogs:
			err = json.Unmarshal([]byte(payload), &snapshot.ActivityLogs)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", kind, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ledger documents: %w", err)
	}

	return snapshot, nil
}

// Save writes all collections in one transaction
func (g *SQLiteGateway) Save(snapshot *models.Snapshot) error {
	tx, err := g.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	documents := []struct {
		kind string
		data interface{}
	}{
		{kindMembers, snapshot.Members},
		{kindLoans, snapshot.Loans},
		{kindPayments, snapshot.Payments},
		{kindSettings, snapshot.Settings},
		{kindActivityLogs, snapshot.ActivityLogs},
	}

	now := time.Now()
	for _, doc := range documents {
		payload, err := json.Marshal(doc.data)
		if err != nil {
			return fmt.Errorf("failed to encode %s document: %w", doc.kind, err)
		}

		_, err = tx.Exec(`
			INSERT INTO ledger_documents (kind, payload, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(kind) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
		`, doc.kind, string(payload), now)
		if err != nil {
			return fmt.Errorf("failed to save %s document: %w", doc.kind, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Close closes the underlying database connection
func (g *SQLiteGateway) Close() error {
	return g.db.Close()
}
