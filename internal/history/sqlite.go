package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prevent-risk-mcp-server/internal/domain"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements domain.CalculationStore using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLite calculation store.
// It creates the database file and schema if they don't exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path is required")
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows one writer; a single connection serializes concurrent saves.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createSQLiteSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		dbPath: dbPath,
	}, nil
}

func createSQLiteSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS calculations (
		id TEXT PRIMARY KEY,
		model TEXT NOT NULL,
		risk TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		computed INTEGER NOT NULL DEFAULT 0,
		calculated_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_calculations_calculated_at ON calculations(calculated_at);
	`

	_, err := db.Exec(schema)
	return err
}

// Save stores a calculation, replacing any record with the same ID.
func (s *SQLiteStore) Save(ctx context.Context, rec *domain.CalculationRecord) error {
	risk, notes, err := encodeRecord(rec)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO calculations (id, model, risk, notes, computed, calculated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			model = excluded.model,
			risk = excluded.risk,
			notes = excluded.notes,
			computed = excluded.computed,
			calculated_at = excluded.calculated_at
	`,
		rec.ID,
		string(rec.Model),
		risk,
		notes,
		rec.Risk.Computed(),
		rec.CalculatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert: %w", err)
	}
	return nil
}

// Get retrieves a calculation by ID. It returns nil if none exists.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*domain.CalculationRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, model, risk, notes, calculated_at
		FROM calculations
		WHERE id = ?
	`, id)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan: %w", err)
	}
	return rec, nil
}

// List returns calculations newest first.
func (s *SQLiteStore) List(ctx context.Context, limit, offset int) ([]*domain.CalculationRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, model, risk, notes, calculated_at
		FROM calculations
		ORDER BY calculated_at DESC, id
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	var result []*domain.CalculationRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

// Count returns the total number of stored calculations.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM calculations").Scan(&count)
	return count, err
}

// Close closes the store and releases resources.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
