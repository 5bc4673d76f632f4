package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/prevent-risk-mcp-server/internal/domain"
)

// PostgresStore implements domain.CalculationStore using PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an open connection. The schema must already exist;
// see MigrationRunner.
func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreFromURL opens a pooled connection through the pgx driver.
func NewPostgresStoreFromURL(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	store, err := NewPostgresStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// Save stores a calculation, replacing any record with the same ID.
func (s *PostgresStore) Save(ctx context.Context, rec *domain.CalculationRecord) error {
	risk, notes, err := encodeRecord(rec)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO calculations (id, model, risk, notes, computed, calculated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			model = EXCLUDED.model,
			risk = EXCLUDED.risk,
			notes = EXCLUDED.notes,
			computed = EXCLUDED.computed,
			calculated_at = EXCLUDED.calculated_at
	`

	_, err = s.db.ExecContext(ctx, query,
		rec.ID,
		string(rec.Model),
		risk,
		notes,
		rec.Risk.Computed(),
		rec.CalculatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save calculation: %w", err)
	}
	return nil
}

// Get retrieves a calculation by ID. It returns nil if none exists.
func (s *PostgresStore) Get(ctx context.Context, id string) (*domain.CalculationRecord, error) {
	query := `
		SELECT id, model, risk, notes, calculated_at
		FROM calculations
		WHERE id = $1
	`

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get calculation: %w", err)
	}
	return rec, nil
}

// List returns calculations newest first.
func (s *PostgresStore) List(ctx context.Context, limit, offset int) ([]*domain.CalculationRecord, error) {
	query := `
		SELECT id, model, risk, notes, calculated_at
		FROM calculations
		ORDER BY calculated_at DESC, id
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
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
func (s *PostgresStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM calculations").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count calculations: %w", err)
	}
	return count, nil
}

// Close closes the store and releases resources.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
