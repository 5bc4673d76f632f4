// Package history records completed calculations so they can be retrieved
// by ID later. Only scores and notes are stored, never patient predictors.
package history

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/prevent-risk-mcp-server/internal/domain"
	"github.com/prevent-risk-mcp-server/pkg/prevent"
)

// Open creates the store for a driver name. Supported drivers are "sqlite",
// where dsn is a file path, and "postgres", where dsn is a connection URL and
// pending migrations are applied first.
func Open(driver, dsn string, logger *logrus.Logger) (domain.CalculationStore, error) {
	switch driver {
	case "sqlite":
		return NewSQLiteStore(dsn)
	case "postgres":
		runner, err := NewMigrationRunner(dsn, logger)
		if err != nil {
			return nil, err
		}
		err = runner.Up()
		if closeErr := runner.Close(); closeErr != nil {
			logger.WithError(closeErr).Warn("Failed to close migration runner")
		}
		if err != nil {
			return nil, err
		}
		return NewPostgresStoreFromURL(dsn)
	default:
		return nil, fmt.Errorf("unsupported history driver: %q", driver)
	}
}

// scanner is an interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanRecord scans a row into a CalculationRecord.
func scanRecord(s scanner) (*domain.CalculationRecord, error) {
	rec := &domain.CalculationRecord{}
	var model, risk, notes string

	if err := s.Scan(&rec.ID, &model, &risk, &notes, &rec.CalculatedAt); err != nil {
		return nil, err
	}

	rec.Model = prevent.Model(model)
	if err := json.Unmarshal([]byte(risk), &rec.Risk); err != nil {
		return nil, fmt.Errorf("failed to decode risk of %s: %w", rec.ID, err)
	}
	if notes != "" {
		if err := json.Unmarshal([]byte(notes), &rec.Notes); err != nil {
			return nil, fmt.Errorf("failed to decode notes of %s: %w", rec.ID, err)
		}
	}
	return rec, nil
}

// encodeRecord renders the JSON columns of a record.
func encodeRecord(rec *domain.CalculationRecord) (risk, notes string, err error) {
	b, err := json.Marshal(rec.Risk)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode risk: %w", err)
	}
	risk = string(b)

	if len(rec.Notes) > 0 {
		b, err = json.Marshal(rec.Notes)
		if err != nil {
			return "", "", fmt.Errorf("failed to encode notes: %w", err)
		}
		notes = string(b)
	}
	return risk, notes, nil
}
