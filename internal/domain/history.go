package domain

import (
	"context"
	"time"

	"github.com/prevent-risk-mcp-server/pkg/prevent"
)

// CalculationRecord is the stored form of a calculation. It keeps the scores
// and notes but never the patient predictors.
type CalculationRecord struct {
	ID           string             `json:"id"`
	Model        prevent.Model      `json:"model"`
	Risk         prevent.RiskResult `json:"risk"`
	Notes        []prevent.Issue    `json:"notes,omitempty"`
	CalculatedAt time.Time          `json:"calculated_at"`
}

// NewCalculationRecord extracts the storable part of a response.
func NewCalculationRecord(resp *RiskResponse) *CalculationRecord {
	return &CalculationRecord{
		ID:           resp.ID,
		Model:        resp.Model,
		Risk:         resp.Risk,
		Notes:        resp.Notes,
		CalculatedAt: resp.CalculatedAt,
	}
}

// CalculationPage is one page of stored calculations, newest first.
type CalculationPage struct {
	Records []*CalculationRecord `json:"records"`
	Total   int64                `json:"total"`
	Limit   int                  `json:"limit"`
	Offset  int                  `json:"offset"`
}

// CalculationStore persists calculation records.
type CalculationStore interface {
	// Save inserts a record. Saving an existing ID replaces it.
	Save(ctx context.Context, record *CalculationRecord) error

	// Get returns the record with the given ID, or nil if there is none.
	Get(ctx context.Context, id string) (*CalculationRecord, error)

	// List returns records newest first.
	List(ctx context.Context, limit, offset int) ([]*CalculationRecord, error)

	Count(ctx context.Context) (int64, error)
	Close() error
}

// CalculationHistory reads back stored calculations.
type CalculationHistory interface {
	GetCalculation(ctx context.Context, id string) (*CalculationRecord, error)
	ListCalculations(ctx context.Context, limit, offset int) (*CalculationPage, error)
}

// CalculationLookup names one stored calculation.
type CalculationLookup struct {
	ID string `json:"id"`
}

// CalculationListRequest selects a page of stored calculations.
type CalculationListRequest struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}
