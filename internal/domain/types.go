// Package domain contains the request and response types shared by the HTTP
// and MCP transports of the PREVENT risk service, along with configuration
// structures and the error envelope returned to clients.
package domain

import (
	"time"

	"github.com/prevent-risk-mcp-server/pkg/prevent"
)

// RiskRequest is the wire form of one patient record. Required predictors are
// pointers so that an omitted field can be told apart from a zero value.
type RiskRequest struct {
	Sex         string   `json:"sex"`
	Age         *float64 `json:"age"`
	SBP         *float64 `json:"sbp"`
	Diabetes    *bool    `json:"dm"`
	Smoking     *bool    `json:"smoking"`
	EGFR        *float64 `json:"egfr"`
	BPTreatment *bool    `json:"bptreat"`

	TotalCholesterol *float64 `json:"tc,omitempty"`
	HDL              *float64 `json:"hdl,omitempty"`
	Statin           *bool    `json:"statin,omitempty"`
	BMI              *float64 `json:"bmi,omitempty"`
	UACR             *float64 `json:"uacr,omitempty"`
	HbA1c            *float64 `json:"hba1c,omitempty"`
	SDI              *int     `json:"sdi,omitempty"`
}

// ScoreSummary is the presentation view of one of the six scores.
type ScoreSummary struct {
	Name        string           `json:"name"`
	Endpoint    prevent.Endpoint `json:"endpoint"`
	Horizon     prevent.Horizon  `json:"horizon_years"`
	Percent     *float64         `json:"percent"`
	Display     *float64         `json:"display"`
	Category    prevent.Category `json:"category"`
	Description string           `json:"description"`
}

// RiskResponse is returned for a single calculation.
type RiskResponse struct {
	ID             string             `json:"id"`
	Model          prevent.Model      `json:"model"`
	Risk           prevent.RiskResult `json:"risk"`
	Scores         []ScoreSummary     `json:"scores"`
	Notes          []prevent.Issue    `json:"notes,omitempty"`
	Cached         bool               `json:"cached"`
	ProcessingTime time.Duration      `json:"processing_time_ns"`
	CalculatedAt   time.Time          `json:"calculated_at"`
}

// LogFields returns structured logging fields for audit trails. Patient
// predictors are never included.
func (r *RiskResponse) LogFields() map[string]interface{} {
	return map[string]interface{}{
		"calculation_id":  r.ID,
		"model":           r.Model,
		"computed_scores": r.Risk.Computed(),
		"notes":           len(r.Notes),
		"cached":          r.Cached,
		"processing_time": r.ProcessingTime.String(),
	}
}

// BatchRequest wraps several patient records.
type BatchRequest struct {
	Patients []RiskRequest `json:"patients"`
}

// BatchItem is one entry of a batch response, in input order. Exactly one of
// Result and Error is set.
type BatchItem struct {
	Index  int           `json:"index"`
	Result *RiskResponse `json:"result,omitempty"`
	Error  *MCPError     `json:"error,omitempty"`
}

// BatchResponse is returned for a batch calculation.
type BatchResponse struct {
	Items     []BatchItem `json:"items"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
}

// InterpretRequest asks for the category of an already computed percentage.
type InterpretRequest struct {
	Endpoint string   `json:"endpoint"`
	Horizon  int      `json:"horizon_years"`
	Percent  *float64 `json:"percent"`
}

// InterpretResponse carries the category for an InterpretRequest.
type InterpretResponse struct {
	Endpoint    prevent.Endpoint `json:"endpoint"`
	Horizon     prevent.Horizon  `json:"horizon_years"`
	Percent     *float64         `json:"percent"`
	Category    prevent.Category `json:"category"`
	Description string           `json:"description"`
	Bands       []prevent.Band   `json:"bands"`
}

// ModelInfo describes the equations and accepted input ranges.
type ModelInfo struct {
	Name             string               `json:"name"`
	Reference        string               `json:"reference"`
	Models           []prevent.Model      `json:"models"`
	Endpoints        []prevent.Endpoint   `json:"endpoints"`
	Horizons         []prevent.Horizon    `json:"horizons_years"`
	MaxThirtyYearAge float64              `json:"max_thirty_year_age"`
	Inputs           []prevent.FieldRange `json:"inputs"`
	TenYearBands     []prevent.Band       `json:"ten_year_bands"`
	ThirtyYearBands  []prevent.Band       `json:"thirty_year_bands"`
}
