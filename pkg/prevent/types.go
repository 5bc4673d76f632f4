// Package prevent implements the American Heart Association PREVENT equations for
// 10-year and 30-year risk of total cardiovascular disease, atherosclerotic
// cardiovascular disease and heart failure.
//
// Reference: Khan SS et al. (2024) Development and Validation of the American Heart
// Association's PREVENT Equations. Circulation. 149(6):430-449.
// doi: 10.1161/CIRCULATIONAHA.123.067626
//
// The package is a pure function library: it holds no state, performs no I/O and
// never returns errors. Missing or out-of-range inputs are reported by leaving the
// affected scores nil in RiskResult.
package prevent

// Sex selects the sex-specific coefficient sets.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// IsValid reports whether s is one of the two supported values.
func (s Sex) IsValid() bool {
	switch s {
	case Male, Female:
		return true
	default:
		return false
	}
}

func (s Sex) String() string {
	return string(s)
}

// Endpoint is the outcome a score predicts.
type Endpoint string

const (
	CVD   Endpoint = "cvd"
	ASCVD Endpoint = "ascvd"
	HF    Endpoint = "hf"
)

// Endpoints lists every endpoint in output order.
var Endpoints = []Endpoint{CVD, ASCVD, HF}

// IsValid reports whether e is one of the three endpoints.
func (e Endpoint) IsValid() bool {
	switch e {
	case CVD, ASCVD, HF:
		return true
	default:
		return false
	}
}

// Horizon is the prediction window of a score.
type Horizon int

const (
	TenYear    Horizon = 10
	ThirtyYear Horizon = 30
)

// Horizons lists every horizon in output order.
var Horizons = []Horizon{TenYear, ThirtyYear}

// IsValid reports whether h is 10 or 30 years.
func (h Horizon) IsValid() bool {
	return h == TenYear || h == ThirtyYear
}

// Model tags which equation set produced a result.
type Model string

const (
	BaseModel Model = "base"
	FullModel Model = "full"
)

func (m Model) String() string {
	return string(m)
}

// PatientInputs is the already-coerced clinical record for one calculation.
// Optional predictors are pointers; nil means "not supplied" and is never
// inferred from a zero value.
type PatientInputs struct {
	Sex         Sex
	Age         float64 // years
	SBP         float64 // systolic blood pressure, mmHg
	Diabetes    bool
	Smoking     bool
	EGFR        float64 // mL/min/1.73m²
	BPTreatment bool

	TotalCholesterol *float64 // mg/dL
	HDL              *float64 // mg/dL
	Statin           *bool

	BMI *float64 // kg/m²

	UACR  *float64 // mg/g
	HbA1c *float64 // %
	SDI   *int     // decile 1-10
}

// Float returns a pointer to v, for building optional inputs.
func Float(v float64) *float64 {
	return &v
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}

// RiskResult holds the six PREVENT percentages. A nil field means the score
// could not be computed for the given inputs.
type RiskResult struct {
	CVD10   *float64 `json:"cvd_10yr"`
	CVD30   *float64 `json:"cvd_30yr"`
	ASCVD10 *float64 `json:"ascvd_10yr"`
	ASCVD30 *float64 `json:"ascvd_30yr"`
	HF10    *float64 `json:"hf_10yr"`
	HF30    *float64 `json:"hf_30yr"`
	Model   Model    `json:"model"`
}

// Score returns the percentage for one endpoint and horizon.
func (r RiskResult) Score(endpoint Endpoint, horizon Horizon) *float64 {
	switch endpoint {
	case CVD:
		if horizon == TenYear {
			return r.CVD10
		}
		return r.CVD30
	case ASCVD:
		if horizon == TenYear {
			return r.ASCVD10
		}
		return r.ASCVD30
	case HF:
		if horizon == TenYear {
			return r.HF10
		}
		return r.HF30
	}
	return nil
}

func (r *RiskResult) setScore(endpoint Endpoint, horizon Horizon, pct *float64) {
	switch endpoint {
	case CVD:
		if horizon == TenYear {
			r.CVD10 = pct
		} else {
			r.CVD30 = pct
		}
	case ASCVD:
		if horizon == TenYear {
			r.ASCVD10 = pct
		} else {
			r.ASCVD30 = pct
		}
	case HF:
		if horizon == TenYear {
			r.HF10 = pct
		} else {
			r.HF30 = pct
		}
	}
}

// Computed counts the non-nil scores.
func (r RiskResult) Computed() int {
	n := 0
	for _, e := range Endpoints {
		for _, h := range Horizons {
			if r.Score(e, h) != nil {
				n++
			}
		}
	}
	return n
}

// ScoreName returns the wire name of a score, e.g. "ascvd_30yr".
func ScoreName(endpoint Endpoint, horizon Horizon) string {
	if horizon == ThirtyYear {
		return string(endpoint) + "_30yr"
	}
	return string(endpoint) + "_10yr"
}
