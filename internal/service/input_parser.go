package service

import (
	"strings"

	"github.com/prevent-risk-mcp-server/internal/domain"
	"github.com/prevent-risk-mcp-server/pkg/prevent"
)

// ParseSex maps the accepted spellings of sex to the engine enum. Values
// outside them are passed through unchanged so the engine can report the
// record as not computable.
func ParseSex(s string) prevent.Sex {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "male", "m":
		return prevent.Male
	case "female", "f":
		return prevent.Female
	default:
		return prevent.Sex(v)
	}
}

// ToPatientInputs checks that every required predictor is present and
// converts the wire form into engine inputs. Range checks are left to the
// engine.
func ToPatientInputs(req *domain.RiskRequest) (prevent.PatientInputs, error) {
	if req == nil {
		return prevent.PatientInputs{}, domain.NewValidationError("request", "is required", nil)
	}
	if strings.TrimSpace(req.Sex) == "" {
		return prevent.PatientInputs{}, domain.NewValidationError("sex", "is required", req.Sex)
	}

	required := []struct {
		field   string
		present bool
	}{
		{"age", req.Age != nil},
		{"sbp", req.SBP != nil},
		{"dm", req.Diabetes != nil},
		{"smoking", req.Smoking != nil},
		{"egfr", req.EGFR != nil},
		{"bptreat", req.BPTreatment != nil},
	}
	for _, r := range required {
		if !r.present {
			return prevent.PatientInputs{}, domain.NewValidationError(r.field, "is required", nil)
		}
	}

	return prevent.PatientInputs{
		Sex:              ParseSex(req.Sex),
		Age:              *req.Age,
		SBP:              *req.SBP,
		Diabetes:         *req.Diabetes,
		Smoking:          *req.Smoking,
		EGFR:             *req.EGFR,
		BPTreatment:      *req.BPTreatment,
		TotalCholesterol: copyFloat(req.TotalCholesterol),
		HDL:              copyFloat(req.HDL),
		Statin:           copyBool(req.Statin),
		BMI:              copyFloat(req.BMI),
		UACR:             copyFloat(req.UACR),
		HbA1c:            copyFloat(req.HbA1c),
		SDI:              copyInt(req.SDI),
	}, nil
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
