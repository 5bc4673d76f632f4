package prevent

import (
	"encoding/json"
	"fmt"
	"math"
)

// Range is a closed or half-open numeric interval.
type Range struct {
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	MinExclusive bool    `json:"min_exclusive,omitempty"`
	MaxExclusive bool    `json:"max_exclusive,omitempty"`
}

// Contains reports whether v lies inside r.
func (r Range) Contains(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	if r.MinExclusive {
		if v <= r.Min {
			return false
		}
	} else if v < r.Min {
		return false
	}
	if r.MaxExclusive {
		return v < r.Max
	}
	return v <= r.Max
}

// MarshalJSON renders an unbounded side as null.
func (r Range) MarshalJSON() ([]byte, error) {
	bound := func(v float64) *float64 {
		if math.IsInf(v, 0) {
			return nil
		}
		return &v
	}
	return json.Marshal(struct {
		Min          *float64 `json:"min"`
		Max          *float64 `json:"max"`
		MinExclusive bool     `json:"min_exclusive,omitempty"`
		MaxExclusive bool     `json:"max_exclusive,omitempty"`
	}{bound(r.Min), bound(r.Max), r.MinExclusive, r.MaxExclusive})
}

func (r Range) String() string {
	lo, hi := "[", "]"
	if r.MinExclusive {
		lo = "("
	}
	if r.MaxExclusive {
		hi = ")"
	}
	return fmt.Sprintf("%s%g, %g%s", lo, r.Min, r.Max, hi)
}

// Valid input domains.
var (
	AgeRange              = Range{Min: 30, Max: 79}
	SBPRange              = Range{Min: 90, Max: 200}
	EGFRRange             = Range{Min: 0, Max: math.Inf(1), MinExclusive: true}
	TotalCholesterolRange = Range{Min: 130, Max: 320}
	HDLRange              = Range{Min: 20, Max: 100}
	BMIRange              = Range{Min: 18.5, Max: 40, MaxExclusive: true}
	UACRRange             = Range{Min: 0, Max: math.Inf(1)}
	HbA1cRange            = Range{Min: 0, Max: math.Inf(1), MinExclusive: true}
	SDIRange              = Range{Min: 1, Max: 10}
)

// MaxThirtyYearAge is the oldest age for which 30-year scores are produced.
const MaxThirtyYearAge = 59

// FieldRange describes the valid domain of one input field.
type FieldRange struct {
	Field    string `json:"field"`
	Unit     string `json:"unit,omitempty"`
	Required bool   `json:"required"`
	Range    Range  `json:"range"`
}

// InputRanges returns the numeric domains enforced by Validate.
func InputRanges() []FieldRange {
	return []FieldRange{
		{Field: "age", Unit: "years", Required: true, Range: AgeRange},
		{Field: "sbp", Unit: "mmHg", Required: true, Range: SBPRange},
		{Field: "egfr", Unit: "mL/min/1.73m2", Required: true, Range: EGFRRange},
		{Field: "tc", Unit: "mg/dL", Range: TotalCholesterolRange},
		{Field: "hdl", Unit: "mg/dL", Range: HDLRange},
		{Field: "bmi", Unit: "kg/m2", Range: BMIRange},
		{Field: "uacr", Unit: "mg/g", Range: UACRRange},
		{Field: "hba1c", Unit: "%", Range: HbA1cRange},
		{Field: "sdi", Unit: "decile", Range: SDIRange},
	}
}

// Issue explains why a validity gate failed.
type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Validity classifies an input record per validity gate. Validate never
// mutates its input.
type Validity struct {
	// Demographics: sex is male or female and age is within AgeRange.
	Demographics bool
	// Vitals: sbp and egfr are within range.
	Vitals bool
	// Cholesterol: tc, hdl and statin are present and in range. Gates CVD and ASCVD.
	Cholesterol bool
	// BMI: bmi is present and in range. Gates HF.
	BMI bool
	// Optional: every supplied full-model predictor is in range.
	Optional bool

	Issues []Issue
}

// Validate checks presence and range of every input field.
func Validate(in PatientInputs) Validity {
	v := Validity{
		Demographics: true,
		Vitals:       true,
		Cholesterol:  true,
		BMI:          true,
		Optional:     true,
	}

	if !in.Sex.IsValid() {
		v.Demographics = false
		v.addIssue("sex", fmt.Sprintf("must be %q or %q", Male, Female))
	}
	if !AgeRange.Contains(in.Age) {
		v.Demographics = false
		v.addIssue("age", "outside "+AgeRange.String())
	}

	if !SBPRange.Contains(in.SBP) {
		v.Vitals = false
		v.addIssue("sbp", "outside "+SBPRange.String())
	}
	if !EGFRRange.Contains(in.EGFR) {
		v.Vitals = false
		v.addIssue("egfr", "must be greater than 0")
	}

	v.Cholesterol = v.checkOptional("tc", in.TotalCholesterol, TotalCholesterolRange, true) && v.Cholesterol
	v.Cholesterol = v.checkOptional("hdl", in.HDL, HDLRange, true) && v.Cholesterol
	if in.Statin == nil {
		v.Cholesterol = false
		v.addIssue("statin", "not supplied")
	}

	v.BMI = v.checkOptional("bmi", in.BMI, BMIRange, true)

	v.Optional = v.checkOptional("uacr", in.UACR, UACRRange, false) && v.Optional
	v.Optional = v.checkOptional("hba1c", in.HbA1c, HbA1cRange, false) && v.Optional
	if in.SDI != nil && !SDIRange.Contains(float64(*in.SDI)) {
		v.Optional = false
		v.addIssue("sdi", "outside "+SDIRange.String())
	}

	return v
}

// checkOptional validates an optional field. A nil value fails only when the
// field is needed by a score family.
func (v *Validity) checkOptional(field string, value *float64, r Range, needed bool) bool {
	if value == nil {
		if needed {
			v.addIssue(field, "not supplied")
			return false
		}
		return true
	}
	if !r.Contains(*value) {
		v.addIssue(field, "outside "+r.String())
		return false
	}
	return true
}

func (v *Validity) addIssue(field, reason string) {
	v.Issues = append(v.Issues, Issue{Field: field, Reason: reason})
}
