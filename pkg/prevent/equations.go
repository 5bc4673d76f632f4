package prevent

import "math"

// Substitute used when BMI is absent; both BMI spline segments evaluate to
// zero at this value. The HF scores are nulled afterwards regardless.
const defaultBMI = 25

// predictors are the centered and spline-split transformations of the inputs
// shared by every equation.
type predictors struct {
	age         float64 // (age-55)/10
	ageSquared  float64
	nonHDL      float64 // mmol/L, centered at 3.5
	hdl         float64 // mmol/L, centered at 1.3 per 0.3
	sbpLow      float64
	sbpHigh     float64
	diabetes    float64
	smoking     float64
	bmiLow      float64
	bmiHigh     float64
	egfrLow     float64
	egfrHigh    float64
	bpTreatment float64
	statin      float64
}

func newPredictors(in PatientInputs, endpoint Endpoint) predictors {
	var tc, hdl float64
	if in.TotalCholesterol != nil {
		tc = *in.TotalCholesterol
	}
	if in.HDL != nil {
		hdl = *in.HDL
	}
	bmi := float64(defaultBMI)
	if in.BMI != nil {
		bmi = *in.BMI
	}

	age := (in.Age - 55) / 10

	p := predictors{
		age:         age,
		ageSquared:  age * age,
		nonHDL:      nonHDL(tc, hdl, endpoint),
		hdl:         (ToMmolL(hdl) - 1.3) / 0.3,
		sbpLow:      (math.Min(in.SBP, 110) - 110) / 20,
		sbpHigh:     (math.Max(in.SBP, 110) - 130) / 20,
		diabetes:    indicator(in.Diabetes),
		smoking:     indicator(in.Smoking),
		bmiLow:      (math.Min(bmi, 25) - 25) / 5,
		bmiHigh:     (math.Max(bmi, 30) - 30) / 5,
		egfrLow:     (math.Min(in.EGFR, 60) - 60) / -15,
		egfrHigh:    (math.Max(in.EGFR, 60) - 90) / -15,
		bpTreatment: indicator(in.BPTreatment),
	}
	if in.Statin != nil {
		p.statin = indicator(*in.Statin)
	}
	return p
}

// nonHDL returns non-HDL cholesterol in mmol/L centered at 3.5. The ASCVD
// equations convert each fraction separately before subtracting; the others
// convert the difference. The two groupings round differently.
func nonHDL(tc, hdl float64, endpoint Endpoint) float64 {
	if endpoint == ASCVD {
		return ToMmolL(tc) - ToMmolL(hdl) - 3.5
	}
	return ToMmolL(tc-hdl) - 3.5
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// logOdds evaluates the linear predictor of one equation.
func (c *coefficients) logOdds(p predictors, horizon Horizon, in PatientInputs) float64 {
	x := c.Intercept + c.Age*p.age
	if horizon == ThirtyYear {
		x += c.AgeSquared * p.ageSquared
	}

	x += c.NonHDL*p.nonHDL +
		c.HDL*p.hdl +
		c.SBPLow*p.sbpLow +
		c.SBPHigh*p.sbpHigh +
		c.Diabetes*p.diabetes +
		c.Smoking*p.smoking +
		c.BMILow*p.bmiLow +
		c.BMIHigh*p.bmiHigh +
		c.EGFRLow*p.egfrLow +
		c.EGFRHigh*p.egfrHigh +
		c.BPTreatment*p.bpTreatment +
		c.Statin*p.statin

	x += c.BPTreatmentSBPHigh*p.bpTreatment*p.sbpHigh +
		c.StatinNonHDL*p.statin*p.nonHDL

	x += c.AgeNonHDL*p.age*p.nonHDL +
		c.AgeHDL*p.age*p.hdl +
		c.AgeSBPHigh*p.age*p.sbpHigh +
		c.AgeDiabetes*p.age*p.diabetes +
		c.AgeSmoking*p.age*p.smoking +
		c.AgeBMIHigh*p.age*p.bmiHigh +
		c.AgeEGFRLow*p.age*p.egfrLow

	if o := c.Optional; o != nil {
		x += SDITerm(in.SDI, o.SDIMid, o.SDIHigh, o.SDIMissing)
		x += UACRTerm(in.UACR, o.UACR, o.UACRMissing)
		x += HbA1cTerm(in.HbA1c, in.Diabetes, o.HbA1cDiabetes, o.HbA1cNoDiabetes, o.HbA1cMissing)
	}

	return x
}

// SDITerm returns the social deprivation contribution: the mid-tertile weight
// for deciles 4-6, the high-tertile weight for deciles 7-10, zero for 1-3 and
// the missing constant when sdi is nil.
func SDITerm(sdi *int, mid, high, missing float64) float64 {
	if sdi == nil {
		return missing
	}
	t := float64(SDITertile(*sdi))
	return mid*(2-t)*t + high*(t-1)*(0.5*t)
}

// UACRTerm returns coef·ln(AdjustUACR(uacr)), or the missing constant when
// uacr is nil.
func UACRTerm(uacr *float64, coef, missing float64) float64 {
	if uacr == nil {
		return missing
	}
	return coef * math.Log(AdjustUACR(*uacr))
}

// HbA1cTerm returns the HbA1c contribution centered at 5.3%, weighted by
// diabetes status, or the missing constant when hba1c is nil.
func HbA1cTerm(hba1c *float64, diabetes bool, withDiabetes, withoutDiabetes, missing float64) float64 {
	if hba1c == nil {
		return missing
	}
	dm := indicator(diabetes)
	d := *hba1c - 5.3
	return withDiabetes*d*dm + withoutDiabetes*d*(1-dm)
}

// toPercent applies the logistic transform and scales to a percentage.
func toPercent(x float64) float64 {
	e := math.Exp(x)
	if math.IsInf(e, 1) {
		return 100
	}
	return 100 * e / (1 + e)
}
