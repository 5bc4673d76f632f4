package prevent

// nullify clears the scores that the validity gates do not allow. It runs
// after every formula has been evaluated.
func nullify(r RiskResult, v Validity) RiskResult {
	if !v.Demographics || !v.Vitals {
		return RiskResult{Model: r.Model}
	}
	if r.Model == FullModel && !v.Optional {
		return RiskResult{Model: r.Model}
	}
	if !v.Cholesterol {
		r.CVD10, r.CVD30 = nil, nil
		r.ASCVD10, r.ASCVD30 = nil, nil
	}
	if !v.BMI {
		r.HF10, r.HF30 = nil, nil
	}
	return r
}
