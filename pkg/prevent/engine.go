package prevent

// ComputeRisk evaluates the PREVENT equations for one patient.
//
// The model is chosen by SelectModel before anything else. Formulas run for
// every endpoint and horizon the patient's age allows, including families
// whose optional predictors are missing, and the validity gates are applied
// to the finished result:
//
//   - invalid sex or age: nothing is evaluated and all six scores are nil
//   - sbp or egfr out of range: all six scores are nil
//   - full model with an out-of-range uacr, hba1c or sdi: all six scores are nil
//   - tc, hdl or statin missing or out of range: CVD and ASCVD scores are nil
//   - bmi missing or out of range: HF scores are nil
//   - age above 59: 30-year scores are nil
func ComputeRisk(in PatientInputs) RiskResult {
	result := RiskResult{Model: SelectModel(in)}

	validity := Validate(in)
	if !validity.Demographics {
		return result
	}

	table := baseEquations
	if result.Model == FullModel {
		table = fullEquations
	}

	for _, endpoint := range Endpoints {
		p := newPredictors(in, endpoint)
		for _, horizon := range Horizons {
			if horizon == ThirtyYear && in.Age > MaxThirtyYearAge {
				continue
			}
			eq := table[equationKey{sex: in.Sex, endpoint: endpoint, horizon: horizon}]
			pct := toPercent(eq.logOdds(p, horizon, in))
			result.setScore(endpoint, horizon, &pct)
		}
	}

	return nullify(result, validity)
}
