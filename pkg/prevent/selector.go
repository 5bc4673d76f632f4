package prevent

// SelectModel picks the full equations when any of UACR, HbA1c or SDI is
// supplied, and the base equations otherwise. Range validity of those fields
// plays no part in the choice.
func SelectModel(in PatientInputs) Model {
	if in.UACR != nil || in.HbA1c != nil || in.SDI != nil {
		return FullModel
	}
	return BaseModel
}
