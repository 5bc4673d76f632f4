package prevent

import "math"

// mgdlToMmolL converts cholesterol from mg/dL to mmol/L.
const mgdlToMmolL = 0.02586

// uacrFloor is the smallest UACR fed to the logarithm.
const uacrFloor = 0.1

// ToMmolL converts a cholesterol concentration from mg/dL to mmol/L.
func ToMmolL(cholMgdl float64) float64 {
	return mgdlToMmolL * cholMgdl
}

// SDITertile buckets a social deprivation index decile into a tertile:
// deciles 1-3 map to 0, 4-6 to 1 and 7-10 to 2. Anything else maps to 0;
// out-of-range deciles are rejected by Validate, not here.
func SDITertile(decile int) int {
	switch {
	case decile >= 1 && decile <= 3:
		return 0
	case decile >= 4 && decile <= 6:
		return 1
	case decile >= 7 && decile <= 10:
		return 2
	default:
		return 0
	}
}

// AdjustUACR raises values in [0, 0.1) to 0.1 before the logarithm is taken.
// Negative values pass through unchanged and there is no upper clamp.
func AdjustUACR(uacr float64) float64 {
	if uacr >= 0 && uacr < uacrFloor {
		return uacrFloor
	}
	return uacr
}

// Round1 rounds a percentage to one decimal place for display.
func Round1(pct *float64) *float64 {
	if pct == nil {
		return nil
	}
	v := math.Round(*pct*10) / 10
	return &v
}
