package prevent

// Category is the display band of a risk percentage.
type Category string

const (
	CategoryLow           Category = "low"
	CategoryBorderline    Category = "borderline"
	CategoryIntermediate  Category = "intermediate"
	CategoryElevated      Category = "elevated"
	CategoryHigh          Category = "high"
	CategoryNotComputable Category = "not_computable"
)

// Description returns a short human-readable label.
func (c Category) Description() string {
	switch c {
	case CategoryLow:
		return "Low risk"
	case CategoryBorderline:
		return "Borderline risk"
	case CategoryIntermediate:
		return "Intermediate risk"
	case CategoryElevated:
		return "Elevated risk"
	case CategoryHigh:
		return "High risk"
	default:
		return "Risk not computable"
	}
}

// Band is the lower bound (inclusive) of a category.
type Band struct {
	From     float64  `json:"from"`
	Category Category `json:"category"`
}

// 10-year bands follow the PREVENT primary-prevention thresholds.
var tenYearBands = []Band{
	{From: 20, Category: CategoryHigh},
	{From: 7.5, Category: CategoryIntermediate},
	{From: 5, Category: CategoryBorderline},
	{From: 0, Category: CategoryLow},
}

var thirtyYearBands = []Band{
	{From: 30, Category: CategoryHigh},
	{From: 10, Category: CategoryElevated},
	{From: 0, Category: CategoryLow},
}

// Bands returns the category bands for a horizon, highest first.
func Bands(horizon Horizon) []Band {
	if horizon == ThirtyYear {
		return thirtyYearBands
	}
	return tenYearBands
}

// Interpret maps a score to its category. The engine itself never calls it.
func Interpret(endpoint Endpoint, horizon Horizon, pct *float64) Category {
	if pct == nil {
		return CategoryNotComputable
	}
	for _, b := range Bands(horizon) {
		if *pct >= b.From {
			return b.Category
		}
	}
	return CategoryLow
}

// InterpretResult categorizes all six scores keyed by ScoreName.
func InterpretResult(r RiskResult) map[string]Category {
	out := make(map[string]Category, len(Endpoints)*len(Horizons))
	for _, e := range Endpoints {
		for _, h := range Horizons {
			out[ScoreName(e, h)] = Interpret(e, h, r.Score(e, h))
		}
	}
	return out
}
