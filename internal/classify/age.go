package classify

import "dlc-analytics/internal/model"

// AgeGroup buckets a birth year into one of the six fixed age groups used
// across the dashboard. The buckets partition the whole age line, so every
// input resolves to exactly one label. Birth years are normalized upstream,
// so there is no error path here.
func AgeGroup(birthYear, referenceYear int) string {
	age := referenceYear - birthYear
	switch {
	case age < 60:
		return model.AgeBelow60
	case age <= 65:
		return model.Age60To65
	case age <= 70:
		return model.Age66To70
	case age <= 75:
		return model.Age71To75
	case age <= 80:
		return model.Age76To80
	default:
		return model.Age80Plus
	}
}
