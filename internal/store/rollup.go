package store

import (
	"sort"

	"dlc-analytics/internal/classify"
	"dlc-analytics/internal/model"
)

// ResidenceRollup distributes per-bank-pincode counts to the states where
// the pensioners actually live. Sentinel residence states are excluded: a
// pensioner whose residence could not be classified has no state to roll up
// into. Age-group histograms are redistributed proportionally with integer
// truncation (age*resident/total), so the redistributed sum for a pincode
// can fall short of its total by up to the number of age groups. That drift
// is expected, not a bug.
func ResidenceRollup(doc *model.SummaryDocument) map[string]*model.StateRollup {
	out := make(map[string]*model.StateRollup)

	for _, pincode := range sortedPincodes(doc.BankPincodeData) {
		data := doc.BankPincodeData[pincode]
		for residenceState, residentCount := range data.PensionerStates {
			if classify.IsStateSentinel(residenceState) {
				continue
			}
			rollup, ok := out[residenceState]
			if !ok {
				rollup = &model.StateRollup{
					AgeGroups:     make(map[string]int),
					BankLocations: make(map[string]int),
					PincodeCounts: make(map[string]int),
				}
				out[residenceState] = rollup
			}
			rollup.TotalPensioners += residentCount
			rollup.BankLocations[data.State] += residentCount

			if data.TotalDLCCompleted > 0 {
				for ageGroup, ageCount := range data.AgeGroups {
					rollup.AgeGroups[ageGroup] += ageCount * residentCount / data.TotalDLCCompleted
				}
			}
		}
	}
	return out
}

// BankLocationRollup sums per-bank-pincode counts into the state where the
// bank branch sits. No redistribution happens here, so the rollup conserves
// counts exactly: each state's total equals the sum of its pincode totals.
// Sentinel bank states are retained; a completion at an unclassifiable
// branch still happened.
func BankLocationRollup(doc *model.SummaryDocument) map[string]*model.StateRollup {
	out := make(map[string]*model.StateRollup)

	for _, pincode := range sortedPincodes(doc.BankPincodeData) {
		data := doc.BankPincodeData[pincode]
		rollup, ok := out[data.State]
		if !ok {
			rollup = &model.StateRollup{
				AgeGroups:     make(map[string]int),
				BankLocations: make(map[string]int),
				PincodeCounts: make(map[string]int),
			}
			out[data.State] = rollup
		}
		rollup.TotalPensioners += data.TotalDLCCompleted
		rollup.PincodeCounts[pincode] = data.TotalDLCCompleted
		for ageGroup, count := range data.AgeGroups {
			rollup.AgeGroups[ageGroup] += count
		}
	}
	return out
}

// DistrictRollup derives district-level summaries from bank-pincode data,
// keyed "<district>_<state>". Each district carries its top bank pincodes
// by completion count.
func DistrictRollup(doc *model.SummaryDocument, topPincodes int) map[string]*model.DistrictRollup {
	out := make(map[string]*model.DistrictRollup)

	for _, pincode := range sortedPincodes(doc.BankPincodeData) {
		data := doc.BankPincodeData[pincode]
		district := classify.DistrictFromPincode(pincode)
		key := district + "_" + data.State

		rollup, ok := out[key]
		if !ok {
			rollup = &model.DistrictRollup{
				AgeGroups: make(map[string]int),
				State:     data.State,
			}
			out[key] = rollup
		}
		rollup.TotalDLCCompleted += data.TotalDLCCompleted
		for ageGroup, count := range data.AgeGroups {
			rollup.AgeGroups[ageGroup] += count
		}
		rollup.BankPincodes = append(rollup.BankPincodes, model.PincodeCount{
			Pincode:  pincode,
			DLCCount: data.TotalDLCCompleted,
			District: district,
		})
	}

	for _, rollup := range out {
		sort.SliceStable(rollup.BankPincodes, func(i, j int) bool {
			return rollup.BankPincodes[i].DLCCount > rollup.BankPincodes[j].DLCCount
		})
		if topPincodes > 0 && len(rollup.BankPincodes) > topPincodes {
			rollup.BankPincodes = rollup.BankPincodes[:topPincodes]
		}
	}
	return out
}

// OverallAgeDistribution sums age-group histograms across all bank pincodes.
func OverallAgeDistribution(doc *model.SummaryDocument) map[string]int {
	out := make(map[string]int)
	for _, data := range doc.BankPincodeData {
		for ageGroup, count := range data.AgeGroups {
			out[ageGroup] += count
		}
	}
	return out
}

// sortedPincodes gives a deterministic iteration base for rollups built
// from a persisted document, where original encounter order is gone.
func sortedPincodes(data map[string]*model.BankPincodeStats) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
