package store

import (
	"testing"

	"dlc-analytics/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *model.SummaryDocument {
	return &model.SummaryDocument{
		TotalRecordsProcessed: 160,
		TotalBankPincodes:     2,
		TotalDLCCompleted:     160,
		BankPincodeData: map[string]*model.BankPincodeStats{
			"400001": {
				TotalDLCCompleted: 100,
				State:             "Maharashtra",
				AgeGroups: map[string]int{
					model.Age66To70: 40,
					model.Age71To75: 60,
				},
				PensionerStates: map[string]int{
					"Gujarat":      25,
					"Maharashtra":  70,
					"Other States": 5,
				},
			},
			"560001": {
				TotalDLCCompleted: 60,
				State:             "Karnataka",
				AgeGroups: map[string]int{
					model.Age60To65: 60,
				},
				PensionerStates: map[string]int{
					"Karnataka": 60,
				},
			},
		},
	}
}

func TestResidenceRollupRedistribution(t *testing.T) {
	out := ResidenceRollup(sampleDocument())

	gujarat := out["Gujarat"]
	require.NotNil(t, gujarat)
	assert.Equal(t, 25, gujarat.TotalPensioners)
	// floor(40*25/100) = 10, floor(60*25/100) = 15 with integer truncation.
	assert.Equal(t, 10, gujarat.AgeGroups[model.Age66To70])
	assert.Equal(t, 15, gujarat.AgeGroups[model.Age71To75])
	assert.Equal(t, 25, gujarat.BankLocations["Maharashtra"])

	// Sentinel residence states are dropped from the rollup entirely.
	assert.NotContains(t, out, "Other States")

	karnataka := out["Karnataka"]
	require.NotNil(t, karnataka)
	assert.Equal(t, 60, karnataka.TotalPensioners)
	assert.Equal(t, 60, karnataka.AgeGroups[model.Age60To65])
}

func TestResidenceRollupDriftBound(t *testing.T) {
	doc := &model.SummaryDocument{
		BankPincodeData: map[string]*model.BankPincodeStats{
			"400001": {
				TotalDLCCompleted: 7,
				State:             "Maharashtra",
				AgeGroups: map[string]int{
					model.Age60To65: 3,
					model.Age66To70: 2,
					model.Age71To75: 2,
				},
				PensionerStates: map[string]int{
					"Gujarat": 3,
					"Delhi":   4,
				},
			},
		},
	}
	out := ResidenceRollup(doc)

	// Truncation loses at most one count per (state, age group) pair, so the
	// redistributed sum per state falls short of an exact share by less than
	// the number of age groups.
	for state, rollup := range out {
		redistributed := 0
		for _, c := range rollup.AgeGroups {
			redistributed += c
		}
		assert.LessOrEqual(t, redistributed, rollup.TotalPensioners, "state %s", state)
		assert.Greater(t, redistributed, rollup.TotalPensioners-len(model.AgeGroups), "state %s", state)
	}
}

func TestBankLocationRollupConservation(t *testing.T) {
	doc := sampleDocument()
	out := BankLocationRollup(doc)

	maha := out["Maharashtra"]
	require.NotNil(t, maha)
	assert.Equal(t, 100, maha.TotalPensioners)
	assert.Equal(t, map[string]int{"400001": 100}, maha.PincodeCounts)
	assert.Equal(t, 40, maha.AgeGroups[model.Age66To70])
	assert.Equal(t, 60, maha.AgeGroups[model.Age71To75])

	// Exact conservation: state totals sum to the document total.
	sum := 0
	for _, rollup := range out {
		sum += rollup.TotalPensioners
	}
	assert.Equal(t, doc.TotalDLCCompleted, sum)
}

func TestBankLocationRollupKeepsSentinelStates(t *testing.T) {
	doc := &model.SummaryDocument{
		BankPincodeData: map[string]*model.BankPincodeStats{
			"999999": {
				TotalDLCCompleted: 5,
				State:             "Other States",
				AgeGroups:         map[string]int{model.Age80Plus: 5},
				PensionerStates:   map[string]int{"Other States": 5},
			},
		},
	}

	out := BankLocationRollup(doc)
	require.Contains(t, out, "Other States")
	assert.Equal(t, 5, out["Other States"].TotalPensioners)

	// The same document contributes nothing to the residence rollup.
	assert.Empty(t, ResidenceRollup(doc))
}

func TestDistrictRollup(t *testing.T) {
	doc := &model.SummaryDocument{
		BankPincodeData: map[string]*model.BankPincodeStats{
			"400001": {
				TotalDLCCompleted: 30,
				State:             "Maharashtra",
				AgeGroups:         map[string]int{model.Age66To70: 30},
			},
			"400050": {
				TotalDLCCompleted: 70,
				State:             "Maharashtra",
				AgeGroups:         map[string]int{model.Age71To75: 70},
			},
			"560001": {
				TotalDLCCompleted: 10,
				State:             "Karnataka",
				AgeGroups:         map[string]int{model.Age60To65: 10},
			},
		},
	}

	out := DistrictRollup(doc, 10)
	mumbai := out["Mumbai_Maharashtra"]
	require.NotNil(t, mumbai)
	assert.Equal(t, 100, mumbai.TotalDLCCompleted)
	assert.Equal(t, "Maharashtra", mumbai.State)
	assert.Equal(t, 30, mumbai.AgeGroups[model.Age66To70])
	assert.Equal(t, 70, mumbai.AgeGroups[model.Age71To75])
	require.Len(t, mumbai.BankPincodes, 2)
	assert.Equal(t, "400050", mumbai.BankPincodes[0].Pincode) // highest count first

	require.Contains(t, out, "Bangalore_Karnataka")
}

func TestOverallAgeDistribution(t *testing.T) {
	dist := OverallAgeDistribution(sampleDocument())
	assert.Equal(t, 40, dist[model.Age66To70])
	assert.Equal(t, 60, dist[model.Age71To75])
	assert.Equal(t, 60, dist[model.Age60To65])
}
