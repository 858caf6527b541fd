package pipeline

import (
	"testing"
	"time"

	"dlc-analytics/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const refYear = 2024

func rec(branchPin, pensionerPin string, birthYear int, bank string) model.PensionerRecord {
	return model.PensionerRecord{
		BranchPincode:    branchPin,
		PensionerPincode: pensionerPin,
		BirthYear:        birthYear,
		BankName:         bank,
		BranchName:       "Main Branch",
	}
}

func TestAggregatorBankPincodeView(t *testing.T) {
	agg := NewAggregator(refYear)
	agg.Add(rec("400001", "380001", 1955, "SBI")) // age 69 → 66-70
	agg.Add(rec("400001", "380001", 1950, "SBI")) // age 74 → 71-75
	agg.Add(rec("400001", "110001", 1955, "HDFC"))

	stats := agg.BankPincodes["400001"]
	require.NotNil(t, stats)
	assert.Equal(t, 3, stats.TotalDLCCompleted)
	assert.Equal(t, "Maharashtra", stats.State)
	assert.Equal(t, 2, stats.AgeGroups[model.Age66To70])
	assert.Equal(t, 1, stats.AgeGroups[model.Age71To75])
	assert.Equal(t, 2, stats.PensionerStates["Gujarat"])
	assert.Equal(t, 1, stats.PensionerStates["Delhi"])
}

func TestAggregatorSkipPolicyPerView(t *testing.T) {
	agg := NewAggregator(refYear)

	// Short branch pincode: excluded from branch-keyed views, but the valid
	// pensioner pincode still contributes to the state view.
	agg.Add(rec("4000", "380001", 1955, "SBI"))
	// Empty pensioner pincode: excluded from the state view only.
	agg.Add(rec("400001", "", 1955, "SBI"))

	assert.Len(t, agg.BankPincodes, 1)
	assert.Contains(t, agg.BankPincodes, "400001")
	assert.Len(t, agg.States, 1)
	assert.Equal(t, 1, agg.States["Gujarat"].TotalPensioners)
	// The bank view includes everything.
	assert.Equal(t, 2, agg.Banks["SBI"].TotalPensioners)
	assert.Equal(t, 2, agg.TotalRecords)
}

func TestAggregatorDistrictView(t *testing.T) {
	agg := NewAggregator(refYear)
	agg.Add(rec("400001", "", 1955, "SBI"))
	agg.Add(rec("400099", "", 1940, "SBI"))
	agg.Add(rec("560001", "", 1955, "SBI"))

	mumbai := agg.Districts["Mumbai_Maharashtra"]
	require.NotNil(t, mumbai)
	assert.Equal(t, 2, mumbai.TotalDLCCompleted)
	assert.Equal(t, "Maharashtra", mumbai.State)
	assert.Equal(t, 1, mumbai.AgeGroups[model.Age66To70])
	assert.Equal(t, 1, mumbai.AgeGroups[model.Age80Plus])

	bangalore := agg.Districts["Bangalore_Karnataka"]
	require.NotNil(t, bangalore)
	assert.Equal(t, 1, bangalore.TotalDLCCompleted)
}

func TestAggregatorBankView(t *testing.T) {
	agg := NewAggregator(refYear)
	agg.Add(model.PensionerRecord{
		BranchPincode: "400001", BirthYear: 1955,
		BankName: "SBI", BranchName: "Fort",
	})
	agg.Add(model.PensionerRecord{
		BranchPincode: "560001", BirthYear: 1955,
		BankName: "SBI", BranchName: "MG Road",
	})

	doc := agg.Document(time.Now(), nil)
	bank := doc.BankData["SBI"]
	require.NotNil(t, bank)
	assert.Equal(t, 2, bank.TotalPensioners)
	assert.ElementsMatch(t, []string{"Fort, Maharashtra", "MG Road, Karnataka"}, bank.Locations)
	assert.ElementsMatch(t, []string{"Maharashtra", "Karnataka"}, bank.States)
	assert.ElementsMatch(t, []string{"400001", "560001"}, bank.Pincodes)
}

func TestAggregatorViewSelection(t *testing.T) {
	agg := NewAggregator(refYear, ViewBankPincode)
	agg.Add(rec("400001", "380001", 1955, "SBI"))

	assert.Len(t, agg.BankPincodes, 1)
	assert.Empty(t, agg.States)
	assert.Empty(t, agg.Districts)
	assert.Empty(t, agg.Banks)
}

func TestTopBankPincodesTieBreak(t *testing.T) {
	agg := NewAggregator(refYear)
	// A and B tie at 2, C has 1; encounter order is A, B, C.
	agg.Add(rec("400001", "", 1955, "SBI"))
	agg.Add(rec("560001", "", 1955, "SBI"))
	agg.Add(rec("400001", "", 1955, "SBI"))
	agg.Add(rec("560001", "", 1955, "SBI"))
	agg.Add(rec("700001", "", 1955, "SBI"))

	top := agg.TopBankPincodes(2)
	require.Len(t, top, 2)
	assert.Equal(t, "400001", top[0].Pincode)
	assert.Equal(t, "560001", top[1].Pincode)
	assert.Equal(t, 2, top[0].DLCCount)
}

func TestAggregatorIdempotence(t *testing.T) {
	records := []model.PensionerRecord{
		rec("400001", "380001", 1955, "SBI"),
		rec("400001", "110001", 1940, "HDFC"),
		rec("560001", "560001", 1962, "SBI"),
		rec("4000", "700001", 1950, "PNB"),
	}

	run := func() *model.SummaryDocument {
		agg := NewAggregator(refYear)
		for _, r := range records {
			agg.Add(r)
		}
		return agg.Document(time.Unix(0, 0), []string{"a.csv"})
	}

	first, second := run(), run()
	assert.Equal(t, first, second)
}

func TestAggregatorMergeMatchesSequential(t *testing.T) {
	batch1 := []model.PensionerRecord{
		rec("400001", "380001", 1955, "SBI"),
		rec("560001", "560001", 1962, "HDFC"),
	}
	batch2 := []model.PensionerRecord{
		rec("400001", "110001", 1940, "SBI"),
		rec("700001", "700001", 1950, "PNB"),
	}

	sequential := NewAggregator(refYear)
	for _, r := range append(append([]model.PensionerRecord{}, batch1...), batch2...) {
		sequential.Add(r)
	}

	shard1 := NewAggregator(refYear)
	for _, r := range batch1 {
		shard1.Add(r)
	}
	shard2 := NewAggregator(refYear)
	for _, r := range batch2 {
		shard2.Add(r)
	}
	shard1.Merge(shard2)

	assert.Equal(t, sequential.TotalRecords, shard1.TotalRecords)
	assert.Equal(t, sequential.BankPincodes, shard1.BankPincodes)
	assert.Equal(t, sequential.States, shard1.States)
	assert.Equal(t, sequential.Districts, shard1.Districts)
	assert.Equal(t, sequential.Banks, shard1.Banks)
}

func TestDocumentTotals(t *testing.T) {
	agg := NewAggregator(refYear)
	agg.Add(rec("400001", "380001", 1955, "SBI"))
	agg.Add(rec("560001", "560001", 1962, "HDFC"))
	agg.Add(rec("", "380001", 1955, "SBI")) // no branch pincode

	doc := agg.Document(time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC), []string{"a.csv", "b.csv"})
	assert.Equal(t, "2024-08-01 12:00:00", doc.AnalysisTimestamp)
	assert.Equal(t, 3, doc.TotalRecordsProcessed)
	assert.Equal(t, 2, doc.TotalBankPincodes)
	assert.Equal(t, 2, doc.TotalDLCCompleted)
	assert.Equal(t, []string{"a.csv", "b.csv"}, doc.SourceFiles)
}
