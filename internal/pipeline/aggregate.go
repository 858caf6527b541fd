package pipeline

import (
	"sort"
	"time"

	"dlc-analytics/internal/classify"
	"dlc-analytics/internal/model"
)

// ViewName selects one aggregation view. Views fold the same record stream
// independently: each has its own key, its own nested counters and its own
// inclusion predicate, so downstream consumers can pick any combination
// from a single pass.
type ViewName string

const (
	ViewBankPincode    ViewName = "bank_pincode"
	ViewPensionerState ViewName = "pensioner_state"
	ViewDistrict       ViewName = "district"
	ViewBank           ViewName = "bank"
)

// AllViews enables every aggregation view.
var AllViews = []ViewName{ViewBankPincode, ViewPensionerState, ViewDistrict, ViewBank}

// minBranchPincodeLen is the shortest branch pincode accepted by the
// branch-keyed views. Indian pincodes are 6 digits; shorter values are
// truncation artifacts from the source spreadsheets.
const minBranchPincodeLen = 6

// Aggregator folds normalized records into nested counting buckets.
// Single-writer: one goroutine owns an Aggregator for the duration of a
// pass; shard-per-file runs combine results with Merge.
type Aggregator struct {
	ReferenceYear int

	BankPincodes map[string]*model.BankPincodeStats
	States       map[string]*model.StateResidenceStats
	Districts    map[string]*model.DistrictStats
	Banks        map[string]*model.BankStats

	// Encounter order per view, used to break count ties in top-N output.
	bankPincodeOrder []string
	stateOrder       []string
	districtOrder    []string

	TotalRecords int

	enabled map[ViewName]bool
}

// NewAggregator creates an aggregator with the given views enabled.
// No views means all views.
func NewAggregator(referenceYear int, views ...ViewName) *Aggregator {
	if len(views) == 0 {
		views = AllViews
	}
	enabled := make(map[ViewName]bool, len(views))
	for _, v := range views {
		enabled[v] = true
	}
	return &Aggregator{
		ReferenceYear: referenceYear,
		BankPincodes:  make(map[string]*model.BankPincodeStats),
		States:        make(map[string]*model.StateResidenceStats),
		Districts:     make(map[string]*model.DistrictStats),
		Banks:         make(map[string]*model.BankStats),
		enabled:       enabled,
	}
}

// Add folds one record into every enabled view whose inclusion predicate
// accepts it. Counts are exact integers; no percentages are computed here.
func (a *Aggregator) Add(rec model.PensionerRecord) {
	a.TotalRecords++

	ageGroup := classify.AgeGroup(rec.BirthYear, a.ReferenceYear)
	branchOK := len(rec.BranchPincode) >= minBranchPincodeLen

	if a.enabled[ViewBankPincode] && branchOK {
		a.addBankPincode(rec, ageGroup)
	}
	if a.enabled[ViewPensionerState] && rec.PensionerPincode != "" {
		a.addPensionerState(rec, ageGroup)
	}
	if a.enabled[ViewDistrict] && branchOK {
		a.addDistrict(rec, ageGroup)
	}
	if a.enabled[ViewBank] {
		a.addBank(rec)
	}
}

func (a *Aggregator) addBankPincode(rec model.PensionerRecord, ageGroup string) {
	stats, ok := a.BankPincodes[rec.BranchPincode]
	if !ok {
		stats = &model.BankPincodeStats{
			AgeGroups:       make(map[string]int),
			PensionerStates: make(map[string]int),
		}
		a.BankPincodes[rec.BranchPincode] = stats
		a.bankPincodeOrder = append(a.bankPincodeOrder, rec.BranchPincode)
	}
	stats.TotalDLCCompleted++
	stats.AgeGroups[ageGroup]++
	stats.PensionerStates[classify.StateFromPincode(rec.PensionerPincode)]++
	if stats.State == "" {
		stats.State = classify.StateFromPincode(rec.BranchPincode)
	}
}

func (a *Aggregator) addPensionerState(rec model.PensionerRecord, ageGroup string) {
	state := classify.StateFromPincode(rec.PensionerPincode)
	stats, ok := a.States[state]
	if !ok {
		stats = &model.StateResidenceStats{
			AgeGroups:     make(map[string]int),
			BankLocations: make(map[string]int),
			PincodeCounts: make(map[string]int),
		}
		a.States[state] = stats
		a.stateOrder = append(a.stateOrder, state)
	}
	stats.TotalPensioners++
	stats.AgeGroups[ageGroup]++
	stats.BankLocations[classify.StateFromPincode(rec.BranchPincode)]++
	stats.PincodeCounts[rec.PensionerPincode]++
}

func (a *Aggregator) addDistrict(rec model.PensionerRecord, ageGroup string) {
	state := classify.StateFromPincode(rec.BranchPincode)
	key := classify.DistrictFromPincode(rec.BranchPincode) + "_" + state
	stats, ok := a.Districts[key]
	if !ok {
		stats = &model.DistrictStats{
			AgeGroups: make(map[string]int),
			State:     state,
		}
		a.Districts[key] = stats
		a.districtOrder = append(a.districtOrder, key)
	}
	stats.TotalDLCCompleted++
	stats.AgeGroups[ageGroup]++
}

func (a *Aggregator) addBank(rec model.PensionerRecord) {
	stats, ok := a.Banks[rec.BankName]
	if !ok {
		stats = &model.BankStats{
			Locations: make(map[string]bool),
			States:    make(map[string]bool),
			Pincodes:  make(map[string]bool),
		}
		a.Banks[rec.BankName] = stats
	}
	branchState := classify.StateFromPincode(rec.BranchPincode)
	stats.TotalPensioners++
	stats.Locations[rec.BranchName+", "+branchState] = true
	stats.States[branchState] = true
	if rec.BranchPincode != "" {
		stats.Pincodes[rec.BranchPincode] = true
	}
}

// Merge folds another aggregator into this one. Numeric semantics match Add
// exactly, so sharding a batch by file and merging produces the same counts
// as a single sequential pass. Encounter order appends the other shard's
// unseen keys after this one's.
func (a *Aggregator) Merge(other *Aggregator) {
	a.TotalRecords += other.TotalRecords

	for _, pincode := range other.bankPincodeOrder {
		src := other.BankPincodes[pincode]
		dst, ok := a.BankPincodes[pincode]
		if !ok {
			dst = &model.BankPincodeStats{
				AgeGroups:       make(map[string]int),
				PensionerStates: make(map[string]int),
				State:           src.State,
			}
			a.BankPincodes[pincode] = dst
			a.bankPincodeOrder = append(a.bankPincodeOrder, pincode)
		}
		dst.TotalDLCCompleted += src.TotalDLCCompleted
		mergeCounts(dst.AgeGroups, src.AgeGroups)
		mergeCounts(dst.PensionerStates, src.PensionerStates)
		if dst.State == "" {
			dst.State = src.State
		}
	}

	for _, state := range other.stateOrder {
		src := other.States[state]
		dst, ok := a.States[state]
		if !ok {
			dst = &model.StateResidenceStats{
				AgeGroups:     make(map[string]int),
				BankLocations: make(map[string]int),
				PincodeCounts: make(map[string]int),
			}
			a.States[state] = dst
			a.stateOrder = append(a.stateOrder, state)
		}
		dst.TotalPensioners += src.TotalPensioners
		mergeCounts(dst.AgeGroups, src.AgeGroups)
		mergeCounts(dst.BankLocations, src.BankLocations)
		mergeCounts(dst.PincodeCounts, src.PincodeCounts)
	}

	for _, key := range other.districtOrder {
		src := other.Districts[key]
		dst, ok := a.Districts[key]
		if !ok {
			dst = &model.DistrictStats{
				AgeGroups: make(map[string]int),
				State:     src.State,
			}
			a.Districts[key] = dst
			a.districtOrder = append(a.districtOrder, key)
		}
		dst.TotalDLCCompleted += src.TotalDLCCompleted
		mergeCounts(dst.AgeGroups, src.AgeGroups)
	}

	for bank, src := range other.Banks {
		dst, ok := a.Banks[bank]
		if !ok {
			dst = &model.BankStats{
				Locations: make(map[string]bool),
				States:    make(map[string]bool),
				Pincodes:  make(map[string]bool),
			}
			a.Banks[bank] = dst
		}
		dst.TotalPensioners += src.TotalPensioners
		mergeSets(dst.Locations, src.Locations)
		mergeSets(dst.States, src.States)
		mergeSets(dst.Pincodes, src.Pincodes)
	}
}

func mergeCounts(dst, src map[string]int) {
	for k, v := range src {
		dst[k] += v
	}
}

func mergeSets(dst, src map[string]bool) {
	for k := range src {
		dst[k] = true
	}
}

// TotalDLCCompleted sums completions across all bank pincodes.
func (a *Aggregator) TotalDLCCompleted() int {
	total := 0
	for _, stats := range a.BankPincodes {
		total += stats.TotalDLCCompleted
	}
	return total
}

// TopBankPincodes returns the n bank pincodes with the most completions,
// descending. Ties keep first-encounter order (stable sort), matching the
// historical report output.
func (a *Aggregator) TopBankPincodes(n int) []model.PincodeCount {
	ranked := make([]model.PincodeCount, 0, len(a.bankPincodeOrder))
	for _, pincode := range a.bankPincodeOrder {
		ranked = append(ranked, model.PincodeCount{
			Pincode:  pincode,
			DLCCount: a.BankPincodes[pincode].TotalDLCCompleted,
			District: classify.DistrictFromPincode(pincode),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DLCCount > ranked[j].DLCCount
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Document snapshots the aggregation into a persistable summary. The bank
// view's sets are flattened to sorted lists for stable serialization.
func (a *Aggregator) Document(processedAt time.Time, sourceFiles []string) *model.SummaryDocument {
	doc := &model.SummaryDocument{
		AnalysisTimestamp:     processedAt.Format("2006-01-02 15:04:05"),
		TotalRecordsProcessed: a.TotalRecords,
		TotalBankPincodes:     len(a.BankPincodes),
		TotalDLCCompleted:     a.TotalDLCCompleted(),
		SourceFiles:           sourceFiles,
		BankPincodeData:       a.BankPincodes,
		StateWiseData:         a.States,
		DistrictWiseData:      a.Districts,
		BankData:              make(map[string]*model.BankSummary, len(a.Banks)),
	}
	for name, stats := range a.Banks {
		doc.BankData[name] = &model.BankSummary{
			TotalPensioners: stats.TotalPensioners,
			Locations:       sortedKeys(stats.Locations),
			States:          sortedKeys(stats.States),
			Pincodes:        sortedKeys(stats.Pincodes),
		}
	}
	return doc
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
