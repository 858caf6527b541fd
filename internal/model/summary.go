package model

// BankPincodeStats accumulates DLC completions for one branch pincode.
type BankPincodeStats struct {
	TotalDLCCompleted int            `json:"total_dlc_completed"`
	AgeGroups         map[string]int `json:"age_groups"`
	State             string         `json:"state"`
	PensionerStates   map[string]int `json:"pensioner_states"`
}

// StateResidenceStats accumulates records by the pensioner's residence state.
type StateResidenceStats struct {
	TotalPensioners int            `json:"total_pensioners"`
	AgeGroups       map[string]int `json:"age_groups"`
	BankLocations   map[string]int `json:"bank_locations"` // keyed by bank state
	PincodeCounts   map[string]int `json:"pincode_counts"` // keyed by pensioner pincode
}

// DistrictStats accumulates records by branch district. Keys are
// "<district>_<state>" so same-named districts in different states stay apart.
type DistrictStats struct {
	TotalDLCCompleted int            `json:"total_dlc_completed"`
	AgeGroups         map[string]int `json:"age_groups"`
	State             string         `json:"state"`
}

// BankStats accumulates records by bank name.
type BankStats struct {
	TotalPensioners int            `json:"total_pensioners"`
	Locations       map[string]bool `json:"-"`
	States          map[string]bool `json:"-"`
	Pincodes        map[string]bool `json:"-"`
}

// BankSummary is the serialized form of BankStats (sets become sorted lists).
type BankSummary struct {
	TotalPensioners int      `json:"total_pensioners"`
	Locations       []string `json:"locations"`
	States          []string `json:"states"`
	Pincodes        []string `json:"pincodes"`
}

// SummaryDocument is the persisted output of one pipeline run. The field
// names are the wire contract consumed by the dashboard front end.
type SummaryDocument struct {
	AnalysisTimestamp     string                       `json:"analysis_timestamp"`
	TotalRecordsProcessed int                          `json:"total_records_processed"`
	TotalBankPincodes     int                          `json:"total_bank_pincodes"`
	TotalDLCCompleted     int                          `json:"total_dlc_completed"`
	SourceFiles           []string                     `json:"source_files"`
	BankPincodeData       map[string]*BankPincodeStats `json:"bank_pincode_data"`
	StateWiseData         map[string]*StateResidenceStats `json:"state_wise_data,omitempty"`
	DistrictWiseData      map[string]*DistrictStats    `json:"district_wise_data,omitempty"`
	BankData              map[string]*BankSummary      `json:"bank_data,omitempty"`
}

// StateRollup is a coarse state-level summary derived from bank-pincode data.
type StateRollup struct {
	TotalPensioners int            `json:"total_pensioners"`
	AgeGroups       map[string]int `json:"age_groups"`
	BankLocations   map[string]int `json:"bank_locations"`
	PincodeCounts   map[string]int `json:"pincode_counts"`
}

// DistrictRollup is a district-level summary derived from bank-pincode data.
type DistrictRollup struct {
	TotalDLCCompleted int            `json:"total_dlc_completed"`
	AgeGroups         map[string]int `json:"age_groups"`
	State             string         `json:"state"`
	BankPincodes      []PincodeCount `json:"bank_pincodes"`
}

// PincodeCount pairs a bank pincode with its completion count for top-N lists.
type PincodeCount struct {
	Pincode  string `json:"pincode"`
	DLCCount int    `json:"dlc_count"`
	District string `json:"district,omitempty"`
}
