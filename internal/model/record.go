package model

// GenericRecord is a schema-agnostic map for one raw spreadsheet row
type GenericRecord map[string]interface{}

// PensionerRecord is a normalized verification record built from one raw row.
// Every field has a defined fallback; a malformed row never fails as a whole.
type PensionerRecord struct {
	PensionerPincode string  `json:"pensioner_pincode"` // may be empty
	BranchPincode    string  `json:"branch_pincode"`    // may be empty
	BirthYear        int     `json:"birth_year"`
	BankName         string  `json:"bank_name"`
	BranchName       string  `json:"branch_name"`
	PensionAmount    float64 `json:"pension_amount"`
	SourceFile       string  `json:"file_source,omitempty"`
}

// Fallback values applied by the normalizer when a field is missing or unparseable.
const (
	FallbackBirthYear = 1960
	UnknownBank       = "Unknown Bank"
	UnknownBranch     = "Unknown Branch"
)

// Age group labels are part of the wire contract consumed by the dashboard;
// they must match the labels in previously stored documents verbatim.
const (
	AgeBelow60 = "Below 60"
	Age60To65  = "60-65"
	Age66To70  = "66-70"
	Age71To75  = "71-75"
	Age76To80  = "76-80"
	Age80Plus  = "80+"
)

// AgeGroups lists all buckets in display order.
var AgeGroups = []string{AgeBelow60, Age60To65, Age66To70, Age71To75, Age76To80, Age80Plus}
