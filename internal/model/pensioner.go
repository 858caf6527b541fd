package model

// SamplePensioner is a synthetic pensioner row used by the demo endpoints.
// It lives in its own table and is never read by the aggregation pipeline.
type SamplePensioner struct {
	PensionerID      string  `json:"pensioner_id"`
	Name             string  `json:"name"`
	Age              int     `json:"age"`
	District         string  `json:"district"`
	State            string  `json:"state"`
	Bank             string  `json:"bank"`
	AccountNumber    string  `json:"account_number"`
	Status           string  `json:"status"`
	Amount           float64 `json:"amount"`
	LastVerification string  `json:"last_verification"`
	AuthMethod       string  `json:"authentication_method"`
}

// Verification statuses used by the synthetic data set.
const (
	StatusVerified    = "Verified"
	StatusPending     = "Pending"
	StatusUnderReview = "Under Review"
)

// AuthMethods lists the supported authentication methods.
var AuthMethods = []string{"IRIS", "Fingerprint", "Face Auth"}
