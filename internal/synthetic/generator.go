// Package synthetic seeds the demo pensioner table with plausible sample
// rows. It feeds the authentication-method dashboard endpoints only and is
// kept strictly apart from the real DLC aggregation path.
package synthetic

import (
	"fmt"
	"math/rand"
	"time"

	"dlc-analytics/internal/model"
	"dlc-analytics/internal/store"
)

var states = []string{
	"Karnataka", "Maharashtra", "Tamil Nadu", "Gujarat",
	"Rajasthan", "West Bengal", "Uttar Pradesh", "Kerala",
}

var districts = map[string][]string{
	"Karnataka":     {"Bangalore", "Mysore", "Hubli", "Mangalore"},
	"Maharashtra":   {"Mumbai", "Pune", "Nagpur", "Nashik"},
	"Tamil Nadu":    {"Chennai", "Coimbatore", "Madurai", "Salem"},
	"Gujarat":       {"Ahmedabad", "Surat", "Vadodara", "Rajkot"},
	"Rajasthan":     {"Jaipur", "Jodhpur", "Udaipur", "Kota"},
	"West Bengal":   {"Kolkata", "Howrah", "Durgapur", "Asansol"},
	"Uttar Pradesh": {"Lucknow", "Kanpur", "Agra", "Varanasi"},
	"Kerala":        {"Thiruvananthapuram", "Kochi", "Kozhikode", "Thrissur"},
}

var banks = []string{
	"SBI", "HDFC", "ICICI", "PNB", "BOB",
	"Canara Bank", "Union Bank", "Axis Bank",
}

var statuses = []string{
	model.StatusVerified, model.StatusPending, model.StatusUnderReview,
}

// Generator produces synthetic pensioner rows with age-dependent
// authentication-method preferences.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator builds a generator seeded from seed. The same seed produces
// the same rows for a fixed reference time.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now(),
	}
}

// Generate produces n sample pensioners.
func (g *Generator) Generate(n int) []model.SamplePensioner {
	out := make([]model.SamplePensioner, 0, n)
	for i := 0; i < n; i++ {
		state := states[g.rng.Intn(len(states))]
		stateDistricts := districts[state]
		age := 60 + g.rng.Intn(26)

		out = append(out, model.SamplePensioner{
			PensionerID:      fmt.Sprintf("P%06d", i+1),
			Name:             fmt.Sprintf("Pensioner %d", i+1),
			Age:              age,
			State:            state,
			District:         stateDistricts[g.rng.Intn(len(stateDistricts))],
			Bank:             banks[g.rng.Intn(len(banks))],
			AccountNumber:    fmt.Sprintf("%06d", 100000+g.rng.Intn(900000)),
			Status:           statuses[g.rng.Intn(len(statuses))],
			Amount:           round2(5000 + g.rng.Float64()*20000),
			LastVerification: g.now.AddDate(0, 0, -(1 + g.rng.Intn(365))).Format("2006-01-02"),
			AuthMethod:       g.authMethodForAge(age),
		})
	}
	return out
}

// authMethodForAge picks IRIS/Fingerprint/Face Auth with weights that shift
// toward IRIS as pensioners get older.
func (g *Generator) authMethodForAge(age int) string {
	var weights []int
	switch {
	case age >= 60 && age <= 65:
		weights = []int{25, 40, 35}
	case age >= 66 && age <= 75:
		weights = []int{45, 35, 20}
	default:
		weights = []int{60, 30, 10}
	}
	return weightedChoice(g.rng, model.AuthMethods, weights)
}

func weightedChoice(rng *rand.Rand, choices []string, weights []int) string {
	total := 0
	for _, w := range weights {
		total += w
	}
	pick := rng.Intn(total)
	for i, w := range weights {
		if pick < w {
			return choices[i]
		}
		pick -= w
	}
	return choices[len(choices)-1]
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

// SeedIfEmpty populates the pensioner table with n rows when it is empty.
// Reports whether seeding happened.
func SeedIfEmpty(s *store.Store, n int, seed int64) (bool, error) {
	count, err := s.CountPensioners()
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if err := s.InsertPensioners(NewGenerator(seed).Generate(n)); err != nil {
		return false, err
	}
	return true, nil
}
