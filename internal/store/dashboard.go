package store

// Dashboard queries over the synthetic pensioner table. The DLC analysis
// endpoints read summary documents instead; these two surfaces never mix.

// PensionerStats holds the headline dashboard counters.
type PensionerStats struct {
	TotalPensioners      int     `json:"totalPensioners"`
	VerifiedThisMonth    int     `json:"verifiedThisMonth"`
	PendingVerifications int     `json:"pendingVerifications"`
	TotalAmount          float64 `json:"totalAmount"`
}

// DashboardStats computes the headline counters in one pass per counter.
func (s *Store) DashboardStats() (*PensionerStats, error) {
	var stats PensionerStats
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM pensioners`).Scan(&stats.TotalPensioners); err != nil {
		return nil, err
	}
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM pensioners
		WHERE status = 'Verified' AND last_verification >= date('now', '-30 days')`).
		Scan(&stats.VerifiedThisMonth); err != nil {
		return nil, err
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM pensioners WHERE status = 'Pending'`).
		Scan(&stats.PendingVerifications); err != nil {
		return nil, err
	}
	if err := s.db.QueryRow(
		`SELECT COALESCE(SUM(amount), 0) FROM pensioners WHERE status = 'Verified'`).
		Scan(&stats.TotalAmount); err != nil {
		return nil, err
	}
	return &stats, nil
}

// StateWiseRow is one state's synthetic pension summary.
type StateWiseRow struct {
	State           string  `json:"state"`
	TotalPensioners int     `json:"totalPensioners"`
	Verified        int     `json:"verified"`
	Pending         int     `json:"pending"`
	AvgAmount       float64 `json:"avgAmount"`
}

// StateWiseData groups synthetic pensioners by state, largest first.
func (s *Store) StateWiseData() ([]StateWiseRow, error) {
	rows, err := s.db.Query(`
		SELECT
			state,
			COUNT(*) as total_pensioners,
			SUM(CASE WHEN status = 'Verified' THEN 1 ELSE 0 END) as verified,
			SUM(CASE WHEN status = 'Pending' THEN 1 ELSE 0 END) as pending,
			ROUND(AVG(amount), 2) as avg_amount
		FROM pensioners
		GROUP BY state
		ORDER BY total_pensioners DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StateWiseRow
	for rows.Next() {
		var row StateWiseRow
		if err := rows.Scan(&row.State, &row.TotalPensioners, &row.Verified, &row.Pending, &row.AvgAmount); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// DistrictVerification is one district's verification counters for the map.
type DistrictVerification struct {
	District string `json:"district"`
	State    string `json:"state"`
	Total    int    `json:"total"`
	Verified int    `json:"verified"`
	Pending  int    `json:"pending"`
}

// DistrictVerificationCounts groups verifications by district, keeping the
// 50 busiest districts with more than 5 verifications each.
func (s *Store) DistrictVerificationCounts() ([]DistrictVerification, error) {
	rows, err := s.db.Query(`
		SELECT
			district,
			state,
			COUNT(*) as total,
			SUM(CASE WHEN status = 'Verified' THEN 1 ELSE 0 END) as verified,
			SUM(CASE WHEN status = 'Pending' THEN 1 ELSE 0 END) as pending
		FROM pensioners
		GROUP BY district, state
		HAVING total > 5
		ORDER BY total DESC
		LIMIT 50`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DistrictVerification
	for rows.Next() {
		var row DistrictVerification
		if err := rows.Scan(&row.District, &row.State, &row.Total, &row.Verified, &row.Pending); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
