package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dlc-analytics/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

// TagLayout is the generation tag format for summary documents. Tags sort
// lexicographically in time order, so "latest" is always the largest tag.
const TagLayout = "20060102_150405"

// Summary document kinds.
const (
	KindAnalysis    = "analysis"
	KindTopPincodes = "top_pincodes"
)

// ErrNoSummary is returned when no summary document has been persisted yet.
// Callers surface it as an empty/404 result, never as a crash.
var ErrNoSummary = errors.New("no summary document found")

// Store persists summary documents, run bookkeeping and the synthetic
// pensioner table in a single sqlite database. Documents are immutable once
// written; concurrent runs write distinct tags and never conflict.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed initializes) the sqlite database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			status TEXT,
			data_dir TEXT,
			records_processed INTEGER DEFAULT 0,
			rows_skipped INTEGER DEFAULT 0,
			files_processed INTEGER DEFAULT 0,
			files_skipped INTEGER DEFAULT 0,
			summary_tag TEXT,
			error_message TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS run_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT,
			stage TEXT,
			level TEXT,
			message TEXT,
			details TEXT,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS summaries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tag TEXT,
			kind TEXT,
			document TEXT,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS pensioners (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pensioner_id TEXT UNIQUE,
			name TEXT,
			age INTEGER,
			district TEXT,
			state TEXT,
			bank TEXT,
			account_number TEXT,
			status TEXT,
			amount REAL,
			last_verification DATE,
			authentication_method TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, err
		}
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ------------------- Runs -------------------

// CreateRun registers a new pending analysis run.
func (s *Store) CreateRun(id, dataDir string) error {
	now := time.Now().UTC()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, status, data_dir, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, model.RunPending, dataDir, now, now)
	return err
}

// UpdateRunStatus moves a run to a new lifecycle status.
func (s *Store) UpdateRunStatus(id, status string) error {
	_, err := s.db.Exec(`UPDATE runs SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	return err
}

// RunResult carries the final counters of a completed run.
type RunResult struct {
	RecordsProcessed int
	RowsSkipped      int
	FilesProcessed   int
	FilesSkipped     int
	SummaryTag       string
}

// FinishRun marks a run completed and records its counters.
func (s *Store) FinishRun(id string, res RunResult) error {
	_, err := s.db.Exec(
		`UPDATE runs SET status = ?, records_processed = ?, rows_skipped = ?,
			files_processed = ?, files_skipped = ?, summary_tag = ?, updated_at = ?
		WHERE id = ?`,
		model.RunCompleted, res.RecordsProcessed, res.RowsSkipped,
		res.FilesProcessed, res.FilesSkipped, res.SummaryTag, time.Now().UTC(), id)
	return err
}

// FailRun marks a run failed and records the error message.
func (s *Store) FailRun(id string, runErr error) error {
	msg := ""
	if runErr != nil {
		msg = runErr.Error()
	}
	_, err := s.db.Exec(`UPDATE runs SET status = ?, error_message = ?, updated_at = ? WHERE id = ?`,
		model.RunFailed, msg, time.Now().UTC(), id)
	return err
}

// GetRun fetches one run by id.
func (s *Store) GetRun(id string) (*model.AnalysisRun, error) {
	row := s.db.QueryRow(
		`SELECT id, status, data_dir, records_processed, rows_skipped,
			files_processed, files_skipped, COALESCE(summary_tag, ''),
			COALESCE(error_message, ''), created_at, updated_at
		FROM runs WHERE id = ?`, id)
	return scanRun(row)
}

// ListRuns returns all runs, newest first.
func (s *Store) ListRuns() ([]*model.AnalysisRun, error) {
	rows, err := s.db.Query(
		`SELECT id, status, data_dir, records_processed, rows_skipped,
			files_processed, files_skipped, COALESCE(summary_tag, ''),
			COALESCE(error_message, ''), created_at, updated_at
		FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*model.AnalysisRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (*model.AnalysisRun, error) {
	var run model.AnalysisRun
	err := row.Scan(&run.ID, &run.Status, &run.DataDir, &run.RecordsProcessed,
		&run.RowsSkipped, &run.FilesProcessed, &run.FilesSkipped,
		&run.SummaryTag, &run.Error, &run.CreatedAt, &run.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// SaveRunLog appends one stage-level progress entry for a run.
func (s *Store) SaveRunLog(runID, stage, level, message string, details map[string]interface{}) error {
	detailsJSON := "{}"
	if details != nil {
		b, err := json.Marshal(details)
		if err == nil {
			detailsJSON = string(b)
		}
	}
	_, err := s.db.Exec(
		`INSERT INTO run_logs (run_id, stage, level, message, details, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, stage, level, message, detailsJSON, time.Now().UTC())
	return err
}

// GetRunLogs returns up to limit log entries for a run, oldest first.
func (s *Store) GetRunLogs(runID string, limit int) ([]model.RunLog, error) {
	rows, err := s.db.Query(
		`SELECT stage, level, message, details, created_at FROM run_logs
		WHERE run_id = ? ORDER BY id ASC LIMIT ?`, runID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []model.RunLog
	for rows.Next() {
		var entry model.RunLog
		var detailsJSON string
		if err := rows.Scan(&entry.Stage, &entry.Level, &entry.Message, &detailsJSON, &entry.CreatedAt); err != nil {
			return nil, err
		}
		if detailsJSON != "" {
			json.Unmarshal([]byte(detailsJSON), &entry.Details)
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}

// ------------------- Summaries -------------------

// SaveSummary persists one summary document under a generation tag. The same
// tag can carry several kinds (the full analysis plus projections).
func (s *Store) SaveSummary(tag, kind string, doc interface{}) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal summary document: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO summaries (tag, kind, document, created_at) VALUES (?, ?, ?, ?)`,
		tag, kind, string(payload), time.Now().UTC())
	return err
}

// LatestSummaryRaw returns the newest document of the given kind and its tag.
// "Latest" is decided by tag ordering alone; there is no separate pointer to
// maintain. Returns ErrNoSummary when nothing has been persisted.
func (s *Store) LatestSummaryRaw(kind string) (json.RawMessage, string, error) {
	var tag, payload string
	err := s.db.QueryRow(
		`SELECT tag, document FROM summaries WHERE kind = ? ORDER BY tag DESC, id DESC LIMIT 1`,
		kind).Scan(&tag, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrNoSummary
	}
	if err != nil {
		return nil, "", err
	}
	return json.RawMessage(payload), tag, nil
}

// LatestSummary loads and decodes the newest full analysis document.
func (s *Store) LatestSummary() (*model.SummaryDocument, string, error) {
	raw, tag, err := s.LatestSummaryRaw(KindAnalysis)
	if err != nil {
		return nil, "", err
	}
	var doc model.SummaryDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, "", fmt.Errorf("failed to decode summary %s: %w", tag, err)
	}
	return &doc, tag, nil
}

// ListSummaryTags returns all tags of a kind in ascending order.
func (s *Store) ListSummaryTags(kind string) ([]string, error) {
	rows, err := s.db.Query(`SELECT tag FROM summaries WHERE kind = ? ORDER BY tag ASC`, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// ------------------- Synthetic pensioners -------------------

// InsertPensioners bulk-inserts synthetic pensioner rows.
func (s *Store) InsertPensioners(batch []model.SamplePensioner) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(
		`INSERT INTO pensioners (pensioner_id, name, age, district, state, bank,
			account_number, status, amount, last_verification, authentication_method)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, p := range batch {
		if _, err := stmt.Exec(p.PensionerID, p.Name, p.Age, p.District, p.State,
			p.Bank, p.AccountNumber, p.Status, p.Amount, p.LastVerification, p.AuthMethod); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// CountPensioners returns the number of synthetic pensioner rows.
func (s *Store) CountPensioners() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM pensioners`).Scan(&count)
	return count, err
}

// AuthBreakdown holds the authentication-method distribution, optionally
// filtered to one age group.
type AuthBreakdown struct {
	Methods      map[string]int            `json:"authenticationMethods"`
	AgeBreakdown map[string]map[string]int `json:"ageBreakdown"`
	TotalCount   int                       `json:"totalCount"`
	FilteredBy   string                    `json:"filteredBy,omitempty"`
}

// AuthMethodBreakdown aggregates synthetic pensioners by authentication
// method and age group. ageGroup filters to one bucket when non-empty.
func (s *Store) AuthMethodBreakdown(ageGroup string) (*AuthBreakdown, error) {
	query := `
		SELECT
			authentication_method,
			COUNT(*) as count,
			CASE
				WHEN age < 60 THEN 'Below 60'
				WHEN age BETWEEN 60 AND 65 THEN '60-65'
				WHEN age BETWEEN 66 AND 70 THEN '66-70'
				WHEN age BETWEEN 71 AND 75 THEN '71-75'
				WHEN age BETWEEN 76 AND 80 THEN '76-80'
				ELSE '80+'
			END as age_group
		FROM pensioners
		WHERE authentication_method IS NOT NULL`

	switch ageGroup {
	case model.AgeBelow60:
		query += " AND age < 60"
	case model.Age60To65:
		query += " AND age BETWEEN 60 AND 65"
	case model.Age66To70:
		query += " AND age BETWEEN 66 AND 70"
	case model.Age71To75:
		query += " AND age BETWEEN 71 AND 75"
	case model.Age76To80:
		query += " AND age BETWEEN 76 AND 80"
	case model.Age80Plus:
		query += " AND age > 80"
	}
	query += " GROUP BY authentication_method, age_group ORDER BY authentication_method"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := &AuthBreakdown{
		Methods:      make(map[string]int),
		AgeBreakdown: make(map[string]map[string]int),
		FilteredBy:   ageGroup,
	}
	for rows.Next() {
		var method, group string
		var count int
		if err := rows.Scan(&method, &count, &group); err != nil {
			return nil, err
		}
		out.Methods[method] += count
		if out.AgeBreakdown[method] == nil {
			out.AgeBreakdown[method] = make(map[string]int)
		}
		out.AgeBreakdown[method][group] = count
		out.TotalCount += count
	}
	return out, rows.Err()
}
