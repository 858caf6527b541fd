package model

import "time"

// Run statuses, in lifecycle order.
const (
	RunPending     = "pending"
	RunIngesting   = "ingesting"
	RunAggregating = "aggregating"
	RunPersisting  = "persisting"
	RunCompleted   = "completed"
	RunFailed      = "failed"
)

// AnalysisRun tracks one batch pipeline invocation.
type AnalysisRun struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"`
	DataDir           string    `json:"data_dir"`
	RecordsProcessed  int       `json:"records_processed"`
	RowsSkipped       int       `json:"rows_skipped"`
	FilesProcessed    int       `json:"files_processed"`
	FilesSkipped      int       `json:"files_skipped"`
	SummaryTag        string    `json:"summary_tag,omitempty"`
	Error             string    `json:"error,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// RunLog is one stage-level progress entry for a run.
type RunLog struct {
	Stage     string                 `json:"stage"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
