package pipeline

import (
	"fmt"
	"path/filepath"
	"time"

	"dlc-analytics/internal/model"
	"dlc-analytics/internal/store"

	"go.uber.org/zap"
)

// Runner executes one batch analysis over a directory of CSV exports.
// Runs are single-pass and single-writer: files are processed sequentially,
// row by row, into one Aggregator. There is no cancellation or resume; a run
// either completes (possibly skipping bad files and rows) or the process is
// killed.
type Runner struct {
	Store         *store.Store
	Log           *zap.Logger
	ReferenceYear int
	TopPincodes   int // size of the persisted top-pincodes projection
}

// NewRunner builds a runner with the reference year defaulting to the
// current year and the historical top-50 projection size.
func NewRunner(st *store.Store, log *zap.Logger) *Runner {
	return &Runner{
		Store:         st,
		Log:           log,
		ReferenceYear: time.Now().Year(),
		TopPincodes:   50,
	}
}

// Run ingests every CSV file under dataDir, aggregates all views and
// persists the resulting summary document under a fresh generation tag.
// Row errors skip the row, file errors skip the file; only a missing source
// directory fails the run.
func (r *Runner) Run(runID, dataDir string) (*model.SummaryDocument, error) {
	start := time.Now()
	r.Log.Info("starting analysis run",
		zap.String("run_id", runID),
		zap.String("data_dir", dataDir))

	files, err := ListSourceFiles(dataDir)
	if err != nil {
		r.failRun(runID, err)
		return nil, err
	}
	if len(files) == 0 {
		r.Log.Warn("no CSV files found in source directory", zap.String("data_dir", dataDir))
	}

	r.Store.UpdateRunStatus(runID, model.RunIngesting)
	r.Store.SaveRunLog(runID, "ingestion", "info", "starting ingestion", map[string]interface{}{
		"files_found": len(files),
	})

	agg := NewAggregator(r.ReferenceYear)
	var sourceFiles []string
	totalRows, totalSkipped, filesSkipped := 0, 0, 0

	for i, path := range files {
		fmt.Printf("📖 Processing file %d/%d: %s\n", i+1, len(files), filepath.Base(path))

		rows, skipped, err := IngestFile(path, func(raw model.GenericRecord) {
			agg.Add(Normalize(raw))
			if agg.TotalRecords%100000 == 0 {
				fmt.Printf("   ✅ Processed %d total records...\n", agg.TotalRecords)
			}
		})
		if err != nil {
			// File-level failure: skip this file, keep the batch going.
			filesSkipped++
			r.Log.Warn("skipping unreadable file", zap.String("file", path), zap.Error(err))
			r.Store.SaveRunLog(runID, "ingestion", "warning", "file skipped", map[string]interface{}{
				"file":  filepath.Base(path),
				"error": err.Error(),
			})
			continue
		}

		sourceFiles = append(sourceFiles, filepath.Base(path))
		totalRows += rows
		totalSkipped += skipped
		fmt.Printf("   ✅ File completed: %d records processed\n", rows)
	}

	r.Store.UpdateRunStatus(runID, model.RunAggregating)
	doc := agg.Document(time.Now(), sourceFiles)

	r.Store.UpdateRunStatus(runID, model.RunPersisting)
	tag := time.Now().Format(store.TagLayout)
	if err := r.Store.SaveSummary(tag, store.KindAnalysis, doc); err != nil {
		r.failRun(runID, err)
		return nil, fmt.Errorf("failed to persist summary: %w", err)
	}
	top := map[string]interface{}{
		fmt.Sprintf("top_%d_bank_pincodes", r.TopPincodes): agg.TopBankPincodes(r.TopPincodes),
	}
	if err := r.Store.SaveSummary(tag, store.KindTopPincodes, top); err != nil {
		r.failRun(runID, err)
		return nil, fmt.Errorf("failed to persist top pincodes: %w", err)
	}

	if err := r.Store.FinishRun(runID, store.RunResult{
		RecordsProcessed: doc.TotalRecordsProcessed,
		RowsSkipped:      totalSkipped,
		FilesProcessed:   len(sourceFiles),
		FilesSkipped:     filesSkipped,
		SummaryTag:       tag,
	}); err != nil {
		return nil, fmt.Errorf("failed to finalize run: %w", err)
	}

	r.Log.Info("analysis run completed",
		zap.String("run_id", runID),
		zap.String("summary_tag", tag),
		zap.Int("records", doc.TotalRecordsProcessed),
		zap.Int("bank_pincodes", doc.TotalBankPincodes),
		zap.Int("rows_skipped", totalSkipped),
		zap.Int("files_skipped", filesSkipped),
		zap.Duration("duration", time.Since(start)))

	return doc, nil
}

func (r *Runner) failRun(runID string, err error) {
	r.Log.Error("analysis run failed", zap.String("run_id", runID), zap.Error(err))
	r.Store.FailRun(runID, err)
}
