package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"dlc-analytics/internal/model"
	"dlc-analytics/pkg/utils"
)

// ListSourceFiles returns the CSV exports under dataDir in name order.
// A missing directory is the one fatal condition of a run: it aborts with a
// clear diagnostic instead of silently producing an empty summary.
func ListSourceFiles(dataDir string) ([]string, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("source directory %s is not readable: %w", dataDir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			files = append(files, filepath.Join(dataDir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// IngestFile streams one CSV file row by row into fn. Rows that fail to
// parse are skipped and counted, never aborting the file; the returned error
// is only for file-level failures (open/header), which the caller handles by
// skipping the whole file.
func IngestFile(path string, fn func(model.GenericRecord)) (rows, skipped int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, h := range headers {
		h = strings.TrimSpace(h)
		headers[i] = strings.ReplaceAll(h, `"`, "")
	}

	base := filepath.Base(path)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return rows, skipped, nil
		}
		if err != nil {
			skipped++
			continue
		}

		recMap := make(model.GenericRecord, len(headers)+1)
		for i, h := range headers {
			if i < len(record) {
				recMap[h] = utils.ParseValue(record[i])
			}
		}
		recMap["SourceFile"] = base

		fn(recMap)
		rows++
	}
}
