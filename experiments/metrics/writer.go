package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type CaseRecord struct {
	Case  int // 1-based case number
	Score int
	SearchMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by the current timestamp.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteCaseRecords(records []CaseRecord) error {
	path := filepath.Join(w.baseDir, "case_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create case records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"case", "sides", "score", "duration", "nodes", "terminals", "passes", "pruned", "max_depth"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write case records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Case),
			strconv.Itoa(record.Sides),
			strconv.Itoa(record.Score),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Terminals),
			strconv.Itoa(record.Passes),
			strconv.Itoa(record.Pruned),
			strconv.Itoa(record.MaxDepth),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write case record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush case records: %w", err)
	}
	return nil
}
