package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const maxLineSize = 10 * 1024 * 1024 // 10MB

// Load picks a loader by file extension.
func Load(path string, log *zap.SugaredLogger) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(path)
	case ".jsonl", ".ndjson":
		return LoadJSONL(path, log)
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(path, "conversations")
	}
	return nil, fmt.Errorf("unsupported dataset format: %s", path)
}

// LoadJSON reads a table stored as a top-level JSON array of objects.
func LoadJSON(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rows []Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &Table{Rows: rows}, nil
}

// LoadJSONL reads a table stored as one JSON object per line. Malformed
// lines are skipped with a diagnostic so one bad record cannot sink the
// whole dataset.
func LoadJSONL(path string, log *zap.SugaredLogger) (*Table, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var rows []Row
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var row Row
		if err := json.Unmarshal(line, &row); err != nil {
			log.Warnw("skipping malformed line", "file", path, "line", lineNum, "error", err)
			continue
		}
		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &Table{Rows: rows}, nil
}
