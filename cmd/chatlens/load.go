package main

import (
	"math/rand"

	"github.com/mlindner/chatlens/internal/dataset"
	"go.uber.org/zap"
)

// loadDataset reads the table behind a path. --table forces the sqlite
// loader regardless of extension.
func loadDataset(path, table string, log *zap.SugaredLogger) (*dataset.Table, error) {
	if table != "" {
		return dataset.LoadSQLite(path, table)
	}
	return dataset.Load(path, log)
}

// newRand builds the injectable randomness source for the pick-one entry
// points. Seed 0 means "not reproducible": the shared global source.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}
