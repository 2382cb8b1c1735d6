package dataset

import (
	"context"
	"errors"
)

var (
	// ErrSourceUnavailable means no configured source could produce the dataset.
	ErrSourceUnavailable = errors.New("dataset source unavailable")
	// ErrSheetNotFound means the source is reachable but has no such sheet.
	ErrSheetNotFound = errors.New("sheet not found")
)

// Source returns the raw table for a dataset (sheet) name.
type Source interface {
	Fetch(ctx context.Context, name string) (*Table, error)
	Name() string
}
