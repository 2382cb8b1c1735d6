package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"press-monitor/models"
)

// SnapshotStore keeps the raw table of the last successful remote fetch per
// dataset. Only inputs are stored, never derived results.
type SnapshotStore interface {
	LoadSnapshot(ctx context.Context, dataset string) (*models.SheetSnapshot, error)
	SaveSnapshot(ctx context.Context, snapshot *models.SheetSnapshot) error
}

// SnapshotSource serves datasets from a SnapshotStore.
type SnapshotSource struct {
	Store SnapshotStore
}

func NewSnapshotSource(store SnapshotStore) *SnapshotSource {
	return &SnapshotSource{Store: store}
}

func (s *SnapshotSource) Name() string {
	return "snapshot"
}

func (s *SnapshotSource) Fetch(ctx context.Context, name string) (*Table, error) {
	snapshot, err := s.Store.LoadSnapshot(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %q: %w", name, err)
	}
	return TableFromSnapshot(snapshot)
}

func SnapshotFromTable(table *Table, source string, fetchedAt time.Time) (*models.SheetSnapshot, error) {
	header, err := json.Marshal(table.Header)
	if err != nil {
		return nil, err
	}
	rows, err := json.Marshal(table.Rows)
	if err != nil {
		return nil, err
	}
	return &models.SheetSnapshot{
		Dataset:    table.Name,
		Source:     source,
		HeaderJSON: string(header),
		RowsJSON:   string(rows),
		RowCount:   len(table.Rows),
		FetchedAt:  fetchedAt,
	}, nil
}

func TableFromSnapshot(snapshot *models.SheetSnapshot) (*Table, error) {
	table := &Table{Name: snapshot.Dataset}
	if err := json.Unmarshal([]byte(snapshot.HeaderJSON), &table.Header); err != nil {
		return nil, fmt.Errorf("snapshot: decode header of %q: %w", snapshot.Dataset, err)
	}
	if err := json.Unmarshal([]byte(snapshot.RowsJSON), &table.Rows); err != nil {
		return nil, fmt.Errorf("snapshot: decode rows of %q: %w", snapshot.Dataset, err)
	}
	return table, nil
}
