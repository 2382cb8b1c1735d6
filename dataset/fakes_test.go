package dataset

import (
	"context"
	"fmt"
	"sync"

	"press-monitor/models"
)

type fakeSource struct {
	name   string
	tables map[string]*Table
	err    error
	calls  int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Fetch(_ context.Context, name string) (*Table, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	table, ok := f.tables[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrSheetNotFound)
	}
	return table, nil
}

type memorySnapshots struct {
	mu        sync.Mutex
	snapshots map[string]*models.SheetSnapshot
}

func newMemorySnapshots() *memorySnapshots {
	return &memorySnapshots{snapshots: make(map[string]*models.SheetSnapshot)}
}

func (m *memorySnapshots) LoadSnapshot(_ context.Context, dataset string) (*models.SheetSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.snapshots[dataset]
	if !ok {
		return nil, ErrSheetNotFound
	}
	return s, nil
}

func (m *memorySnapshots) SaveSnapshot(_ context.Context, snapshot *models.SheetSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[snapshot.Dataset] = snapshot
	return nil
}

func releaseTable() *Table {
	return &Table{
		Name:   "DATASET SP",
		Header: []string{"JUDUL", "PUBLIKASI", "NARASUMBER"},
		Rows: [][]string{
			{"Rilis A", "01-01-2024", "Budi, Santoso; Ani, Wijaya"},
			{"Rilis B", "bukan tanggal", "Tono"},
			{"Rilis C"},
		},
	}
}

func coverageTable() *Table {
	return &Table{
		Name:   "DATASET BERITA",
		Header: []string{"Judul Berita", "Tanggal", "Sumber Media", "Siaran Pers", "Link Berita"},
		Rows: [][]string{
			{"Berita 1", "02-01-2024", "Kompas", "Rilis A", "https://kompas.example/1"},
			{"Berita 2", "", "Tempo", "Rilis A", "https://tempo.example/2"},
		},
	}
}
