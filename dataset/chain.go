package dataset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/apex/log"
)

// Chain tries each source in order and returns the first table it gets. A
// table from any source other than the snapshot fallback is recorded into
// Snapshots so a later outage can still be served.
type Chain struct {
	Sources   []Source
	Snapshots SnapshotStore
	Now       func() time.Time
}

func NewChain(snapshots SnapshotStore, sources ...Source) *Chain {
	return &Chain{Sources: sources, Snapshots: snapshots, Now: time.Now}
}

func (c *Chain) Name() string {
	return "chain"
}

func (c *Chain) Fetch(ctx context.Context, name string) (*Table, error) {
	var errs []error
	for _, source := range c.Sources {
		table, err := source.Fetch(ctx, name)
		if err != nil {
			log.WithFields(log.Fields{"dataset": name, "source": source.Name()}).Warnf("source failed: %v", err)
			errs = append(errs, err)
			continue
		}

		log.WithFields(log.Fields{"dataset": name, "source": source.Name(), "rows": table.Len()}).Info("dataset loaded")
		c.record(ctx, source, table)
		return table, nil
	}

	if len(errs) == 0 {
		return nil, fmt.Errorf("%q: no sources configured: %w", name, ErrSourceUnavailable)
	}
	return nil, fmt.Errorf("%q: %w: %w", name, ErrSourceUnavailable, errors.Join(errs...))
}

func (c *Chain) record(ctx context.Context, source Source, table *Table) {
	if c.Snapshots == nil {
		return
	}
	if _, fromSnapshot := source.(*SnapshotSource); fromSnapshot {
		return
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	snapshot, err := SnapshotFromTable(table, source.Name(), now())
	if err == nil {
		err = c.Snapshots.SaveSnapshot(ctx, snapshot)
	}
	if err != nil {
		log.WithField("dataset", table.Name).Warnf("snapshot not saved: %v", err)
	}
}
