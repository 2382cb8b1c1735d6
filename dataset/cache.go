package dataset

import (
	"context"
	"sync"
	"time"
)

type cachedTable struct {
	table    *Table
	loadedAt time.Time
}

// Cache keeps fetched tables for a retention period so that every filter
// change of a dashboard session does not refetch the spreadsheet.
type Cache struct {
	source    Source
	retention time.Duration
	now       func() time.Time

	mu     sync.RWMutex
	tables map[string]cachedTable
}

func NewCache(source Source, retention time.Duration) *Cache {
	return &Cache{
		source:    source,
		retention: retention,
		now:       time.Now,
		tables:    make(map[string]cachedTable),
	}
}

func (c *Cache) Name() string {
	return "cache(" + c.source.Name() + ")"
}

func (c *Cache) Fetch(ctx context.Context, name string) (*Table, error) {
	if table, ok := c.get(name); ok {
		return table, nil
	}

	table, err := c.source.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.tables[name] = cachedTable{table: table, loadedAt: c.now()}
	c.mu.Unlock()
	return table, nil
}

func (c *Cache) get(name string) (*Table, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.tables[name]
	if !ok || c.now().Sub(cached.loadedAt) >= c.retention {
		return nil, false
	}
	return cached.table, true
}

// Invalidate drops every cached table, forcing the next Fetch to reload.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tables = make(map[string]cachedTable)
}

func (c *Cache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return map[string]interface{}{
		"tables":    len(c.tables),
		"retention": c.retention.String(),
	}
}
