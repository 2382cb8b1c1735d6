package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/cenkalti/backoff/v5"
)

const sheetsExportURL = "https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:csv&sheet=%s"

// SheetsSource reads a sheet through the public CSV export of a Google
// spreadsheet.
type SheetsSource struct {
	SpreadsheetID string
	Client        *http.Client
	Retries       uint
	// BaseURL overrides the export endpoint; it must contain two %s verbs for
	// the spreadsheet id and the sheet name.
	BaseURL string
}

func NewSheetsSource(spreadsheetID string, timeout time.Duration, retries uint) *SheetsSource {
	return &SheetsSource{
		SpreadsheetID: spreadsheetID,
		Client:        &http.Client{Timeout: timeout},
		Retries:       retries,
	}
}

func (s *SheetsSource) Name() string {
	return "sheets"
}

func (s *SheetsSource) exportURL(sheet string) string {
	base := s.BaseURL
	if base == "" {
		base = sheetsExportURL
	}
	return fmt.Sprintf(base, url.PathEscape(s.SpreadsheetID), url.QueryEscape(sheet))
}

func (s *SheetsSource) Fetch(ctx context.Context, name string) (*Table, error) {
	if s.SpreadsheetID == "" {
		return nil, fmt.Errorf("sheets: spreadsheet id not configured: %w", ErrSourceUnavailable)
	}

	tries := s.Retries
	if tries == 0 {
		tries = 1
	}

	attempt := 0
	table, err := backoff.Retry(ctx, func() (*Table, error) {
		attempt++
		table, err := s.fetchOnce(ctx, name)
		if err != nil && attempt < int(tries) {
			log.WithFields(log.Fields{"sheet": name, "attempt": attempt}).Warnf("sheets fetch failed: %v", err)
		}
		return table, err
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(tries))
	if err != nil {
		return nil, fmt.Errorf("sheets: fetch %q: %w", name, err)
	}
	return table, nil
}

func (s *SheetsSource) fetchOnce(ctx context.Context, name string) (*Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.exportURL(name), nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, backoff.Permanent(ErrSheetNotFound)
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("sheets: status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, backoff.Permanent(fmt.Errorf("sheets: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	table, err := ReadCSV(name, resp.Body)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	return table, nil
}

// ReadCSV decodes a CSV export into a Table; the first record is the header.
func ReadCSV(name string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %q: %w", name, err)
	}

	table := &Table{Name: name, Header: []string{}, Rows: [][]string{}}
	if len(records) == 0 {
		return table, nil
	}
	table.Header = records[0]
	for _, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		table.Rows = append(table.Rows, record)
	}
	return table, nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
