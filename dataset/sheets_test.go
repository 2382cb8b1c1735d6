package dataset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSheets(t *testing.T, handler http.HandlerFunc, retries uint) *SheetsSource {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	source := NewSheetsSource("sheet-id", 5*time.Second, retries)
	source.BaseURL = server.URL + "/%s?sheet=%s"
	return source
}

func TestSheetsSourceFetch(t *testing.T) {
	var gotSheet string
	source := newTestSheets(t, func(w http.ResponseWriter, r *http.Request) {
		gotSheet = r.URL.Query().Get("sheet")
		assert.Equal(t, "/sheet-id", r.URL.Path)
		_, _ = w.Write([]byte("Judul Berita,Tanggal,Sumber Media\nBerita 1,02-01-2024,Kompas\n"))
	}, 1)

	table, err := source.Fetch(context.Background(), "DATASET BERITA")
	require.NoError(t, err)

	assert.Equal(t, "DATASET BERITA", gotSheet)
	assert.Equal(t, "DATASET BERITA", table.Name)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, "Kompas", table.Cell(0, 2))
}

func TestSheetsSourceNotFoundIsPermanent(t *testing.T) {
	var calls int32
	source := newTestSheets(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}, 3)

	_, err := source.Fetch(context.Background(), "DATASET SP")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSheetNotFound))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSheetsSourceRetriesServerErrors(t *testing.T) {
	var calls int32
	source := newTestSheets(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("JUDUL\nRilis A\n"))
	}, 3)

	table, err := source.Fetch(context.Background(), "DATASET SP")
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestSheetsSourceWithoutSpreadsheetID(t *testing.T) {
	_, err := NewSheetsSource("", time.Second, 1).Fetch(context.Background(), "DATASET SP")
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}
