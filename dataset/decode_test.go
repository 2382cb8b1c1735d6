package dataset

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeReleases(t *testing.T) {
	releases, missing := DecodeReleases(releaseTable(), DefaultReleaseColumns())

	assert.Empty(t, missing)
	require.Len(t, releases, 3)
	assert.Equal(t, 1, releases[0].ID)
	assert.Equal(t, "Rilis A", releases[0].Title)
	require.NotNil(t, releases[0].PublishedAt)
	assert.Equal(t, "2024-01-01", releases[0].PublishedAt.Format("2006-01-02"))
	assert.Nil(t, releases[1].PublishedAt)
	assert.Equal(t, "", releases[2].Speakers)
}

func TestDecodeReleasesMissingSpeakerColumn(t *testing.T) {
	table := &Table{Name: "DATASET SP", Header: []string{"Judul", "Publikasi"}, Rows: [][]string{{"Rilis A", "01-01-2024"}}}

	releases, missing := DecodeReleases(table, DefaultReleaseColumns())
	require.Len(t, missing, 1)
	assert.Equal(t, "speakers", missing[0].Field)
	assert.Contains(t, missing[0].String(), "DATASET SP")
	require.Len(t, releases, 1)
	assert.Equal(t, "Rilis A", releases[0].Title)
	assert.NotNil(t, releases[0].PublishedAt)
}

func TestDecodeCoverage(t *testing.T) {
	items, hasLink, missing := DecodeCoverage(coverageTable(), DefaultCoverageColumns())

	assert.True(t, hasLink)
	assert.Empty(t, missing)
	require.Len(t, items, 2)
	assert.Equal(t, "Rilis A", items[0].LinkedRelease)
	assert.Equal(t, "Kompas", items[0].Media)
	assert.Equal(t, "https://kompas.example/1", items[0].URL)
	assert.Nil(t, items[1].PublishedAt)
}

func TestDecodeCoverageWithoutLinkColumn(t *testing.T) {
	table := &Table{Name: "DATASET BERITA", Header: []string{"Tanggal", "Media"}, Rows: [][]string{{"02-01-2024", "Tempo"}}}

	items, hasLink, missing := DecodeCoverage(table, DefaultCoverageColumns())
	assert.False(t, hasLink)
	assert.Len(t, missing, 2)
	require.Len(t, items, 1)
	assert.Equal(t, "", items[0].LinkedRelease)
	assert.Equal(t, "Tempo", items[0].Media)
}

func TestLoaderLoad(t *testing.T) {
	source := &fakeSource{name: "sheets", tables: map[string]*Table{
		"DATASET SP":     releaseTable(),
		"DATASET BERITA": coverageTable(),
	}}

	data, err := NewLoader(source, "DATASET SP", "DATASET BERITA").Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, data.Releases, 3)
	assert.Len(t, data.Coverage, 2)
	assert.True(t, data.HasLinkColumn)
	assert.Equal(t, 2, data.UndatedReleases)
	assert.Equal(t, 1, data.UndatedCoverage)
}

func TestLoaderFailsWhenSheetUnavailable(t *testing.T) {
	source := &fakeSource{name: "sheets", tables: map[string]*Table{"DATASET SP": releaseTable()}}

	_, err := NewLoader(source, "DATASET SP", "DATASET BERITA").Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSheetNotFound))
}
