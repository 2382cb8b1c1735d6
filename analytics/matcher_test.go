package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"press-monitor/models"
)

func TestMatchPreciseRequiresLinkedTitle(t *testing.T) {
	releases := []models.PressRelease{release(1, "A", day(t, "2024-01-01"))}
	coverage := []models.CoverageItem{
		item(10, "Kompas", day(t, "2024-01-03"), "A"),
		item(11, "Tempo", day(t, "2024-01-03"), "B"),
	}

	got := Match(releases, coverage, MatchOptions{WindowDays: 3, Mode: MatchPrecise})
	assert.Equal(t, []int{10}, ids(got[1]))
}

func TestMatchPreciseEmptyLinkDoesNotMatch(t *testing.T) {
	releases := []models.PressRelease{release(1, "A", day(t, "2024-01-01"))}
	coverage := []models.CoverageItem{item(10, "Kompas", day(t, "2024-01-02"), "")}

	got := Match(releases, coverage, MatchOptions{WindowDays: 3, Mode: MatchPrecise})
	assert.Empty(t, got[1])
}

func TestMatchLooseSharesItemsAcrossReleases(t *testing.T) {
	releases := []models.PressRelease{
		release(1, "A", day(t, "2024-01-01")),
		release(2, "B", day(t, "2024-01-02")),
	}
	coverage := []models.CoverageItem{item(10, "Kompas", day(t, "2024-01-03"), "")}

	got := Match(releases, coverage, MatchOptions{WindowDays: 3, Mode: MatchLoose})
	assert.Equal(t, []int{10}, ids(got[1]))
	assert.Equal(t, []int{10}, ids(got[2]))
}

func TestMatchWindowBoundsAreInclusive(t *testing.T) {
	releases := []models.PressRelease{release(1, "A", day(t, "2024-01-10"))}
	coverage := []models.CoverageItem{
		item(1, "m", day(t, "2024-01-09"), ""),
		item(2, "m", day(t, "2024-01-10"), ""),
		item(3, "m", day(t, "2024-01-17"), ""),
		item(4, "m", day(t, "2024-01-18"), ""),
		item(5, "m", nil, ""),
	}

	got := Match(releases, coverage, MatchOptions{WindowDays: 7, Mode: MatchLoose})
	assert.Equal(t, []int{2, 3}, ids(got[1]))
}

func TestMatchUndatedReleaseGetsNothing(t *testing.T) {
	releases := []models.PressRelease{release(1, "A", nil)}
	coverage := []models.CoverageItem{item(10, "Kompas", day(t, "2024-01-03"), "A")}

	got := Match(releases, coverage, MatchOptions{WindowDays: 3, Mode: MatchLoose})
	_, ok := got[1]
	assert.False(t, ok)

	agg := Aggregate(releases, got)
	require.Len(t, agg.PerRelease, 1)
	assert.Equal(t, 0, agg.PerRelease[0].MatchedCoverageCount)
	assert.Equal(t, 1, agg.Summary.TotalReleases)
}

func TestMatchDeduplicatesAndKeepsInputOrder(t *testing.T) {
	releases := []models.PressRelease{release(1, "A", day(t, "2024-01-01"))}
	coverage := []models.CoverageItem{
		item(3, "m", day(t, "2024-01-03"), "A"),
		item(1, "m", day(t, "2024-01-01"), "A"),
		item(3, "m", day(t, "2024-01-02"), "A"),
		item(2, "m", day(t, "2024-01-02"), "A"),
	}

	got := Match(releases, coverage, MatchOptions{WindowDays: 3, Mode: MatchPrecise})
	assert.Equal(t, []int{1, 3, 2}, ids(got[1]))
}

func TestMatchedCoverageUnion(t *testing.T) {
	coverage := []models.CoverageItem{
		item(1, "a", day(t, "2024-01-01"), ""),
		item(2, "b", day(t, "2024-01-02"), ""),
		item(3, "c", day(t, "2024-02-01"), ""),
	}
	matches := Matches{
		1: {coverage[1], coverage[0]},
		2: {coverage[1]},
	}

	assert.Equal(t, []int{1, 2}, ids(MatchedCoverage(matches, coverage)))
}

func TestParseMatchMode(t *testing.T) {
	mode, auto, err := ParseMatchMode("auto")
	require.NoError(t, err)
	assert.True(t, auto)

	mode, auto, err = ParseMatchMode("Loose")
	require.NoError(t, err)
	assert.False(t, auto)
	assert.Equal(t, MatchLoose, mode)

	_, _, err = ParseMatchMode("fuzzy")
	assert.Error(t, err)

	assert.Equal(t, MatchPrecise, DetectMode(true))
	assert.Equal(t, MatchLoose, DetectMode(false))
	assert.Equal(t, "precise", MatchPrecise.String())
}

func TestMatchKeepsItemsWithoutIDApart(t *testing.T) {
	releases := []models.PressRelease{release(1, "A", day(t, "2024-01-01"))}
	coverage := []models.CoverageItem{
		item(0, "Kompas", day(t, "2024-01-01"), "A"),
		item(0, "Tempo", day(t, "2024-01-02"), "A"),
	}

	got := Match(releases, coverage, MatchOptions{WindowDays: 3, Mode: MatchPrecise})
	require.Len(t, got[1], 2)

	agg := Aggregate(releases, got)
	assert.Equal(t, 2, agg.PerRelease[0].MatchedCoverageCount)
	assert.Equal(t, 2, agg.PerRelease[0].UniqueMediaCount)
}
