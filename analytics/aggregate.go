package analytics

import (
	"sort"
	"strings"

	"press-monitor/models"
)

type Aggregation struct {
	PerRelease []models.AggregateRow `json:"per_release"`
	Summary    models.SummaryStats   `json:"summary"`
}

// Aggregate rolls matched coverage up per release, in release input order,
// and computes the summary statistics over those rows. Releases are looked
// up in matches by ID, so IDs must be unique.
func Aggregate(releases []models.PressRelease, matches Matches) Aggregation {
	rows := make([]models.AggregateRow, 0, len(releases))
	for _, release := range releases {
		items := matches[release.ID]
		rows = append(rows, models.AggregateRow{
			ReleaseID:            release.ID,
			ReleaseTitle:         release.Title,
			ReleaseDate:          release.PublishedAt,
			MatchedCoverageCount: len(items),
			UniqueMediaCount:     countUniqueMedia(items),
		})
	}
	return Aggregation{PerRelease: rows, Summary: Summarize(rows)}
}

func countUniqueMedia(items []models.CoverageItem) int {
	media := make(map[string]struct{}, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Media)
		if name == "" {
			continue
		}
		media[name] = struct{}{}
	}
	return len(media)
}

// Summarize derives SummaryStats from per-release rows. Ties for the maximum
// go to the first row encountered.
func Summarize(rows []models.AggregateRow) models.SummaryStats {
	stats := models.SummaryStats{TotalReleases: len(rows)}

	var coverageSum, mediaSum int
	for i := range rows {
		row := rows[i]
		if row.MatchedCoverageCount == 0 {
			continue
		}
		stats.TotalReleasesWithCoverage++
		coverageSum += row.MatchedCoverageCount
		mediaSum += row.UniqueMediaCount

		if stats.ReleaseWithMaxCoverage == nil || row.MatchedCoverageCount > stats.ReleaseWithMaxCoverage.MatchedCoverageCount {
			best := row
			stats.ReleaseWithMaxCoverage = &best
		}
		if stats.ReleaseWithMaxMediaSpread == nil || row.UniqueMediaCount > stats.ReleaseWithMaxMediaSpread.UniqueMediaCount {
			best := row
			stats.ReleaseWithMaxMediaSpread = &best
		}
	}

	if stats.TotalReleases > 0 {
		stats.PercentageWithCoverage = float64(stats.TotalReleasesWithCoverage) / float64(stats.TotalReleases) * 100
	}
	if stats.TotalReleasesWithCoverage > 0 {
		stats.MeanCoveragePerReleaseWithCoverage = float64(coverageSum) / float64(stats.TotalReleasesWithCoverage)
		stats.MeanUniqueMediaPerReleaseWithCoverage = float64(mediaSum) / float64(stats.TotalReleasesWithCoverage)
	}
	return stats
}

func sortByCoverage(rows []models.AggregateRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].MatchedCoverageCount > rows[j].MatchedCoverageCount
	})
}
