package models

import "time"

type AggregateRow struct {
	ReleaseID            int        `json:"release_id"`
	ReleaseTitle         string     `json:"release_title"`
	ReleaseDate          *time.Time `json:"release_date"`
	MatchedCoverageCount int        `json:"matched_coverage_count"`
	UniqueMediaCount     int        `json:"unique_media_count"`
}

type SummaryStats struct {
	TotalReleases                         int           `json:"total_releases"`
	TotalReleasesWithCoverage             int           `json:"total_releases_with_coverage"`
	PercentageWithCoverage                float64       `json:"percentage_with_coverage"`
	MeanCoveragePerReleaseWithCoverage    float64       `json:"mean_coverage_per_release_with_coverage"`
	MeanUniqueMediaPerReleaseWithCoverage float64       `json:"mean_unique_media_per_release_with_coverage"`
	ReleaseWithMaxCoverage                *AggregateRow `json:"release_with_max_coverage"`
	ReleaseWithMaxMediaSpread             *AggregateRow `json:"release_with_max_media_spread"`
}

type WeeklySpeakerCount struct {
	Speaker   string    `json:"speaker"`
	WeekStart time.Time `json:"week_start"`
	WeekEnd   time.Time `json:"week_end"`
	Label     string    `json:"label"`
	Count     int       `json:"count"`
}

type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DailyCount struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

type Flow struct {
	Release string `json:"release"`
	Media   string `json:"media"`
	Count   int    `json:"count"`
}

type Overview struct {
	Releases int `json:"releases"`
	Coverage int `json:"coverage"`
	Media    int `json:"media"`
	Speakers int `json:"speakers"`
}
