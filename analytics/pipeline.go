package analytics

import (
	"time"

	"press-monitor/models"
)

const (
	TopMediaLimit       = 10
	TopSpeakerLimit     = 5
	FlowReleaseLimit    = 5
	FlowMediaLimit      = 8
	TopReleaseChartSize = 10
)

type ResultStatus string

const (
	StatusOK    ResultStatus = "ok"
	StatusEmpty ResultStatus = "empty"
)

// Params are the user-selected filters of one render. Nil bounds default to
// the release date range of the dataset.
type Params struct {
	Start  *time.Time
	End    *time.Time
	Titles []string
}

type Input struct {
	Releases []models.PressRelease
	Coverage []models.CoverageItem
	Params   Params
	Options  MatchOptions
}

type Result struct {
	Status         ResultStatus                `json:"status"`
	Start          time.Time                   `json:"start"`
	End            time.Time                   `json:"end"`
	Mode           string                      `json:"mode"`
	WindowDays     int                         `json:"window_days"`
	Filtered       []models.PressRelease       `json:"releases"`
	Matches        Matches                     `json:"-"`
	Matched        []models.CoverageItem       `json:"coverage"`
	Aggregation    Aggregation                 `json:"aggregation"`
	Mentions       []models.SpeakerMention     `json:"-"`
	WeeklySpeakers []models.WeeklySpeakerCount `json:"weekly_speakers"`
	SpeakerTotals  []models.NamedCount         `json:"speaker_totals"`
	TopMedia       []models.NamedCount         `json:"top_media"`
	MediaShare     []models.NamedCount         `json:"media_share"`
	Timeline       []models.DailyCount         `json:"timeline"`
	Flows          []models.Flow               `json:"flows"`
	Overview       models.Overview             `json:"overview"`
}

// Run executes filter, speaker explosion, matching and aggregation once for a
// render. Every consuming view reads from the returned Result.
func Run(in Input, now time.Time) Result {
	start, end := resolveBounds(in.Releases, in.Params, now)

	filtered := FilterReleases(in.Releases, start, end, in.Params.Titles)
	matches := Match(filtered, in.Coverage, in.Options)
	matched := MatchedCoverage(matches, in.Coverage)
	mentions := ExplodeAll(filtered)

	result := Result{
		Status:         StatusOK,
		Start:          start,
		End:            end,
		Mode:           in.Options.Mode.String(),
		WindowDays:     in.Options.WindowDays,
		Filtered:       filtered,
		Matches:        matches,
		Matched:        matched,
		Aggregation:    Aggregate(filtered, matches),
		Mentions:       mentions,
		WeeklySpeakers: WeeklySpeakerCounts(mentions),
		SpeakerTotals:  SpeakerTotals(mentions),
		TopMedia:       TopMedia(matched, TopMediaLimit),
		MediaShare:     MediaDistribution(matched, TopMediaLimit),
		Timeline:       DailyTimeline(matched),
		Flows:          ReleaseFlows(filtered, matches, FlowReleaseLimit, FlowMediaLimit),
		Overview:       ComputeOverview(filtered, matched, mentions),
	}
	if len(filtered) == 0 {
		result.Status = StatusEmpty
	}
	return result
}

func resolveBounds(releases []models.PressRelease, params Params, now time.Time) (time.Time, time.Time) {
	min, max, ok := DateBounds(releases)
	if !ok {
		min, max = NormalizeDate(now), NormalizeDate(now)
	}
	if params.Start != nil {
		min = NormalizeDate(*params.Start)
	}
	if params.End != nil {
		max = NormalizeDate(*params.End)
	}
	return min, max
}

// TopReleases returns the per-release rows with the most coverage first,
// keeping at most n.
func TopReleases(rows []models.AggregateRow, n int) []models.AggregateRow {
	sorted := append([]models.AggregateRow{}, rows...)
	sortByCoverage(sorted)
	return head(sorted, n)
}
