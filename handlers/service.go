package handlers

import (
	"context"
	"time"

	"github.com/apex/log"

	"press-monitor/analytics"
	"press-monitor/dataset"
	"press-monitor/metrics"
	"press-monitor/models"
)

// DatasetLoader provides the decoded release and coverage datasets.
type DatasetLoader interface {
	Load(ctx context.Context) (*dataset.Datasets, error)
}

// Settings are the matching parameters applied to every render.
type Settings struct {
	WindowDays int
	Mode       analytics.MatchMode
	// AutoMode picks precise or loose matching from the coverage schema.
	AutoMode bool
}

// SnapshotLister exposes the stored raw snapshots for the health report.
type SnapshotLister interface {
	ListSnapshots(ctx context.Context) ([]models.SheetSnapshot, error)
}

type Handler struct {
	loader    DatasetLoader
	settings  Settings
	snapshots SnapshotLister
	now       func() time.Time
}

func NewHandler(loader DatasetLoader, settings Settings) *Handler {
	return &Handler{loader: loader, settings: settings, now: time.Now}
}

func (h *Handler) WithSnapshots(snapshots SnapshotLister) *Handler {
	h.snapshots = snapshots
	return h
}

// render is the single pipeline run shared by every view of a request.
type render struct {
	Data   *dataset.Datasets
	Result analytics.Result
}

func (h *Handler) options(data *dataset.Datasets) analytics.MatchOptions {
	mode := h.settings.Mode
	if h.settings.AutoMode {
		mode = analytics.DetectMode(data.HasLinkColumn)
	}
	return analytics.MatchOptions{WindowDays: h.settings.WindowDays, Mode: mode}
}

func (h *Handler) run(ctx context.Context, filters FilterParams) (*render, error) {
	data, err := h.loader.Load(ctx)
	if err != nil {
		metrics.DatasetLoadErrorsTotal.Inc()
		metrics.PipelineRunsTotal.WithLabelValues("unavailable").Inc()
		log.WithError(err).Error("datasets unavailable")
		return nil, err
	}
	recordDataset(data)

	started := time.Now()
	result := analytics.Run(analytics.Input{
		Releases: data.Releases,
		Coverage: data.Coverage,
		Params:   filters.Params(),
		Options:  h.options(data),
	}, h.now())
	metrics.ObserveRun(string(result.Status), started)

	log.WithFields(log.Fields{
		"status":   result.Status,
		"releases": len(result.Filtered),
		"coverage": len(result.Matched),
		"mode":     result.Mode,
	}).Debug("pipeline run")
	return &render{Data: data, Result: result}, nil
}

func recordDataset(data *dataset.Datasets) {
	metrics.DatasetRows.WithLabelValues("releases").Set(float64(len(data.Releases)))
	metrics.DatasetRows.WithLabelValues("coverage").Set(float64(len(data.Coverage)))
	metrics.DatasetUndatedRows.WithLabelValues("releases").Set(float64(data.UndatedReleases))
	metrics.DatasetUndatedRows.WithLabelValues("coverage").Set(float64(data.UndatedCoverage))
	for _, m := range data.Missing {
		metrics.MissingColumnsTotal.WithLabelValues(m.Dataset, m.Field).Inc()
	}
}

func warnings(data *dataset.Datasets) []string {
	out := []string{}
	for _, m := range data.Missing {
		out = append(out, m.String())
	}
	return out
}
