package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"press-monitor/analytics"
	"press-monitor/models"
)

// withRender parses filters, runs the pipeline and hands the result to fn, or
// writes the JSON error for bad filters and unavailable data.
func (h *Handler) withRender(c *gin.Context, fn func(*render)) {
	filters, err := parseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r, err := h.run(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	fn(r)
}

func envelope(r *render, key string, value interface{}) gin.H {
	return gin.H{
		"status":   r.Result.Status,
		"start":    r.Result.Start.Format(analytics.DateLayout),
		"end":      r.Result.End.Format(analytics.DateLayout),
		"warnings": warnings(r.Data),
		key:        value,
	}
}

func (h *Handler) GetReleases(c *gin.Context) {
	h.withRender(c, func(r *render) {
		c.JSON(http.StatusOK, envelope(r, "releases", r.Result.Filtered))
	})
}

func (h *Handler) GetCoverage(c *gin.Context) {
	h.withRender(c, func(r *render) {
		perRelease := make([]gin.H, 0, len(r.Result.Filtered))
		for _, release := range r.Result.Filtered {
			items := r.Result.Matches[release.ID]
			if items == nil {
				items = []models.CoverageItem{}
			}
			perRelease = append(perRelease, gin.H{
				"release_id":    release.ID,
				"release_title": release.Title,
				"coverage":      items,
			})
		}
		body := envelope(r, "coverage", r.Result.Matched)
		body["per_release"] = perRelease
		body["mode"] = r.Result.Mode
		body["window_days"] = r.Result.WindowDays
		c.JSON(http.StatusOK, body)
	})
}

func (h *Handler) GetAggregates(c *gin.Context) {
	h.withRender(c, func(r *render) {
		c.JSON(http.StatusOK, envelope(r, "aggregates", r.Result.Aggregation.PerRelease))
	})
}

func (h *Handler) GetSummary(c *gin.Context) {
	h.withRender(c, func(r *render) {
		body := envelope(r, "summary", r.Result.Aggregation.Summary)
		body["overview"] = r.Result.Overview
		body["undated_releases"] = r.Data.UndatedReleases
		body["undated_coverage"] = r.Data.UndatedCoverage
		body["mode"] = r.Result.Mode
		body["window_days"] = r.Result.WindowDays
		c.JSON(http.StatusOK, body)
	})
}

func (h *Handler) GetWeeklySpeakers(c *gin.Context) {
	h.withRender(c, func(r *render) {
		c.JSON(http.StatusOK, envelope(r, "weekly", r.Result.WeeklySpeakers))
	})
}

func (h *Handler) GetTopSpeakers(c *gin.Context) {
	h.withRender(c, func(r *render) {
		c.JSON(http.StatusOK, envelope(r, "speakers", r.Result.SpeakerTotals))
	})
}

func (h *Handler) GetMedia(c *gin.Context) {
	h.withRender(c, func(r *render) {
		body := envelope(r, "top_media", r.Result.TopMedia)
		body["distribution"] = r.Result.MediaShare
		c.JSON(http.StatusOK, body)
	})
}

func (h *Handler) GetTimeline(c *gin.Context) {
	h.withRender(c, func(r *render) {
		c.JSON(http.StatusOK, envelope(r, "timeline", r.Result.Timeline))
	})
}

func (h *Handler) GetFlows(c *gin.Context) {
	h.withRender(c, func(r *render) {
		c.JSON(http.StatusOK, envelope(r, "flows", r.Result.Flows))
	})
}

// GetTitles lists title selector options for the selected date range.
func (h *Handler) GetTitles(c *gin.Context) {
	h.withRender(c, func(r *render) {
		inRange := analytics.FilterReleases(r.Data.Releases, r.Result.Start, r.Result.End, nil)
		c.JSON(http.StatusOK, envelope(r, "titles", analytics.TitleOptions(inRange)))
	})
}
