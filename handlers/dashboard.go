package handlers

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"press-monitor/analytics"
	"press-monitor/charts"
	"press-monitor/models"
	"press-monitor/report"
)

type DashboardData struct {
	Filters         FilterParams
	Start           string
	End             string
	MinDate         string
	MaxDate         string
	TitleOptions    []TitleOption
	Result          analytics.Result
	Stats           models.SummaryStats
	TopReleases     []models.AggregateRow
	Narrative       template.HTML
	Charts          []ChartLink
	Warnings        []string
	UndatedReleases int
	UndatedCoverage int
	Empty           bool
	ExportURL       string
}

type TitleOption struct {
	Title    string
	Selected bool
}

type ChartLink struct {
	Name string
	URL  string
}

func (h *Handler) Dashboard(c *gin.Context) {
	filters, err := parseFilters(c)
	if err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{"error": err.Error()})
		return
	}

	r, err := h.run(c.Request.Context(), filters)
	if err != nil {
		c.HTML(http.StatusServiceUnavailable, "error.html", gin.H{"error": "Data siaran pers atau berita tidak dapat dimuat: " + err.Error()})
		return
	}

	narrative, err := report.NarrativeHTML(r.Result)
	if err != nil {
		log.WithError(err).Warn("narrative not rendered")
	}

	query := c.Request.URL.RawQuery
	data := DashboardData{
		Filters:         filters,
		Start:           r.Result.Start.Format(analytics.DateLayout),
		End:             r.Result.End.Format(analytics.DateLayout),
		TitleOptions:    titleOptions(r, filters.Titles),
		Result:          r.Result,
		Stats:           r.Result.Aggregation.Summary,
		TopReleases:     analytics.TopReleases(r.Result.Aggregation.PerRelease, analytics.TopReleaseChartSize),
		Narrative:       narrative,
		Charts:          chartLinks(query),
		Warnings:        warnings(r.Data),
		UndatedReleases: r.Data.UndatedReleases,
		UndatedCoverage: r.Data.UndatedCoverage,
		Empty:           r.Result.Status == analytics.StatusEmpty,
		ExportURL:       (&url.URL{Path: "/export.xlsx", RawQuery: query}).String(),
	}
	if min, max, ok := analytics.DateBounds(r.Data.Releases); ok {
		data.MinDate, data.MaxDate = min.Format(analytics.DateLayout), max.Format(analytics.DateLayout)
	}

	c.HTML(http.StatusOK, "dashboard.html", data)
}

// titleOptions lists the titles of releases inside the selected date range,
// the same options the title selector offers.
func titleOptions(r *render, selected []string) []TitleOption {
	chosen := make(map[string]bool, len(selected))
	for _, title := range selected {
		chosen[title] = true
	}

	inRange := analytics.FilterReleases(r.Data.Releases, r.Result.Start, r.Result.End, nil)
	options := []TitleOption{}
	for _, title := range analytics.TitleOptions(inRange) {
		options = append(options, TitleOption{Title: title, Selected: chosen[title]})
	}
	return options
}

func chartLinks(rawQuery string) []ChartLink {
	links := []ChartLink{}
	for _, name := range charts.Names() {
		u := url.URL{Path: "/charts/" + name + ".png", RawQuery: rawQuery}
		links = append(links, ChartLink{Name: name, URL: u.String()})
	}
	return links
}
