package handlers

import (
	"embed"
	"html/template"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"press-monitor/analytics"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"date": func(d *time.Time) string {
		if d == nil {
			return "-"
		}
		return analytics.FormatDate(d)
	},
	"day": func(t time.Time) string {
		return t.Format(analytics.DateLayout)
	},
	"percent": func(v float64) string {
		return formatFloat(v, 1) + "%"
	},
	"decimal": func(v float64) string {
		return formatFloat(v, 2)
	},
}

func Templates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html"))
}

// NewRouter wires every dashboard, API, chart and export route.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
		AllowOrigins: []string{"*"},
		MaxAge:       12 * time.Hour,
	}))
	r.SetHTMLTemplate(Templates())

	r.GET("/", func(c *gin.Context) {
		c.Redirect(302, "/dashboard")
	})
	r.GET("/dashboard", h.Dashboard)
	r.GET("/charts/:name", h.Chart)
	r.GET("/export.xlsx", h.Export)
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/releases", h.GetReleases)
		api.GET("/coverage", h.GetCoverage)
		api.GET("/aggregates", h.GetAggregates)
		api.GET("/summary", h.GetSummary)
		api.GET("/speakers/weekly", h.GetWeeklySpeakers)
		api.GET("/speakers/top", h.GetTopSpeakers)
		api.GET("/media", h.GetMedia)
		api.GET("/timeline", h.GetTimeline)
		api.GET("/flows", h.GetFlows)
		api.GET("/titles", h.GetTitles)
		api.POST("/refresh", h.Refresh)
	}
	return r
}
