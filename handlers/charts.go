package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"press-monitor/charts"
	"press-monitor/report"
)

func (h *Handler) Chart(c *gin.Context) {
	name := strings.TrimSuffix(c.Param("name"), ".png")

	h.withRender(c, func(r *render) {
		var buf bytes.Buffer
		if err := charts.Render(&buf, name, r.Result); err != nil {
			if errors.Is(err, charts.ErrUnknownChart) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			log.WithError(err).WithField("chart", name).Error("chart rendering failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Chart rendering failed"})
			return
		}
		c.Data(http.StatusOK, "image/png", buf.Bytes())
	})
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) Export(c *gin.Context) {
	h.withRender(c, func(r *render) {
		var buf bytes.Buffer
		if err := report.WriteWorkbook(&buf, r.Result); err != nil {
			log.WithError(err).Error("export failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
			return
		}
		filename := "monitoring-" + r.Result.Start.Format("20060102") + "-" + r.Result.End.Format("20060102") + ".xlsx"
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	})
}

func (h *Handler) Health(c *gin.Context) {
	body := gin.H{
		"status":      "healthy",
		"service":     "press-monitor",
		"window_days": h.settings.WindowDays,
		"mode":        h.modeName(),
	}
	if s, ok := h.loader.(interface{ Stats() map[string]interface{} }); ok {
		body["cache"] = s.Stats()
	}
	if h.snapshots != nil {
		snapshots, err := h.snapshots.ListSnapshots(c.Request.Context())
		if err != nil {
			log.WithError(err).Warn("listing snapshots failed")
		}
		list := []gin.H{}
		for _, s := range snapshots {
			list = append(list, gin.H{
				"dataset":    s.Dataset,
				"source":     s.Source,
				"rows":       s.RowCount,
				"fetched_at": s.FetchedAt,
			})
		}
		body["snapshots"] = list
	}
	c.JSON(http.StatusOK, body)
}

// Refresh drops cached sheet tables so the next request refetches them.
func (h *Handler) Refresh(c *gin.Context) {
	if r, ok := h.loader.(interface{ Refresh() }); ok {
		r.Refresh()
		log.Info("dataset cache invalidated")
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) modeName() string {
	if h.settings.AutoMode {
		return "auto"
	}
	return h.settings.Mode.String()
}
