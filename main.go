package main

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"press-monitor/analytics"
	"press-monitor/config"
	"press-monitor/database"
	"press-monitor/dataset"
	"press-monitor/handlers"
	"press-monitor/metrics"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info(".env file not found, using system environment variables")
	}

	cfg := config.Load()

	log.SetHandler(text.New(os.Stderr))
	log.SetLevel(log.MustParseLevel(cfg.LogLevel))

	store, err := database.Open(cfg.SnapshotDB)
	if err != nil {
		log.WithError(err).Fatal("failed to open snapshot database")
	}
	defer store.Close()

	// Remote sheet first, then the local workbook, then the last snapshot.
	var sources []dataset.Source
	if cfg.SpreadsheetID != "" {
		sources = append(sources, dataset.NewSheetsSource(cfg.SpreadsheetID, cfg.FetchTimeout, uint(cfg.FetchRetries)))
	}
	if cfg.XLSXPath != "" {
		sources = append(sources, dataset.NewXLSXSource(cfg.XLSXPath))
	}
	sources = append(sources, dataset.NewSnapshotSource(store))
	if len(sources) == 1 {
		log.Warn("neither SPREADSHEET_ID nor XLSX_PATH is set, serving stored snapshots only")
	}

	cache := dataset.NewCache(dataset.NewChain(store, sources...), cfg.CacheTTL)
	loader := dataset.NewLoader(cache, cfg.ReleaseSheet, cfg.CoverageSheet)

	mode, auto, err := analytics.ParseMatchMode(cfg.MatchMode)
	if err != nil {
		log.WithError(err).Fatal("invalid MATCH_MODE")
	}
	if cfg.MatchWindowDays < 0 {
		log.WithField("window_days", cfg.MatchWindowDays).Fatal("MATCH_WINDOW_DAYS must not be negative")
	}

	metrics.Register()

	gin.SetMode(cfg.GinMode)
	h := handlers.NewHandler(loader, handlers.Settings{
		WindowDays: cfg.MatchWindowDays,
		Mode:       mode,
		AutoMode:   auto,
	}).WithSnapshots(store)
	r := handlers.NewRouter(h)

	log.WithFields(log.Fields{
		"addr":        cfg.Addr(),
		"window_days": cfg.MatchWindowDays,
		"mode":        cfg.MatchMode,
		"cache_ttl":   cfg.CacheTTL,
	}).Info("starting press monitoring dashboard")

	if err := r.Run(cfg.Addr()); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
