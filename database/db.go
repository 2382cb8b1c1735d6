package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"press-monitor/models"
)

// ErrNoSnapshot is returned when a dataset has never been fetched successfully.
var ErrNoSnapshot = errors.New("no snapshot stored")

// Store persists raw sheet snapshots in sqlite. Derived tables are never
// written here.
type Store struct {
	db *gorm.DB
}

func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open snapshot db %s: %w", path, err)
	}

	if err := db.AutoMigrate(&models.SheetSnapshot{}); err != nil {
		return nil, fmt.Errorf("migrate snapshot db: %w", err)
	}

	log.WithField("path", path).Info("snapshot database ready")
	return &Store{db: db}, nil
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) LoadSnapshot(ctx context.Context, dataset string) (*models.SheetSnapshot, error) {
	var snapshot models.SheetSnapshot
	err := s.db.WithContext(ctx).Where("dataset = ?", dataset).First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%q: %w", dataset, ErrNoSnapshot)
	}
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// SaveSnapshot replaces the stored snapshot of the dataset.
func (s *Store) SaveSnapshot(ctx context.Context, snapshot *models.SheetSnapshot) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "dataset"}},
		DoUpdates: clause.AssignmentColumns([]string{"source", "header_json", "rows_json", "row_count", "fetched_at"}),
	}).Create(snapshot).Error
}

func (s *Store) ListSnapshots(ctx context.Context) ([]models.SheetSnapshot, error) {
	var snapshots []models.SheetSnapshot
	err := s.db.WithContext(ctx).
		Select("id", "dataset", "source", "row_count", "fetched_at").
		Order("dataset").
		Find(&snapshots).Error
	return snapshots, err
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
