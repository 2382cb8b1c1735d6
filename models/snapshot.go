package models

import "time"

type SheetSnapshot struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Dataset    string    `json:"dataset" gorm:"uniqueIndex"`
	Source     string    `json:"source"`
	HeaderJSON string    `json:"header_json"`
	RowsJSON   string    `json:"rows_json"`
	RowCount   int       `json:"row_count"`
	FetchedAt  time.Time `json:"fetched_at"`
}
