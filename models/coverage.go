package models

import "time"

type CoverageItem struct {
	ID            int        `json:"id"`
	Headline      string     `json:"headline"`
	PublishedAt   *time.Time `json:"published_at"`
	Media         string     `json:"media"`
	LinkedRelease string     `json:"linked_release,omitempty"`
	URL           string     `json:"url"`
}
