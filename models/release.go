package models

import "time"

type PressRelease struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	PublishedAt *time.Time `json:"published_at"`
	Speakers    string     `json:"speakers"`
}

type SpeakerMention struct {
	Name         string     `json:"name"`
	ReleaseID    int        `json:"release_id"`
	ReleaseTitle string     `json:"release_title"`
	PublishedAt  *time.Time `json:"published_at"`
}
