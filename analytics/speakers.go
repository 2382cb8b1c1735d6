package analytics

import (
	"strings"

	"press-monitor/models"
)

const (
	speakerSeparator  = ";"
	placeholderMarker = "##"
)

// CleanSpeakerName keeps the text after the first comma of a token, or the
// whole trimmed token when there is no comma. "Budi, Santoso" yields "Santoso".
func CleanSpeakerName(token string) string {
	token = strings.TrimSpace(token)
	if _, after, found := strings.Cut(token, ","); found {
		return strings.TrimSpace(after)
	}
	return token
}

// ExplodeSpeakers turns the semicolon separated speaker field of a release
// into one mention per cleaned speaker name.
func ExplodeSpeakers(release models.PressRelease) []models.SpeakerMention {
	mentions := []models.SpeakerMention{}
	if strings.TrimSpace(release.Speakers) == "" {
		return mentions
	}

	for _, token := range strings.Split(release.Speakers, speakerSeparator) {
		token = strings.TrimSpace(token)
		if token == "" || strings.Contains(token, placeholderMarker) {
			continue
		}
		name := CleanSpeakerName(token)
		if name == "" {
			continue
		}
		mentions = append(mentions, models.SpeakerMention{
			Name:         name,
			ReleaseID:    release.ID,
			ReleaseTitle: release.Title,
			PublishedAt:  release.PublishedAt,
		})
	}
	return mentions
}

func ExplodeAll(releases []models.PressRelease) []models.SpeakerMention {
	mentions := []models.SpeakerMention{}
	for _, release := range releases {
		mentions = append(mentions, ExplodeSpeakers(release)...)
	}
	return mentions
}
