package podnote_test

import (
	"testing"
	"time"

	"podnote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEpisode(t *testing.T) {
	t.Parallel()

	ep := podnote.NewEpisode("https://overcast.fm/+abc")

	assert.Equal(t, podnote.TitleNotFound, ep.Title)
	assert.Equal(t, podnote.DescriptionNotFound, ep.Description)
	assert.Empty(t, ep.ImageURL)
	assert.Empty(t, ep.ShowNotes)
	assert.Empty(t, ep.EpisodeDate)
	assert.Equal(t, "https://overcast.fm/+abc", ep.SourceURL)

	capturedAt, err := time.Parse("2006-01-02", ep.CapturedDate)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), capturedAt, 48*time.Hour)
}

func TestSecureImageURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"rewrites http to https", "http://x.com/a.png", "https://x.com/a.png"},
		{"https unchanged", "https://x.com/a.png", "https://x.com/a.png"},
		{"empty unchanged", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, podnote.SecureImageURL(tt.in))
		})
	}
}
