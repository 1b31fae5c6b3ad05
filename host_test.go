package podnote_test

import (
	"testing"

	"podnote"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want podnote.Host
	}{
		{"https://open.spotify.com/episode/abc123", podnote.HostSpotify},
		{"https://podcasts.apple.com/us/podcast/ep/id123?i=456", podnote.HostApple},
		{"https://podcasts.google.com/feed/xyz/episode/abc", podnote.HostGoogle},
		{"https://pca.st/episode/deadbeef", podnote.HostPocketCasts},
		{"https://www.airr.io/episode/abc", podnote.HostAirr},
		{"https://overcast.fm/+AbCdEf", podnote.HostOvercast},
		{"https://castbox.fm/episode/ep-id123", podnote.HostCastbox},
		{"https://castro.fm/episode/abc", podnote.HostCastro},
		{"https://www.youtube.com/watch?v=abc", podnote.HostYouTube},
		{"https://podcastaddict.com/episode/123", podnote.HostPodcastAddict},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, podnote.Classify(tt.url))
		})
	}

	t.Run("unknown for unrecognized URL", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, podnote.HostUnknown, podnote.Classify("https://example.com/episode/1"))
	})

	t.Run("matching is case-sensitive", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, podnote.HostUnknown, podnote.Classify("https://Overcast.FM/+abc"))
	})
}

func TestSupported(t *testing.T) {
	t.Parallel()

	assert.True(t, podnote.Supported("https://overcast.fm/+abc"))
	assert.False(t, podnote.Supported("https://example.com/feed"))
	assert.False(t, podnote.Supported(""))
}
