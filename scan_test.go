package podnote_test

import (
	"testing"

	"podnote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanLinks(t *testing.T) {
	t.Parallel()

	t.Run("markdown link then bare URL", func(t *testing.T) {
		t.Parallel()

		got := podnote.ScanLinks("Check [My Ep](https://overcast.fm/abc) and https://overcast.fm/xyz")

		require.Len(t, got, 2)
		assert.Equal(t, podnote.LinkCandidate{
			URL:   "https://overcast.fm/abc",
			Alias: "|My Ep",
			Span:  "[My Ep](https://overcast.fm/abc)",
		}, got[0])
		assert.Equal(t, podnote.LinkCandidate{
			URL:   "https://overcast.fm/xyz",
			Alias: "",
			Span:  "https://overcast.fm/xyz",
		}, got[1])
	})

	t.Run("markdown links come before bare URLs regardless of position", func(t *testing.T) {
		t.Parallel()

		got := podnote.ScanLinks("https://overcast.fm/first then [Ep](https://pca.st/second)")

		require.Len(t, got, 2)
		assert.Equal(t, "https://pca.st/second", got[0].URL)
		assert.Equal(t, "https://overcast.fm/first", got[1].URL)
	})

	t.Run("bare URLs split on newlines", func(t *testing.T) {
		t.Parallel()

		got := podnote.ScanLinks("https://a.fm/1\nhttps://a.fm/2\r\nhttps://a.fm/3")

		require.Len(t, got, 3)
		assert.Equal(t, "https://a.fm/1", got[0].URL)
		assert.Equal(t, "https://a.fm/2", got[1].URL)
		assert.Equal(t, "https://a.fm/3", got[2].URL)
	})

	t.Run("ignores http and non-URL tokens", func(t *testing.T) {
		t.Parallel()

		got := podnote.ScanLinks("http://insecure.fm/1 plain words here")

		assert.Empty(t, got)
	})

	t.Run("empty alias markdown link", func(t *testing.T) {
		t.Parallel()

		got := podnote.ScanLinks("[](https://overcast.fm/abc)")

		require.Len(t, got, 1)
		assert.Equal(t, "|", got[0].Alias)
		assert.Equal(t, "[](https://overcast.fm/abc)", got[0].Span)
	})

	t.Run("empty text yields nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, podnote.ScanLinks(""))
	})
}
