package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"podnote"
	"podnote/mock"
	podslog "podnote/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	t.Run("logs successful fetches", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}

		f := podslog.NewLoggingFetcher(next, logger)
		html, err := f.Fetch(context.Background(), "https://overcast.fm/+abc")

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Contains(t, buf.String(), "fetch")
		assert.Contains(t, buf.String(), "https://overcast.fm/+abc")
	})

	t.Run("logs errors and passes them through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", podnote.Errorf(podnote.EUNAVAILABLE, "connection refused")
			},
		}

		f := podslog.NewLoggingFetcher(next, logger)
		_, err := f.Fetch(context.Background(), "https://overcast.fm/+abc")

		require.Error(t, err)
		assert.Equal(t, podnote.EUNAVAILABLE, podnote.ErrorCode(err))
		assert.Contains(t, buf.String(), "connection refused")
	})

	t.Run("close delegates to the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		closed := false
		next := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		f := podslog.NewLoggingFetcher(next, slog.New(slog.DiscardHandler))
		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}
