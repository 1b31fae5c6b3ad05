package podnote_test

import (
	"errors"
	"fmt"
	"testing"

	"podnote"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code for application errors", func(t *testing.T) {
		t.Parallel()

		err := podnote.Errorf(podnote.EUNSUPPORTED, "service not supported")

		assert.Equal(t, podnote.EUNSUPPORTED, podnote.ErrorCode(err))
	})

	t.Run("unwraps wrapped application errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("fetching: %w", podnote.Errorf(podnote.EUNAVAILABLE, "connection refused"))

		assert.Equal(t, podnote.EUNAVAILABLE, podnote.ErrorCode(err))
	})

	t.Run("internal for non-application errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, podnote.EINTERNAL, podnote.ErrorCode(errors.New("boom")))
	})

	t.Run("empty for nil", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, podnote.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message for application errors", func(t *testing.T) {
		t.Parallel()

		err := podnote.Errorf(podnote.ENOTFOUND, "no active editor")

		assert.Equal(t, "no active editor", podnote.ErrorMessage(err))
	})

	t.Run("generic message for non-application errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "An internal error has occurred.", podnote.ErrorMessage(errors.New("boom")))
	})
}
