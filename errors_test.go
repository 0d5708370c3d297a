package harvest_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/harvest"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()

		err := harvest.Errorf(harvest.ENOTFOUND, "no comment in listing")

		assert.Equal(t, harvest.ENOTFOUND, harvest.ErrorCode(err))
		assert.Equal(t, "no comment in listing", harvest.ErrorMessage(err))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("fetching: %w", harvest.Errorf(harvest.EUNAVAILABLE, "HTTP 503"))

		assert.Equal(t, harvest.EUNAVAILABLE, harvest.ErrorCode(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")

		assert.Equal(t, harvest.EINTERNAL, harvest.ErrorCode(err))
		assert.Equal(t, "Internal error", harvest.ErrorMessage(err))
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, harvest.ErrorCode(nil))
		assert.Empty(t, harvest.ErrorMessage(nil))
	})
}
