package asrockind_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/asrockind"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code from application error", func(t *testing.T) {
		t.Parallel()
		err := asrockind.Errorf(asrockind.EINVALID, "bad input")
		assert.Equal(t, asrockind.EINVALID, asrockind.ErrorCode(err))
	})

	t.Run("returns code from wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("context: %w", asrockind.Errorf(asrockind.EUNAVAILABLE, "browser gone"))
		assert.Equal(t, asrockind.EUNAVAILABLE, asrockind.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, asrockind.EINTERNAL, asrockind.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", asrockind.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message from application error", func(t *testing.T) {
		t.Parallel()
		err := asrockind.Errorf(asrockind.EINVALID, "query too short: %d", 1)
		assert.Equal(t, "query too short: 1", asrockind.ErrorMessage(err))
	})

	t.Run("masks non-application errors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error.", asrockind.ErrorMessage(errors.New("sensitive detail")))
	})
}
