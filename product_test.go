package asrockind_test

import (
	"testing"

	"github.com/fwojciec/asrockind"
	"github.com/stretchr/testify/assert"
)

func TestSpecKey(t *testing.T) {
	t.Parallel()

	t.Run("prefixes category when present", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "System - CPU", asrockind.SpecKey("System", "CPU"))
	})

	t.Run("returns bare field without category", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "CPU", asrockind.SpecKey("", "CPU"))
	})
}

func TestNameFromURL(t *testing.T) {
	t.Parallel()

	t.Run("returns last path segment", func(t *testing.T) {
		t.Parallel()
		name := asrockind.NameFromURL("https://www.asrockind.com/en-gb/SBC-230")
		assert.Equal(t, "SBC-230", name)
	})

	t.Run("ignores trailing slash", func(t *testing.T) {
		t.Parallel()
		name := asrockind.NameFromURL("https://www.asrockind.com/en-gb/SBC-230/")
		assert.Equal(t, "SBC-230", name)
	})
}

func TestNewSearchResult(t *testing.T) {
	t.Parallel()

	t.Run("total equals product count", func(t *testing.T) {
		t.Parallel()
		res := asrockind.NewSearchResult([]asrockind.Product{{Name: "a"}, {Name: "b"}})
		assert.Equal(t, 2, res.TotalResults)
		assert.Len(t, res.Products, 2)
	})

	t.Run("normalizes nil to empty slice", func(t *testing.T) {
		t.Parallel()
		res := asrockind.NewSearchResult(nil)
		assert.NotNil(t, res.Products)
		assert.Equal(t, 0, res.TotalResults)
	})
}

func TestValidateQuery(t *testing.T) {
	t.Parallel()

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()
		q, err := asrockind.ValidateQuery("  SBC-230  ")
		assert.NoError(t, err)
		assert.Equal(t, "SBC-230", q)
	})

	t.Run("rejects empty query", func(t *testing.T) {
		t.Parallel()
		_, err := asrockind.ValidateQuery("   ")
		assert.Equal(t, asrockind.EINVALID, asrockind.ErrorCode(err))
	})

	t.Run("rejects single character query", func(t *testing.T) {
		t.Parallel()
		_, err := asrockind.ValidateQuery(" x ")
		assert.Equal(t, asrockind.EINVALID, asrockind.ErrorCode(err))
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		t.Parallel()
		// One multi-byte character is still one character.
		_, err := asrockind.ValidateQuery("日")
		assert.Equal(t, asrockind.EINVALID, asrockind.ErrorCode(err))

		q, err := asrockind.ValidateQuery("日本")
		assert.NoError(t, err)
		assert.Equal(t, "日本", q)
	})

	t.Run("accepts two character query", func(t *testing.T) {
		t.Parallel()
		q, err := asrockind.ValidateQuery("x7")
		assert.NoError(t, err)
		assert.Equal(t, "x7", q)
	})
}
