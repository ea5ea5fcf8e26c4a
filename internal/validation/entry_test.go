package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEntryText(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateEntryText("grateful for rain"))
	assert.NoError(t, ValidateEntryText("x"))

	assert.ErrorIs(t, ValidateEntryText(""), ErrEmptyText)
	assert.ErrorIs(t, ValidateEntryText("   \n\t"), ErrEmptyText)
}

func TestValidateEntryText_NoLengthCap(t *testing.T) {
	t.Parallel()

	long := make([]byte, 100_000)
	for i := range long {
		long[i] = 'a'
	}
	assert.NoError(t, ValidateEntryText(string(long)))
}

func TestParseFeedDate(t *testing.T) {
	t.Parallel()

	t.Run("empty means today", func(t *testing.T) {
		t.Parallel()
		got, err := ParseFeedDate("")
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().UTC(), got, time.Minute)
	})

	t.Run("valid date", func(t *testing.T) {
		t.Parallel()
		got, err := ParseFeedDate("2025-06-15")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rejects other formats", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"15-06-2025", "2025/06/15", "yesterday", "2025-13-01"} {
			_, err := ParseFeedDate(raw)
			assert.Error(t, err, raw)
		}
	})
}
