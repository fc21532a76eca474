package timezone_test

import (
	"testing"
	"time"

	"tableside/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	t.Cleanup(func() { _ = timezone.Set("UTC") })

	require.NoError(t, timezone.Set("Asia/Jakarta"))
	assert.Equal(t, "Asia/Jakarta", timezone.GetLocation().String())
	assert.Equal(t, "Asia/Jakarta", timezone.Now().Location().String())

	require.Error(t, timezone.Set("Mars/Olympus_Mons"))
	assert.Equal(t, time.UTC, timezone.GetLocation())
}

func TestParseAndFormat(t *testing.T) {
	t.Cleanup(func() { _ = timezone.Set("UTC") })
	require.NoError(t, timezone.Set("Asia/Jakarta"))

	start, err := timezone.Parse("2006-01-02 15:04", "2024-06-01 19:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), start.UTC())

	assert.Equal(t, "19:00", timezone.Format(start.UTC(), "15:04"))

	_, err = timezone.Parse("2006-01-02", "01/06/2024")
	assert.Error(t, err)
}
