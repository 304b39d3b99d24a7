package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsGetMissingKey(t *testing.T) {
	db := setupTestDB(t)
	settings := NewSettingsService(db)

	value, found, err := settings.Get("logoUrl")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestSettingsUpsert(t *testing.T) {
	db := setupTestDB(t)
	settings := NewSettingsService(db)

	require.NoError(t, settings.Set("logoUrl", "https://example.com/logo-v1.png"))
	require.NoError(t, settings.Set("logoUrl", "https://example.com/logo-v2.png"))

	value, found, err := settings.Get("logoUrl")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "https://example.com/logo-v2.png", value)

	// Independent keys do not interfere
	require.NoError(t, settings.Set("qrCodeUrl", "https://example.com/qr.png"))
	value, found, err = settings.Get("qrCodeUrl")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "https://example.com/qr.png", value)
}

func TestDailyColorStableWithinDay(t *testing.T) {
	db := setupTestDB(t)

	picks := 0
	settings := &settingsService{
		db:  db,
		now: fixedClock("15/03/2026 09:00"),
		pick: func(n int) int {
			picks++
			return 4
		},
	}

	first, err := settings.DailyColor()
	require.NoError(t, err)
	assert.Equal(t, dailyPalette[4], first)

	// Same day: same color, no second pick
	settings.pick = func(n int) int {
		picks++
		return 11
	}
	second, err := settings.DailyColor()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, picks)
}

func TestDailyColorReseededAtRollover(t *testing.T) {
	db := setupTestDB(t)

	settings := &settingsService{
		db:   db,
		now:  fixedClock("15/03/2026 23:59"),
		pick: func(n int) int { return 4 },
	}

	first, err := settings.DailyColor()
	require.NoError(t, err)
	assert.Equal(t, dailyPalette[4], first)

	// New day, new pick, independent of the previous one
	settings.now = fixedClock("16/03/2026 00:01")
	settings.pick = func(n int) int {
		assert.Equal(t, len(dailyPalette), n)
		return 17
	}
	second, err := settings.DailyColor()
	require.NoError(t, err)
	assert.Equal(t, dailyPalette[17], second)

	// Yesterday's color is still persisted under its own key
	value, found, err := settings.Get("color_15/03/2026")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, dailyPalette[4], value)
}

func TestDailyColorComesFromPalette(t *testing.T) {
	db := setupTestDB(t)
	settings := NewSettingsService(db)

	color, err := settings.DailyColor()
	require.NoError(t, err)
	assert.Contains(t, dailyPalette, color)
}
