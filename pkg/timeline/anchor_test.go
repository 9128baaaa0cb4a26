package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprout/entities"
)

func TestResolveAnchorSeasonDateWins(t *testing.T) {
	season := &entities.Season{Year: 2025, LastFrostDate: "2025-05-10"}
	settings := &entities.UserSettings{LastFrostDate: "2019-03-15"}

	got, err := ResolveAnchor(season, settings)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), got)
}

// TestResolveAnchorFallbackReprojectsYear: the personal frost date keeps
// its month/day but takes the season's year.
func TestResolveAnchorFallbackReprojectsYear(t *testing.T) {
	season := &entities.Season{Year: 2025}
	settings := &entities.UserSettings{LastFrostDate: "2019-03-15"}

	got, err := ResolveAnchor(season, settings)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestResolveAnchorMissing(t *testing.T) {
	tests := []struct {
		name     string
		season   *entities.Season
		settings *entities.UserSettings
	}{
		{"no season date, nil settings", &entities.Season{Year: 2025}, nil},
		{"no season date, empty settings", &entities.Season{Year: 2025}, &entities.UserSettings{}},
		{"fallback without season year", &entities.Season{}, &entities.UserSettings{LastFrostDate: "2019-03-15"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveAnchor(tt.season, tt.settings)
			assert.ErrorIs(t, err, ErrMissingFrostDate)
		})
	}
}

func TestResolveAnchorInvalid(t *testing.T) {
	tests := []struct {
		name     string
		season   *entities.Season
		settings *entities.UserSettings
	}{
		{"season date not a date", &entities.Season{Year: 2025, LastFrostDate: "frosty"}, nil},
		{"season date out of range", &entities.Season{Year: 2025, LastFrostDate: "2025-02-30"}, nil},
		{"settings date malformed", &entities.Season{Year: 2025}, &entities.UserSettings{LastFrostDate: "03/15/2019"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveAnchor(tt.season, tt.settings)
			assert.ErrorIs(t, err, ErrInvalidFrostDate)
		})
	}
}
