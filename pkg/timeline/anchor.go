package timeline

import (
	"errors"
	"fmt"
	"time"

	"sprout/entities"
)

const dateLayout = "2006-01-02"

var (
	// ErrMissingFrostDate: neither the season nor the user's settings
	// supply a frost date. Terminal; the user has to set one.
	ErrMissingFrostDate = errors.New("no last frost date on season or in settings")
	// ErrInvalidFrostDate: a stored frost date doesn't parse to a real
	// calendar date.
	ErrInvalidFrostDate = errors.New("last frost date is not a valid date")
)

// ResolveAnchor picks the last-frost date every offset is computed from.
// The season's own date wins; otherwise the user's personal frost date is
// re-projected onto the season's year, keeping month and day only (the
// personal date was captured in some arbitrary historical year).
func ResolveAnchor(season *entities.Season, settings *entities.UserSettings) (time.Time, error) {
	if season.LastFrostDate != "" {
		d, err := time.Parse(dateLayout, season.LastFrostDate)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: season has %q", ErrInvalidFrostDate, season.LastFrostDate)
		}
		return d, nil
	}
	if settings != nil && settings.LastFrostDate != "" {
		d, err := time.Parse(dateLayout, settings.LastFrostDate)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: settings have %q", ErrInvalidFrostDate, settings.LastFrostDate)
		}
		if season.Year <= 0 {
			return time.Time{}, fmt.Errorf("%w: season has no year to project onto", ErrMissingFrostDate)
		}
		return time.Date(season.Year, d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, ErrMissingFrostDate
}
