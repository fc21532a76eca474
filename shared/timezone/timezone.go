package timezone

import (
	"fmt"
	"sync/atomic"
	"time"

	"tableside/config"

	"github.com/rs/zerolog/log"
)

var appLocation atomic.Pointer[time.Location]

func init() {
	name := config.Get().App.Timezone
	if name == "" {
		log.Warn().Msg("APP_TIMEZONE not set, using UTC")

		name = time.UTC.String()
	}

	if err := Set(name); err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("falling back to UTC")
	}
}

// Set switches the application location. On error the location becomes UTC.
func Set(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		appLocation.Store(time.UTC)

		return fmt.Errorf("load location %q: %w", name, err)
	}

	appLocation.Store(loc)
	log.Debug().Str("timezone", loc.String()).Msg("application timezone set")

	return nil
}

func GetLocation() *time.Location {
	if loc := appLocation.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse reads value as wall-clock time in the application location.
func Parse(layout, value string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, GetLocation())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %w", value, err)
	}

	return t, nil
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

