package timezone

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // validation must not depend on the host zoneinfo database

	"github.com/ahhreggi/iss-spotter/internal/types"
)

// Fallback is used when nothing better can be guessed
const Fallback = "UTC"

// Valid reports whether name is a known IANA timezone identifier
func Valid(name string) bool {
	if name == "" || name == "Local" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

// HostZone returns the IANA name configured on the host, or "" if unknown.
// It checks $TZ first, then the /etc/localtime symlink.
func HostZone() string {
	if tz, ok := os.LookupEnv("TZ"); ok {
		tz = strings.TrimPrefix(tz, ":")
		if Valid(tz) {
			return tz
		}
	}

	target, err := os.Readlink("/etc/localtime")
	if err != nil {
		return ""
	}
	target = filepath.ToSlash(target)
	if i := strings.LastIndex(target, "zoneinfo/"); i >= 0 {
		name := target[i+len("zoneinfo/"):]
		if Valid(name) {
			return name
		}
	}
	return ""
}

// Guesser picks a default timezone when the requested one is missing or
// invalid, and fixes the case of requested names
type Guesser struct {
	configured   string
	fromLocation bool
	hostZone     func() string
	newLookup    func() (Service, error)
	logger       *slog.Logger
}

// NewGuesser creates a guesser backed by the host environment and tzf
func NewGuesser(configured string, fromLocation bool, logger *slog.Logger) *Guesser {
	return NewGuesserWithLookup(configured, fromLocation, HostZone, NewService, logger)
}

// NewGuesserWithLookup creates a guesser with custom host and location lookups.
// newLookup is only called when a location based guess or a case-insensitive
// name match is needed.
func NewGuesserWithLookup(
	configured string,
	fromLocation bool,
	hostZone func() string,
	newLookup func() (Service, error),
	logger *slog.Logger,
) *Guesser {
	return &Guesser{
		configured:   configured,
		fromLocation: fromLocation,
		hostZone:     hostZone,
		newLookup:    newLookup,
		logger:       logger.With("component", "timezone-guesser"),
	}
}

// Guess returns, in order of preference: the configured default, the host
// timezone, the timezone at coords, then Fallback. coords may be nil.
func (g *Guesser) Guess(coords *types.Coords) string {
	if g.configured != "" {
		if Valid(g.configured) {
			return g.configured
		}
		g.logger.Warn("configured default timezone is invalid", "timezone", g.configured)
	}

	if tz := g.hostZone(); tz != "" {
		return tz
	}

	if g.fromLocation && coords != nil {
		if tz := g.fromCoords(*coords); tz != "" {
			return tz
		}
	}

	return Fallback
}

// Canonical returns the IANA spelling of name, matching case-insensitively
// so that "america/vancouver" becomes "America/Vancouver". Names that are
// already valid, empty, or unknown are returned unchanged.
func (g *Guesser) Canonical(name string) string {
	if name == "" || Valid(name) {
		return name
	}

	for _, zone := range nonGeographic {
		if strings.EqualFold(zone, name) {
			return zone
		}
	}

	lookup, err := g.newLookup()
	if err != nil {
		g.logger.Debug("timezone names unavailable", "error", err)
		return name
	}
	for _, zone := range lookup.Names() {
		if strings.EqualFold(zone, name) && Valid(zone) {
			return zone
		}
	}
	return name
}

// zones with no territory, absent from boundary data
var nonGeographic = []string{"UTC", "GMT", "Etc/UTC", "Etc/GMT", "Etc/UCT", "Etc/Universal", "Etc/Zulu"}

func (g *Guesser) fromCoords(coords types.Coords) string {
	lookup, err := g.newLookup()
	if err != nil {
		g.logger.Warn("timezone lookup unavailable", "error", err)
		return ""
	}

	tz, err := lookup.GetTimezone(coords)
	if err != nil {
		g.logger.Debug("no timezone for location",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return ""
	}
	if !Valid(tz) {
		return ""
	}
	return tz
}
