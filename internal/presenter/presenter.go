package presenter

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ahhreggi/iss-spotter/internal/timezone"
	"github.com/ahhreggi/iss-spotter/internal/types"
)

// Presenter writes pass listings for humans
type Presenter struct {
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

func New(out, errOut io.Writer, logger *slog.Logger) *Presenter {
	return &Presenter{
		out:    out,
		errOut: errOut,
		logger: logger.With("component", "presenter"),
	}
}

// PrintPassTimes prints one line per pass in the requested timezone.
// An empty requested timezone silently uses defaultTZ; an invalid one
// prints a warning first and then uses defaultTZ.
func (p *Presenter) PrintPassTimes(passes types.PassList, requested, defaultTZ string) {
	tz := p.resolve(requested, defaultTZ)

	loc, err := time.LoadLocation(tz)
	if err != nil {
		// resolve only returns loadable names
		p.logger.Error("failed to load timezone", "timezone", tz, "error", err)
		tz, loc = timezone.Fallback, time.UTC
	}

	_, _ = fmt.Fprintln(p.out, "Upcoming ISS flyovers for your location:")
	for _, pass := range passes {
		_, _ = fmt.Fprintf(p.out, "  - %s (%s) for %d seconds!\n", FormatTime(pass.RiseTime(), loc), tz, pass.Duration)
	}
}

// PrintError prints a terminating error
func (p *Presenter) PrintError(err error) {
	_, _ = fmt.Fprintf(p.errOut, "[ERROR]: %s\n", err.Error())
}

func (p *Presenter) resolve(requested, defaultTZ string) string {
	if !timezone.Valid(defaultTZ) {
		p.logger.Warn("default timezone is invalid", "timezone", defaultTZ, "fallback", timezone.Fallback)
		defaultTZ = timezone.Fallback
	}

	switch {
	case requested == "":
		return defaultTZ
	case timezone.Valid(requested):
		return requested
	default:
		_, _ = fmt.Fprintf(p.out, "Specified timezone is invalid. Reverted to default: %s\n", defaultTZ)
		return defaultTZ
	}
}

// FormatTime renders t in loc like "Friday, January 1st 2021 @ 12:00 am"
func FormatTime(t time.Time, loc *time.Location) string {
	local := t.In(loc)
	return local.Format("Monday, January ") +
		humanize.Ordinal(local.Day()) +
		local.Format(" 2006 @ 3:04 pm")
}
