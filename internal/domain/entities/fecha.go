package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	FechaLayout       = "2006-01-02"
	FechaLocaleLayout = "02/01/2006"

	DefaultTimezone = "America/Mexico_City"
)

var ErrInvalidFecha = errors.New("invalid fecha")

// FechaDe returns the calendar date of t in loc.
func FechaDe(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(FechaLayout)
}

// ParseFecha validates an ISO date and returns it in canonical form.
func ParseFecha(s string) (string, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(FechaLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFecha, s)
	}
	return t.Format(FechaLayout), nil
}

// NormalizeLegacyFecha converts dates written by older clients. Those stored
// toLocaleDateString output, which for the es-MX locale is D/M/YYYY. ISO
// values pass through; anything unparseable is returned unchanged.
func NormalizeLegacyFecha(s string) string {
	s = strings.TrimSpace(s)
	if iso, err := ParseFecha(s); err == nil {
		return iso
	}
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return s
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return s
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return s
	}
	return t.Format(FechaLayout)
}

// FormatFechaLocale renders an ISO date as DD/MM/YYYY.
func FormatFechaLocale(iso string) string {
	t, err := time.Parse(FechaLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format(FechaLocaleLayout)
}

// LoadLocation resolves tz falling back to DefaultTimezone, then UTC.
func LoadLocation(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// LegacyFecha renders an ISO date the way older clients stored it (D/M/YYYY,
// no zero padding). Stores use it to match documents that predate ISO dates.
func LegacyFecha(iso string) string {
	t, err := time.Parse(FechaLayout, iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}
