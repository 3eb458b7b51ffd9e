package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
	"github.com/tartampluch/go-age/internal/config"
)

// Validation failures. They are checked in declaration order and the first
// failure is reported, wrapped with the offending values.
var (
	ErrMissingField        = errors.New(config.ErrMissingField)
	ErrOutOfRange          = errors.New(config.ErrOutOfRange)
	ErrInvalidCalendarDate = errors.New(config.ErrInvalidCalendar)
	ErrFutureDate          = errors.New(config.ErrFutureDate)
)

// BirthDate is a validated calendar date of birth.
type BirthDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewBirthDate validates the numeric triple against now.
func NewBirthDate(day, month, year int, now time.Time) (BirthDate, error) {
	if day < config.MinDay || day > config.MaxDay ||
		month < config.MinMonth || month > config.MaxMonth ||
		year < config.MinBirthYear {
		return BirthDate{}, fmt.Errorf("%w: day=%d month=%d year=%d", ErrOutOfRange, day, month, year)
	}

	if day > int(datetime.DaysInMonth(year, datetime.Month(month))) {
		return BirthDate{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidCalendarDate, year, month, day)
	}

	b := BirthDate{Year: year, Month: time.Month(month), Day: day}
	if b.Midnight(now.Location()).After(now) {
		return BirthDate{}, fmt.Errorf("%w: %s", ErrFutureDate, b)
	}
	return b, nil
}

// ParseBirthDate validates raw form input. Blank or non-numeric fields
// are reported as ErrMissingField.
func ParseBirthDate(day, month, year string, now time.Time) (BirthDate, error) {
	d, errD := parseField(day)
	m, errM := parseField(month)
	y, errY := parseField(year)
	if errD != nil || errM != nil || errY != nil {
		return BirthDate{}, fmt.Errorf("%w: day=%q month=%q year=%q", ErrMissingField, day, month, year)
	}
	return NewBirthDate(d, m, y, now)
}

// ParseDate accepts a single string in year-first (2000-01-31, 2000/01/31),
// day-first (31/01/2000, 31-01-2000) or basic (20000131) form.
func ParseDate(value string, now time.Time) (BirthDate, error) {
	parts := strings.FieldsFunc(strings.TrimSpace(value), func(r rune) bool {
		return r < '0' || r > '9'
	})

	switch {
	case len(parts) == 1 && len(parts[0]) == len(config.DateFormatFullBasic):
		p := parts[0]
		return ParseBirthDate(p[6:8], p[4:6], p[0:4], now)
	case len(parts) == 3 && len(parts[0]) == config.YearDigits:
		return ParseBirthDate(parts[2], parts[1], parts[0], now)
	case len(parts) == 3 && len(parts[2]) == config.YearDigits:
		return ParseBirthDate(parts[0], parts[1], parts[2], now)
	}
	return BirthDate{}, fmt.Errorf("%w: %s: %q", ErrMissingField, config.ErrDateParse, value)
}

func parseField(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// Midnight returns the start of the birth day in loc.
func (b BirthDate) Midnight(loc *time.Location) time.Time {
	return time.Date(b.Year, b.Month, b.Day, 0, 0, 0, 0, loc)
}

// OccurrenceIn returns the civil date (UTC midnight) the birthday is observed in year.
// Feb 29 birthdays are observed on March 1 in common years.
func (b BirthDate) OccurrenceIn(year int) time.Time {
	if b.Month == time.February && b.Day == 29 && !datetime.IsLeap(year) {
		return time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, b.Month, b.Day, 0, 0, 0, 0, time.UTC)
}

func (b BirthDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", b.Year, int(b.Month), b.Day)
}
