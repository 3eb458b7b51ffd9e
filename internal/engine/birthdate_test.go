package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-age/internal/engine"
)

var validationNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestNewBirthDate(t *testing.T) {
	tests := []struct {
		name             string
		day, month, year int
		wantErr          error
	}{
		{"Regular date", 15, 6, 2000, nil},
		{"Leap day in a leap year", 29, 2, 2000, nil},
		{"Lower year bound", 1, 1, 1900, nil},
		{"Today", 15, 6, 2025, nil},
		{"Feb 31", 31, 2, 2000, engine.ErrInvalidCalendarDate},
		{"Leap day in a common year", 29, 2, 2001, engine.ErrInvalidCalendarDate},
		{"Leap day in 1900", 29, 2, 1900, engine.ErrInvalidCalendarDate},
		{"April 31", 31, 4, 2000, engine.ErrInvalidCalendarDate},
		{"Far future", 15, 6, 2999, engine.ErrFutureDate},
		{"Tomorrow", 16, 6, 2025, engine.ErrFutureDate},
		{"Day zero", 0, 1, 2000, engine.ErrOutOfRange},
		{"Day 32", 32, 1, 2000, engine.ErrOutOfRange},
		{"Month zero", 1, 0, 2000, engine.ErrOutOfRange},
		{"Month 13", 1, 13, 2000, engine.ErrOutOfRange},
		{"Year before 1900", 31, 12, 1899, engine.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := engine.NewBirthDate(tt.day, tt.month, tt.year, validationNow)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, engine.BirthDate{}, b, "no partial result on failure")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, engine.BirthDate{Year: tt.year, Month: time.Month(tt.month), Day: tt.day}, b)
		})
	}
}

// TestNewBirthDate_MidnightBoundary accepts a birth at the very moment the day starts.
func TestNewBirthDate_MidnightBoundary(t *testing.T) {
	midnight := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	_, err := engine.NewBirthDate(15, 6, 2025, midnight)
	assert.NoError(t, err)

	_, err = engine.NewBirthDate(16, 6, 2025, midnight.Add(-time.Nanosecond))
	assert.ErrorIs(t, err, engine.ErrFutureDate)
}

func TestParseBirthDate(t *testing.T) {
	tests := []struct {
		name             string
		day, month, year string
		want             engine.BirthDate
		wantErr          error
	}{
		{"Plain digits", "15", "6", "2000", engine.BirthDate{Year: 2000, Month: time.June, Day: 15}, nil},
		{"Leading zeros and spaces", " 05 ", "09", "1985", engine.BirthDate{Year: 1985, Month: time.September, Day: 5}, nil},
		{"Missing day", "", "6", "2000", engine.BirthDate{}, engine.ErrMissingField},
		{"Missing year", "15", "6", "  ", engine.BirthDate{}, engine.ErrMissingField},
		{"Non numeric", "1a", "6", "2000", engine.BirthDate{}, engine.ErrMissingField},
		{"Missing wins over range", "0", "", "2000", engine.BirthDate{}, engine.ErrMissingField},
		{"Out of range", "0", "1", "2000", engine.BirthDate{}, engine.ErrOutOfRange},
		{"Range wins over calendar", "31", "2", "1899", engine.BirthDate{}, engine.ErrOutOfRange},
		{"Invalid calendar date", "31", "2", "2000", engine.BirthDate{}, engine.ErrInvalidCalendarDate},
		{"Future", "15", "6", "2999", engine.BirthDate{}, engine.ErrFutureDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.ParseBirthDate(tt.day, tt.month, tt.year, validationNow)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	want := engine.BirthDate{Year: 2000, Month: time.January, Day: 31}

	for _, value := range []string{"2000-01-31", "2000/01/31", "31/01/2000", "31-01-2000", "20000131", " 2000-1-31 "} {
		t.Run(value, func(t *testing.T) {
			got, err := engine.ParseDate(value, validationNow)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := engine.ParseDate("2000-02-30", validationNow)
	assert.ErrorIs(t, err, engine.ErrInvalidCalendarDate)

	_, err = engine.ParseDate("2999-01-01", validationNow)
	assert.ErrorIs(t, err, engine.ErrFutureDate)

	for _, bad := range []string{"", "yesterday", "01-31", "1-2-3"} {
		_, err = engine.ParseDate(bad, validationNow)
		assert.ErrorIs(t, err, engine.ErrMissingField, bad)
	}
}

func TestBirthDate_OccurrenceIn(t *testing.T) {
	leapling := engine.BirthDate{Year: 2000, Month: time.February, Day: 29}

	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), leapling.OccurrenceIn(2025))
	assert.Equal(t, time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC), leapling.OccurrenceIn(2028))
	assert.Equal(t, time.Date(2100, time.March, 1, 0, 0, 0, 0, time.UTC), leapling.OccurrenceIn(2100))

	regular := engine.BirthDate{Year: 1990, Month: time.December, Day: 31}
	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), regular.OccurrenceIn(2025))
}

func TestBirthDate_String(t *testing.T) {
	assert.Equal(t, "1905-03-07", engine.BirthDate{Year: 1905, Month: time.March, Day: 7}.String())
}
