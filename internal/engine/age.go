package engine

import (
	"time"

	"cloudeng.io/datetime"
	"github.com/tartampluch/go-age/internal/config"
)

const oneDay = 24 * time.Hour

// AgeResult describes the elapsed age at the evaluation moment.
type AgeResult struct {
	// Calendar age, largest unit first. Months is 0-11 and Days 0-30.
	Years  int
	Months int
	Days   int

	// Whole units elapsed since birth midnight. Hours derive from whole days.
	TotalDays  int
	TotalWeeks int
	TotalHours int

	DaysUntilNextBirthday int

	// NextBirthday is local midnight of the next observed birthday.
	NextBirthday time.Time

	// NextBirthdayDate is NextBirthday in the en-US long form.
	NextBirthdayDate string
}

// Calculate derives the age of b at now. b must already be validated
// (see NewBirthDate); the result is deterministic for a given pair.
func Calculate(b BirthDate, now time.Time) AgeResult {
	ny, nm, nd := now.Date()

	years := ny - b.Year
	months := int(nm) - int(b.Month)
	days := nd - b.Day

	if days < 0 {
		months--
		// Borrow the previous month. A birth day past its end counts from the
		// month's last day, so Jan 31 -> Mar 1 is one month and one day.
		prevLen := daysInPreviousMonth(ny, nm)
		days = nd + prevLen - min(b.Day, prevLen)
	}

	if months < 0 {
		years--
		months += config.MonthsInYear
	}

	// Everything below runs on the local wall clock re-read as UTC so DST
	// shifts never add or remove a day.
	birth := b.Midnight(time.UTC)
	totalDays := int(wallClock(now).Sub(birth) / oneDay)

	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	next := b.OccurrenceIn(ny)
	if next.Before(today) {
		next = b.OccurrenceIn(ny + 1)
	}
	nextLocal := time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, now.Location())

	return AgeResult{
		Years:                 years,
		Months:                months,
		Days:                  days,
		TotalDays:             totalDays,
		TotalWeeks:            totalDays / config.DaysPerWeek,
		TotalHours:            totalDays * config.HoursPerDay,
		DaysUntilNextBirthday: int(next.Sub(today) / oneDay),
		NextBirthday:          nextLocal,
		NextBirthdayDate:      nextLocal.Format(config.DateFormatLong),
	}
}

// AgeNext is the age reached on NextBirthday.
func (r AgeResult) AgeNext() int {
	if r.DaysUntilNextBirthday == 0 {
		return r.Years
	}
	return r.Years + 1
}

// IsBirthday reports whether the evaluation day is the birthday.
func (r AgeResult) IsBirthday() bool {
	return r.DaysUntilNextBirthday == 0
}

func daysInPreviousMonth(year int, month time.Month) int {
	if month == time.January {
		return int(datetime.DaysInMonth(year-1, datetime.Month(time.December)))
	}
	return int(datetime.DaysInMonth(year, datetime.Month(month-1)))
}

func wallClock(t time.Time) time.Time {
	y, m, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(y, m, d, h, mi, s, t.Nanosecond(), time.UTC)
}
