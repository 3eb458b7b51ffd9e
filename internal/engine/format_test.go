package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{8932, "8,932"},
		{214368, "214,368"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCount(tt.in))
		})
	}
}

func TestAgeResult_Subtitle(t *testing.T) {
	assert.Equal(t, "5 months and 14 days", AgeResult{Months: 5, Days: 14}.Subtitle())
	assert.Equal(t, "0 months and 0 days", AgeResult{}.Subtitle())
}

func TestDaysInPreviousMonth(t *testing.T) {
	assert.Equal(t, 31, daysInPreviousMonth(2025, time.January), "January borrows December of the previous year")
	assert.Equal(t, 28, daysInPreviousMonth(2025, time.March))
	assert.Equal(t, 29, daysInPreviousMonth(2024, time.March))
	assert.Equal(t, 30, daysInPreviousMonth(2025, time.July))
}

func TestWallClock_DropsZone(t *testing.T) {
	zone := time.FixedZone("UTC+9", 9*60*60)
	got := wallClock(time.Date(2025, 6, 15, 8, 30, 0, 0, zone))
	assert.Equal(t, time.Date(2025, 6, 15, 8, 30, 0, 0, time.UTC), got)
}
