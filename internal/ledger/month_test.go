package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthNavigation(t *testing.T) {
	tests := []struct {
		name     string
		month    Month
		wantPrev Month
		wantNext Month
	}{
		{name: "mid-year", month: "2024-06", wantPrev: "2024-05", wantNext: "2024-07"},
		{name: "year boundary forward", month: "2024-12", wantPrev: "2024-11", wantNext: "2025-01"},
		{name: "year boundary backward", month: "2024-01", wantPrev: "2023-12", wantNext: "2024-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPrev, tt.month.Prev())
			assert.Equal(t, tt.wantNext, tt.month.Next())
		})
	}
}

func TestMonthDays(t *testing.T) {
	assert.Equal(t, 31, Month("2024-01").Days())
	assert.Equal(t, 29, Month("2024-02").Days()) // leap year
	assert.Equal(t, 28, Month("2023-02").Days())
	assert.Equal(t, 30, Month("2024-11").Days())
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-11")
	require.NoError(t, err)
	assert.Equal(t, Month("2024-11"), m)
	assert.Equal(t, "November 2024", m.Name())

	_, err = ParseMonth("2024-13")
	assert.Error(t, err)

	_, err = ParseMonth("november")
	assert.Error(t, err)
}

func TestMonthContains(t *testing.T) {
	m := Month("2024-06")
	assert.True(t, m.Contains(date(2024, time.June, 1)))
	assert.True(t, m.Contains(date(2024, time.June, 30)))
	assert.False(t, m.Contains(date(2024, time.May, 31)))
	assert.False(t, m.Contains(date(2024, time.July, 1)))
	assert.False(t, m.Contains(date(2023, time.June, 15)))
}

func TestLastN(t *testing.T) {
	now := date(2024, time.February, 15)

	months := LastN(now, 4)
	require.Len(t, months, 4)
	assert.Equal(t, []Month{"2024-02", "2024-01", "2023-12", "2023-11"}, months)

	assert.Empty(t, LastN(now, 0))
	assert.Empty(t, LastN(now, -1))
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{name: "same day", a: date(2024, time.June, 15), b: date(2024, time.June, 15), want: 0},
		{name: "exactly one month", a: date(2024, time.June, 15), b: date(2024, time.July, 15), want: 1},
		{name: "partial month rounds down", a: date(2024, time.June, 15), b: date(2024, time.July, 14), want: 0},
		{name: "across year boundary", a: date(2024, time.November, 1), b: date(2025, time.February, 1), want: 3},
		{name: "b before a floors at zero", a: date(2024, time.June, 15), b: date(2024, time.May, 1), want: 0},
		{name: "full year", a: date(2024, time.January, 31), b: date(2025, time.January, 31), want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsBetween(tt.a, tt.b))
		})
	}
}
