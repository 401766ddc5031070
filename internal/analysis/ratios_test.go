package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		part  int64
		whole int64
		want  float64
	}{
		{name: "half", part: 50, whole: 100, want: 50},
		{name: "over 100", part: 150, whole: 100, want: 150},
		{name: "zero whole yields zero", part: 42, whole: 0, want: 0},
		{name: "zero part", part: 0, whole: 100, want: 0},
		{name: "negative part", part: -50, whole: 100, want: -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Percentage(tt.part, tt.whole), 0.0001)
		})
	}
}

func TestChange(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		want     float64
	}{
		{name: "25 percent increase", current: 500000, previous: 400000, want: 25},
		{name: "decrease", current: 300000, previous: 400000, want: -25},
		{name: "both zero", current: 0, previous: 0, want: 0},
		{name: "from zero", current: 12345, previous: 0, want: 100},
		{name: "to zero", current: 0, previous: 400000, want: -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Change(tt.current, tt.previous), 0.0001)
		})
	}
}

func TestSavingsRate(t *testing.T) {
	assert.InDelta(t, 20.0, SavingsRate(500000, 400000), 0.0001)
	assert.InDelta(t, 0.0, SavingsRate(0, 400000), 0.0001)
	assert.InDelta(t, -50.0, SavingsRate(100000, 150000), 0.0001)
	assert.InDelta(t, 100.0, SavingsRate(100000, 0), 0.0001)
}
