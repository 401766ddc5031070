package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name  string
		minor int64
		want  string
	}{
		{name: "whole units", minor: 1200, want: "Rs 12.00"},
		{name: "with cents", minor: 1250, want: "Rs 12.50"},
		{name: "single cent", minor: 1, want: "Rs 0.01"},
		{name: "zero", minor: 0, want: "Rs 0.00"},
		{name: "negative", minor: -1250, want: "-Rs 12.50"},
		{name: "large", minor: 123456789, want: "Rs 1234567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.minor))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.5%", FormatPercent(12.5))
	assert.Equal(t, "0.0%", FormatPercent(0))
	assert.Equal(t, "-3.3%", FormatPercent(-3.25))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "whole", input: "12", want: 1200},
		{name: "decimal", input: "12.50", want: 1250},
		{name: "one decimal place", input: "12.5", want: 1250},
		{name: "leading dot", input: ".50", want: 50},
		{name: "negative", input: "-12.50", want: -1250},
		{name: "whitespace", input: " 12.50 ", want: 1250},
		{name: "empty", input: "", wantErr: true},
		{name: "too many decimals", input: "12.505", wantErr: true},
		{name: "not a number", input: "twelve", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, minor := range []int64{0, 1, 99, 100, 1250, 999999} {
		formatted := FormatAmount(minor)
		// Strip the currency prefix before reparsing.
		parsed, err := ParseAmount(formatted[len("Rs "):])
		require.NoError(t, err)
		assert.Equal(t, minor, parsed)
	}
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "██████████", ProgressBar(100, 10))
	assert.Equal(t, "█████░░░░░", ProgressBar(50, 10))
	assert.Equal(t, "░░░░░░░░░░", ProgressBar(0, 10))
	// Overspend caps at a full bar.
	assert.Equal(t, "██████████", ProgressBar(250, 10))
	assert.Equal(t, "░░░░░░░░░░", ProgressBar(-5, 10))
}
