package form

import (
	"errors"
	"math"
	"testing"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		wantErr  bool
	}{
		{
			name:     "integer",
			input:    "180",
			expected: 180,
		},
		{
			name:     "decimal",
			input:    "10.5",
			expected: 10.5,
		},
		{
			name:     "surrounding whitespace",
			input:    "  6 ",
			expected: 6,
		},
		{
			name:     "negative",
			input:    "-3",
			expected: -3,
		},
		{
			name:     "out of range keeps infinity",
			input:    "1e400",
			expected: math.Inf(1),
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "letters",
			input:   "tall",
			wantErr: true,
		},
		{
			name:    "trailing unit",
			input:   "180lb",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseField(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrNotANumber) {
					t.Errorf("ParseField(%q) error = %v, want ErrNotANumber", tt.input, err)
				}
				if !math.IsNaN(result) {
					t.Errorf("ParseField(%q) = %v, want NaN", tt.input, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseField(%q) unexpected error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseField(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "two decimals", input: 25.82, expected: "25.82"},
		{name: "one decimal", input: 19.5, expected: "19.5"},
		{name: "whole", input: 2812, expected: "2812"},
		{name: "zero", input: 0, expected: "0"},
		{name: "negative zero", input: math.Copysign(0, -1), expected: "0"},
		{name: "negative", input: -4.25, expected: "-4.25"},
		{name: "NaN", input: math.NaN(), expected: "NaN"},
		{name: "positive infinity", input: math.Inf(1), expected: "Infinity"},
		{name: "negative infinity", input: math.Inf(-1), expected: "-Infinity"},
		{name: "huge", input: 1e21, expected: "1e+21"},
		{name: "huge with fraction", input: 1.5e300, expected: "1.5e+300"},
		{name: "smallest plain", input: 0.000001, expected: "0.000001"},
		{name: "tiny", input: 1e-7, expected: "1e-7"},
		{name: "tiny negative", input: -2.5e-8, expected: "-2.5e-8"},
		{name: "subnormal", input: 5e-324, expected: "5e-324"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatNumber(tt.input)
			if result != tt.expected {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
