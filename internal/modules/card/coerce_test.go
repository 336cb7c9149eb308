package card

import (
	"encoding/json"
	"math"
	"testing"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"empty string", "", false},
		{"space", " ", true},
		{"zero float", 0.0, false},
		{"negative zero", math.Copysign(0, -1), false},
		{"zero int", 0, false},
		{"NaN", math.NaN(), false},
		{"one", 1, true},
		{"negative", -3.5, true},
		{"empty slice", []any{}, true},
		{"empty map", map[string]any{}, true},
		{"json number zero", json.Number("0"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truthy(tt.in); got != tt.want {
				t.Errorf("truthy(%#v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"19.99", 19.99},
		{"  42", 42},
		{"\n\t7.5kg", 7.5},
		{"-3", -3},
		{"+2.5", 2.5},
		{".5", 0.5},
		{"5.", 5},
		{"1e3", 1000},
		{"1e", 1},
		{"2E-2x", 0.02},
		{"0x10", 0},
		{"Infinity", math.Inf(1)},
		{"-Infinityish", math.Inf(-1)},
		{"1e400", math.Inf(1)},
		{"12,50", 12},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseFloat(tt.in); got != tt.want {
				t.Errorf("parseFloat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFloatNaN(t *testing.T) {
	for _, in := range []string{"", "abc", ".", "-", "e5", "infinity", "$19.99", "true"} {
		if got := parseFloat(in); !math.IsNaN(got) {
			t.Errorf("parseFloat(%q) = %v, want NaN", in, got)
		}
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 19.99, 19.99},
		{"int", 20, 20},
		{"string", "19.99", 19.99},
		{"single element array", []any{"4.25"}, 4.25},
		{"json number", json.Number("3.5"), 3.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toNumber(tt.in); got != tt.want {
				t.Errorf("toNumber(%#v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
	if got := toNumber([]any{1, 2}); got != 1 {
		t.Errorf("toNumber([1 2]) = %v, want 1", got)
	}
	for _, in := range []any{true, map[string]any{"a": 1}, []any{}} {
		if got := toNumber(in); !math.IsNaN(got) {
			t.Errorf("toNumber(%#v) = %v, want NaN", in, got)
		}
	}
}

func TestToFixed2(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{19.99, "19.99"},
		{19.999, "20.00"},
		{0, "0.00"},
		{math.Copysign(0, -1), "0.00"},
		{5, "5.00"},
		{1.005, "1.00"},
		{0.125, "0.13"},
		{2.5, "2.50"},
		{1234567.891, "1234567.89"},
		{-1.555, "-1.55"},
		{-0.001, "-0.00"},
		{1e21, "1e+21"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := toFixed2(tt.in); got != tt.want {
				t.Errorf("toFixed2(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestJSNumberString(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{19.99, "19.99"},
		{20, "20"},
		{-0.5, "-0.5"},
		{math.Copysign(0, -1), "0"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{1.5e-10, "1.5e-10"},
		{1e21, "1e+21"},
		{123e30, "1.23e+32"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := jsNumberString(tt.in); got != tt.want {
				t.Errorf("jsNumberString(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(19.99); got != "$19.99" {
		t.Fatalf("FormatPrice = %q", got)
	}
	if got := FormatPrice(math.NaN()); got != "$NaN" {
		t.Fatalf("FormatPrice(NaN) = %q", got)
	}
}
