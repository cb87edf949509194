package core

import (
	"math"
	"testing"
)

func TestColor_MaxToOne(t *testing.T) {
	tests := []struct {
		name     string
		input    Color
		expected Color
	}{
		{"Below one is unchanged", NewColor(0.2, 0.5, 0.9), NewColor(0.2, 0.5, 0.9)},
		{"Exactly one is unchanged", NewColor(1, 0.5, 0), NewColor(1, 0.5, 0)},
		{"Rescaled together", NewColor(2, 1, 0.5), NewColor(1, 0.5, 0.25)},
		{"Blue dominant", NewColor(0.4, 0.8, 4), NewColor(0.1, 0.2, 1)},
	}

	const tolerance = 1e-12
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.input.MaxToOne()
			if math.Abs(got.R-tt.expected.R) > tolerance ||
				math.Abs(got.G-tt.expected.G) > tolerance ||
				math.Abs(got.B-tt.expected.B) > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestColor_MaxToOnePreservesHue(t *testing.T) {
	c := NewColor(3, 1.5, 0.75)
	got := c.MaxToOne()

	// Channel ratios must survive the rescale
	if math.Abs(got.G/got.R-0.5) > 1e-12 || math.Abs(got.B/got.R-0.25) > 1e-12 {
		t.Errorf("Expected ratios to be preserved, got %v", got)
	}
}

func TestColor_Pack(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected uint32
	}{
		{"Black", Black, 0x000000},
		{"White", White, 0xFFFFFF},
		{"Red", Red, 0xFF0000},
		{"Half gray truncates", GrayLevel(0.5), 0x7F7F7F},
		{"Negative clamps to zero", NewColor(-1, 0, 1), 0x0000FF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Pack(); got != tt.expected {
				t.Errorf("Expected %#06x, got %#06x", tt.expected, got)
			}
		})
	}
}

func TestColor_PackNaNIsBlack(t *testing.T) {
	c := NewColor(math.NaN(), math.NaN(), math.NaN())
	if got := c.Pack(); got != 0 {
		t.Errorf("Expected NaN color to pack to 0, got %#06x", got)
	}
}

func TestUnpack(t *testing.T) {
	r, g, b := Unpack(0x123456)
	if r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("Expected (0x12, 0x34, 0x56), got (%#x, %#x, %#x)", r, g, b)
	}
}

func TestColor_Arithmetic(t *testing.T) {
	a := NewColor(0.5, 0.25, 1)
	b := NewColor(2, 4, 0.5)

	if got := a.Mul(b); got != NewColor(1, 1, 0.5) {
		t.Errorf("Mul: got %v", got)
	}
	if got := a.Add(b); got != NewColor(2.5, 4.25, 1.5) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Subtract(a); got != NewColor(1.5, 3.75, -0.5) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := a.Scale(2); got != NewColor(1, 0.5, 2) {
		t.Errorf("Scale: got %v", got)
	}
}
