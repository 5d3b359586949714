package summary

import (
	"math"
	"testing"
)

type rateTestCase struct {
	part     float64
	whole    float64
	expected float64
}

func TestRate(t *testing.T) {
	cases := []rateTestCase{
		{0, 10, 0},
		{5, 10, 0.5},
		{17, 444, 17.0 / 444},
		{-3, 10, -0.3},
	}
	for _, c := range cases {
		if Rate(c.part, c.whole) != c.expected {
			t.Fatal()
		}
	}
}

func TestRateZeroDenominator(t *testing.T) {
	if !math.IsNaN(Rate(0, 0)) {
		t.Fatal()
	}
	if !math.IsNaN(Rate(5, 0)) {
		t.Fatal()
	}
}

func TestRoundPercent(t *testing.T) {
	cases := []rateTestCase{
		{part: 3.8288, expected: 3.83},
		{part: 3.8249, expected: 3.82},
		{part: 0, expected: 0},
		{part: -2.666, expected: -2.67},
	}
	for _, c := range cases {
		if RoundPercent(c.part) != c.expected {
			t.Fatalf("RoundPercent(%v) = %v, want %v", c.part, RoundPercent(c.part), c.expected)
		}
	}
	if !math.IsNaN(RoundPercent(math.NaN())) {
		t.Fatal()
	}
}
