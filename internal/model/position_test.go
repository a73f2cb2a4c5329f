package model

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input    string
		expected Position
	}{
		{input: "QB", expected: PosQB},
		{input: "qb", expected: PosQB},
		{input: "RB", expected: PosRB},
		{input: "rb", expected: PosRB},
		{input: "FB", expected: PosRB},
		{input: "HB", expected: PosRB},
		{input: "WR", expected: PosWR},
		{input: " wr ", expected: PosWR},
		{input: "TE", expected: PosTE},
		{input: "K", expected: PosUnknown},
		{input: "DEF", expected: PosUnknown},
		{input: "", expected: PosUnknown},
	}

	for _, tc := range tests {
		a := ParsePosition(tc.input)
		if a != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestPositionValid(t *testing.T) {
	if !PosQB.Valid() {
		t.Error("QB should be valid")
	}
	if PosUnknown.Valid() {
		t.Error("UNK should not be valid")
	}
	if Position("").Valid() {
		t.Error("empty position should not be valid")
	}
}
