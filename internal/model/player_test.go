package model

import "testing"

func TestNameKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Josh Allen", expected: "josh_allen"},
		{input: "Deebo Samuel Sr.", expected: "deebo_samuel"},
		{input: "Marvin Harrison Jr.", expected: "marvin_harrison"},
		{input: "Patrick Mahomes II", expected: "patrick_mahomes"},
		{input: "  Ja'Marr Chase ", expected: "ja'marr_chase"},
	}

	for _, tc := range tests {
		if a := NameKey(tc.input); a != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestPlayerKey(t *testing.T) {
	if k := PlayerKey("Josh Allen", PosQB); k != "josh_allen_qb" {
		t.Errorf("unexpected key: %s", k)
	}
	// Same name at different positions must produce distinct keys.
	if PlayerKey("Josh Allen", PosQB) == PlayerKey("Josh Allen", PosWR) {
		t.Error("keys for different positions should differ")
	}
}

func TestNormalizeTeam(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "KC", expected: "KC"},
		{input: "kc", expected: "KC"},
		{input: "OAK", expected: "LV"},
		{input: "SD", expected: "LAC"},
		{input: "STL", expected: "LA"},
		{input: "LAR", expected: "LA"},
		{input: "WSH", expected: "WAS"},
		{input: "JAC", expected: "JAX"},
		{input: "", expected: TeamFA},
		{input: "N/A", expected: TeamFA},
		{input: "RETIRED", expected: "RETIRED"},
		{input: "XYZ", expected: TeamFA},
	}

	for _, tc := range tests {
		if a := NormalizeTeam(tc.input); a != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestTeamName(t *testing.T) {
	if n := TeamName("KC"); n != "Kansas City Chiefs" {
		t.Errorf("unexpected name: %s", n)
	}
	if n := TeamName("GBP"); n != "Green Bay Packers" {
		t.Errorf("alias should resolve to full name, got: %s", n)
	}
	if n := TeamName("RETIRED"); n != "RETIRED" {
		t.Errorf("non-club values pass through, got: %s", n)
	}
}
