package utils

import "testing"

func TestValidateHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"#3366cc", true},
		{"#AABBCC", true},
		{"#000000", true},
		{"3366cc", false},
		{"#fff", false},
		{"#3366cg", false},
		{"#3366cc0", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := ValidateHexColor(tc.in); got != tc.want {
			t.Fatalf("ValidateHexColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"+14155552671", true},
		{"(415) 555-2671", true},
		{"415-555-2671", true},
		{"+0123", false},
		{"not a phone", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := ValidatePhone(tc.in); got != tc.want {
			t.Fatalf("ValidatePhone(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
