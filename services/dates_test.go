package services

import "testing"

func TestNormalizeSignatureDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-01-15", "2024-01-15"},
		{"  2024-01-15  ", "2024-01-15"},
		{"", ""},
		{"   ", ""},
		{"not-a-date", "not-a-date"},
		{"15/01/2024", "15/01/2024"},
		{"2024-01-15T10:30:00", "2024-01-15T10:30:00"},
		{"2024-01-15 10:30:00", "2024-01-15T10:30:00"},
		{"definitely not a date at all", "definitely not a date at all"},
	}
	for _, tc := range cases {
		got := NormalizeSignatureDate(tc.in)
		if got != tc.want {
			t.Errorf("NormalizeSignatureDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
