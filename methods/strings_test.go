package methods

import "testing"

func TestPositionKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Secondary Outer", "secondaryouter"},
		{"Primary", "primary"},
		{"  Odd  Spacing ", "oddspacing"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := PositionKey(tc.in); got != tc.want {
			t.Errorf("PositionKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsStringInSlice(t *testing.T) {
	if !IsStringInSlice("VB", []string{"VB", "LHB"}) {
		t.Error("expected VB to be found")
	}
	if IsStringInSlice("vb", []string{"VB", "LHB"}) {
		t.Error("membership is case sensitive")
	}
	if IsStringInSlice("VB", nil) {
		t.Error("nil slice contains nothing")
	}
}
