package parsing

import "testing"

func TestParsePair(t *testing.T) {
	tests := []struct {
		input     string
		wantNum   int
		wantTotal int
		wantErr   bool
	}{
		{"3/12", 3, 12, false},
		{"5", 5, 0, false},
		{"0", 0, 0, false},
		{" 3 / 12 ", 3, 12, false},
		{"7/", 7, 0, false},
		{"5/0", 5, 0, false},
		{"12/12", 12, 12, false},
		{"", 0, 0, true},
		{"abc", 0, 0, true},
		{"-1", 0, 0, true},
		{"3/-2", 0, 0, true},
		{"a/b", 0, 0, true},
		{"1.5", 0, 0, true},
	}

	for _, tc := range tests {
		num, total, err := ParsePair(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParsePair(%q) expected error, got (%d, %d)", tc.input, num, total)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePair(%q) error = %v", tc.input, err)
			continue
		}
		if num != tc.wantNum || total != tc.wantTotal {
			t.Errorf("ParsePair(%q) = (%d, %d), want (%d, %d)", tc.input, num, total, tc.wantNum, tc.wantTotal)
		}
	}
}

func TestFormatPair(t *testing.T) {
	tests := []struct {
		num   int
		total int
		want  string
	}{
		{3, 12, "3/12"},
		{5, 0, "5"},
		{0, 0, "0"},
		{1, 1, "1/1"},
	}

	for _, tc := range tests {
		got := FormatPair(tc.num, tc.total)
		if got != tc.want {
			t.Errorf("FormatPair(%d, %d) = %q, want %q", tc.num, tc.total, got, tc.want)
		}
	}
}

func TestPair_RoundTrip(t *testing.T) {
	pairs := [][2]int{{3, 12}, {5, 0}, {1, 1}, {99, 100}}

	for _, p := range pairs {
		num, total, err := ParsePair(FormatPair(p[0], p[1]))
		if err != nil {
			t.Errorf("round trip (%d, %d) error = %v", p[0], p[1], err)
			continue
		}
		if num != p[0] || total != p[1] {
			t.Errorf("round trip (%d, %d) = (%d, %d)", p[0], p[1], num, total)
		}
	}
}
