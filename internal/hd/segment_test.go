package hd

import "testing"

func TestSegmentIndex(t *testing.T) {
	cases := []struct {
		segment string
		want    uint32
	}{
		{"5", 0x00000005},
		{"5'", 0x80000005},
		{"0", 0},
		{"0'", 0x80000000},
		{"44'", 0x8000002c},
		{"354'", 0x80000162},
		{"2147483647", 0x7fffffff},
		{"abc", 0},          // unparseable digits default to 0
		{"xyz'", 0x80000000}, // leniency applies inside hardened segments too
		{"", 0},
		{"4294967296", 0}, // overflows uint32, treated as unparseable
	}

	for _, tc := range cases {
		if got := segmentIndex(tc.segment); got != tc.want {
			t.Errorf("segmentIndex(%q) = %#x, want %#x", tc.segment, got, tc.want)
		}
	}
}
