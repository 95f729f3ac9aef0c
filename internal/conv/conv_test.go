package conv

import (
	"math"
	"testing"
)

func TestEncodedLen(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 0},
		{1, 2},
		{3, 6},
		{math.MaxInt / 2, math.MaxInt - 1},
	}
	for _, tc := range tests {
		if got := EncodedLen(tc.n); got != tc.want {
			t.Errorf("EncodedLen(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestPrefixedLen(t *testing.T) {
	if got := PrefixedLen(4); got != 10 {
		t.Errorf("PrefixedLen(4) = %d, want 10", got)
	}
	if got := PrefixedLen(0); got != 2 {
		t.Errorf("PrefixedLen(0) = %d, want 2", got)
	}
}

func TestDecodedLen(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 0},
		{2, 1},
		{7, 3},
		{64, 32},
	}
	for _, tc := range tests {
		if got := DecodedLen(tc.n); got != tc.want {
			t.Errorf("DecodedLen(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestOverflowPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"encoded_negative", func() { EncodedLen(-1) }},
		{"encoded_overflow", func() { EncodedLen(math.MaxInt/2 + 1) }},
		{"prefixed_overflow", func() { PrefixedLen(math.MaxInt / 2) }},
		{"decoded_negative", func() { DecodedLen(-2) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tc.fn()
		})
	}
}
