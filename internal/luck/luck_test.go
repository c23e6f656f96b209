package luck

import (
	"fmt"
	"testing"
)

func TestLuckDeterministic(t *testing.T) {
	keys := []string{"", "0:0", "3:-2", "3:-2:count", "a very long key with spaces"}
	for _, k := range keys {
		a := Luck(k)
		b := Luck(k)
		if a != b {
			t.Errorf("Luck(%q) not stable: %v != %v", k, a, b)
		}
		if a < 0 || a >= 1 {
			t.Errorf("Luck(%q) = %v, expected value in [0,1)", k, a)
		}
	}
}

func TestLuckSuffixIndependent(t *testing.T) {
	// Presence and count draws use different keys and must not be equal.
	same := 0
	for i := 0; i < 100; i++ {
		k := fmt.Sprintf("%d:%d", i, -i)
		if Luck(k) == Luck(k+":count") {
			same++
		}
	}
	if same > 0 {
		t.Errorf("Expected suffixed keys to differ, %d collisions", same)
	}
}

func TestLuckRoughlyUniform(t *testing.T) {
	const n = 20000
	buckets := make([]int, 10)
	for i := 0; i < n; i++ {
		v := Luck(fmt.Sprintf("%d:%d", i%143, i/143))
		buckets[int(v*10)]++
	}
	for i, c := range buckets {
		// Expect about n/10 per bucket; allow a generous 20% drift.
		if c < n/10*8/10 || c > n/10*12/10 {
			t.Errorf("bucket %d has %d samples, expected about %d", i, c, n/10)
		}
	}
}

func TestIntn(t *testing.T) {
	tests := []struct {
		key string
		n   int
	}{
		{"0:0", 1},
		{"0:0", 3},
		{"5:7:count", 3},
		{"x", 100},
	}

	for _, tc := range tests {
		v := Intn(tc.key, tc.n)
		if v < 0 || v >= tc.n {
			t.Errorf("Intn(%q, %d) = %d, out of range", tc.key, tc.n, v)
		}
		if v != Intn(tc.key, tc.n) {
			t.Errorf("Intn(%q, %d) not stable", tc.key, tc.n)
		}
	}

	if Intn("k", 0) != 0 {
		t.Error("Intn with n=0 should be 0")
	}
}
