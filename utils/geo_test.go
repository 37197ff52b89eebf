// File: /utils/geo_test.go
package utils

import "testing"

func TestDistance(t *testing.T) {
	// Tampa to St. Petersburg is roughly 27-28 km.
	d := Distance(27.9506, -82.4572, 27.7676, -82.6403)
	if d < 25 || d > 31 {
		t.Errorf("Distance = %v km, want roughly 28", d)
	}

	if d := Distance(27.95, -82.46, 27.95, -82.46); d > 1e-9 {
		t.Errorf("Distance to self = %v, want 0", d)
	}
}
