// pkg/physics/collision_test.go
package physics

import (
	"testing"
)

func TestCircle_ContainsPoint(t *testing.T) {
	earth := Circle{Center: Vector2D{}, Radius: 6371e3}

	tests := []struct {
		name     string
		circle   Circle
		point    Vector2D
		expected bool
	}{
		{
			name:     "center_is_inside",
			circle:   earth,
			point:    Vector2D{},
			expected: true,
		},
		{
			name:     "deep_inside",
			circle:   earth,
			point:    Vector2D{X: 1000e3, Y: -2000e3},
			expected: true,
		},
		{
			name:     "just_under_the_surface",
			circle:   earth,
			point:    Vector2D{X: 6371e3 - 1, Y: 0},
			expected: true,
		},
		{
			name:     "exactly_on_the_rim_is_outside",
			circle:   earth,
			point:    Vector2D{X: 6371e3, Y: 0},
			expected: false,
		},
		{
			name:     "low_orbit_is_outside",
			circle:   earth,
			point:    Vector2D{X: 0, Y: 6771e3},
			expected: false,
		},
		{
			name:     "offset_center",
			circle:   Circle{Center: Vector2D{X: 384400e3, Y: 0}, Radius: 1737.1e3},
			point:    Vector2D{X: 384400e3 + 1000e3, Y: 500e3},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.circle.ContainsPoint(tt.point); got != tt.expected {
				t.Errorf("ContainsPoint(%v) = %v, expected %v", tt.point, got, tt.expected)
			}
		})
	}
}

func BenchmarkCircle_ContainsPoint(b *testing.B) {
	c := Circle{Center: Vector2D{X: 384400e3, Y: 0}, Radius: 1737.1e3}
	p := Vector2D{X: 384400e3 + 1500e3, Y: 200e3}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.ContainsPoint(p)
	}
}
