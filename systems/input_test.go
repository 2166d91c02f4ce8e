package systems

import "testing"

func TestStickDisplacement(t *testing.T) {
	tests := []struct {
		x, center, radius, want float64
	}{
		{x: 100, center: 100, radius: 64, want: 0},
		{x: 80, center: 100, radius: 64, want: -20},
		{x: 300, center: 100, radius: 64, want: 64},
		{x: 0, center: 100, radius: 64, want: -64},
	}
	for _, tt := range tests {
		if got := stickDisplacement(tt.x, tt.center, tt.radius); got != tt.want {
			t.Errorf("stickDisplacement(%v, %v, %v) = %v, want %v", tt.x, tt.center, tt.radius, got, tt.want)
		}
	}
}

func TestGamepadDisplacement(t *testing.T) {
	if got := gamepadDisplacement(-0.5, 64); got != -32 {
		t.Fatalf("got %v, want -32", got)
	}
	if got := gamepadDisplacement(1.4, 64); got != 64 {
		t.Fatalf("got %v, want 64", got)
	}
}

func TestInStickZone(t *testing.T) {
	if inStickZone(100, 960) {
		t.Fatalf("upper half should fire")
	}
	if !inStickZone(900, 960) {
		t.Fatalf("lower half should steer")
	}
}
