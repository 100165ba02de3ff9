package geom

import "testing"

func TestRectContainsPointIsHalfOpen(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 5, Height: 3}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 10, 20, true},
		{"inside", 12, 21, true},
		{"last column", 14, 22, true},
		{"right edge", 15, 21, false},
		{"bottom edge", 12, 23, false},
		{"left of rect", 9, 21, false},
		{"above rect", 12, 19, false},
	}
	for _, tt := range tests {
		if got := r.ContainsPoint(tt.x, tt.y); got != tt.want {
			t.Fatalf("%s: ContainsPoint(%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: -4, Y: 6, Width: 10, Height: 2}
	if r.Right() != 6 || r.Bottom() != 8 {
		t.Fatalf("Right/Bottom = %d/%d, want 6/8", r.Right(), r.Bottom())
	}
	if r.Empty() {
		t.Fatal("expected non-empty rect")
	}
	if !(Rect{Width: 0, Height: 5}).Empty() {
		t.Fatal("zero-width rect should be empty")
	}
}

func TestSizeArea(t *testing.T) {
	if got := (Size{Width: 3, Height: 4}).Area(); got != 12 {
		t.Fatalf("Area() = %d, want 12", got)
	}
	if got := (Size{Width: -3, Height: 4}).Area(); got != 0 {
		t.Fatalf("Area() of negative size = %d, want 0", got)
	}
}

func TestFullScreen(t *testing.T) {
	s := Size{Width: 1920, Height: 1080}
	r := FullScreen(s)
	if r.X != 0 || r.Y != 0 || r.Size() != s {
		t.Fatalf("FullScreen = %+v", r)
	}
}
