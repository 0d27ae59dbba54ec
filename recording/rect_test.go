package recording

import (
	"math"
	"testing"

	"github.com/gogpu/cvi"
)

func TestNewRect(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if r.X() != 10 || r.Y() != 20 {
		t.Errorf("origin = (%v, %v), want (10, 20)", r.X(), r.Y())
	}
	if r.Width() != 30 || r.Height() != 40 {
		t.Errorf("size = %vx%v, want 30x40", r.Width(), r.Height())
	}
	if r.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if !r.Contains(25, 45) {
		t.Error("Contains(25, 45) = false, want true")
	}
	if r.Contains(5, 45) {
		t.Error("Contains(5, 45) = true, want false")
	}
}

func TestBoundsOf(t *testing.T) {
	tests := []struct {
		name string
		pts  []cvi.ScreenPoint
		want Rect
	}{
		{
			name: "triangle",
			pts:  []cvi.ScreenPoint{{X: 1, Y: 5}, {X: 4, Y: 2}, {X: 3, Y: 9}},
			want: Rect{MinX: 1, MinY: 2, MaxX: 4, MaxY: 9},
		},
		{
			name: "skips non-finite",
			pts:  []cvi.ScreenPoint{{X: 1, Y: 1}, {X: math.NaN(), Y: 50}, {X: 2, Y: math.Inf(1)}, {X: 3, Y: 3}},
			want: Rect{MinX: 1, MinY: 1, MaxX: 3, MaxY: 3},
		},
		{
			name: "empty",
			pts:  nil,
			want: Rect{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoundsOf(tt.pts); got != tt.want {
				t.Errorf("BoundsOf() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_Unit(t *testing.T) {
	r := NewRect(100, 200, 50, 100)

	tests := []struct {
		x, y  float64
		u, v  float64
	}{
		{100, 200, 0, 0},
		{150, 300, 1, 1},
		{125, 250, 0.5, 0.5},
	}
	for _, tt := range tests {
		u, v := r.Unit(tt.x, tt.y)
		if u != tt.u || v != tt.v {
			t.Errorf("Unit(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, u, v, tt.u, tt.v)
		}
	}

	flat := NewRect(0, 10, 20, 0)
	if u, v := flat.Unit(10, 10); u != 0.5 || v != 0 {
		t.Errorf("degenerate Unit = (%v, %v), want (0.5, 0)", u, v)
	}
}

func TestFinitePoints(t *testing.T) {
	nan := math.NaN()
	pts := []cvi.ScreenPoint{{X: 1, Y: 1}, {X: nan, Y: 2}, {X: 3, Y: math.Inf(-1)}, {X: 4, Y: 4}}
	got := FinitePoints(pts)
	want := []cvi.ScreenPoint{{X: 1, Y: 1}, {X: 4, Y: 4}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("FinitePoints = %v, want %v", got, want)
	}
	if !math.IsNaN(pts[1].X) {
		t.Error("FinitePoints modified its input")
	}

	clean := []cvi.ScreenPoint{{X: 1, Y: 2}, {X: 3, Y: 4}}
	if got := FinitePoints(clean); &got[0] != &clean[0] {
		t.Error("FinitePoints copied an all-finite slice")
	}
	if Finite(cvi.ScreenPoint{X: nan}) || !Finite(cvi.ScreenPoint{X: 1, Y: 2}) {
		t.Error("Finite misreports")
	}
}
