package cvi

import (
	"math"
	"testing"
)

func TestPoint(t *testing.T) {
	p := Pt(3, -4)
	q := p.Copy()
	q.X = 9
	if p.X != 3 {
		t.Error("Copy must not alias the original")
	}
	if got := p.Add(Pt(1, 1)); got != Pt(4, -3) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(Pt(1, 1)); got != Pt(2, -5) {
		t.Errorf("Sub = %v", got)
	}
	if got := p.Mul(2); got != Pt(6, -8) {
		t.Errorf("Mul = %v", got)
	}
	if got := p.String(); got != "[3,-4]" {
		t.Errorf("String = %q", got)
	}
	if got := (ScreenPoint{X: 1.5, Y: 2}).String(); got != "(1.5,2)" {
		t.Errorf("ScreenPoint.String = %q", got)
	}
}

func TestPoint_IsFinite(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(1, 2), true},
		{Pt(0, math.NaN()), false},
		{Pt(math.Inf(1), 0), false},
		{Pt(0, math.Inf(-1)), false},
	}
	for _, tt := range tests {
		if got := tt.p.IsFinite(); got != tt.want {
			t.Errorf("%v.IsFinite() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestFitTransform(t *testing.T) {
	tr := FitTransform(800, 600, 30)
	if tr != NewTransform(10, 400, 300) {
		t.Fatalf("FitTransform = %+v", tr)
	}

	tests := []struct {
		in   Point
		want ScreenPoint
	}{
		{Pt(0, 0), ScreenPoint{X: 400, Y: 300}},
		{Pt(30, -30), ScreenPoint{X: 700, Y: 0}},
		{Pt(-30, 30), ScreenPoint{X: 100, Y: 600}},
	}
	for _, tt := range tests {
		if got := tr.Project(tt.in); got != tt.want {
			t.Errorf("Project(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got := Project(tt.in, tr); got != tt.want {
			t.Errorf("Project(%v, t) = %v, want %v", tt.in, got, tt.want)
		}
		if got := tr.Unproject(tt.want); got != tt.in {
			t.Errorf("Unproject(%v) = %v, want %v", tt.want, got, tt.in)
		}
	}
	if got := tr.Length(2.5); got != 25 {
		t.Errorf("Length = %v, want 25", got)
	}
}

func TestTransform_ProjectAll(t *testing.T) {
	pts := []Point{Pt(1, 1), Pt(-1, 2)}
	got := NewTransform(2, 10, 20).ProjectAll(pts)
	want := []ScreenPoint{{X: 12, Y: 22}, {X: 8, Y: 24}}
	if len(got) != len(want) {
		t.Fatalf("len = %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if pts[0] != Pt(1, 1) {
		t.Error("ProjectAll must not modify its input")
	}
}

func TestTransform_Identity(t *testing.T) {
	if got := IdentityTransform().Project(Pt(5, -7)); got != (ScreenPoint{X: 5, Y: -7}) {
		t.Errorf("identity Project = %v", got)
	}
	if got := (Transform{}).Unproject(ScreenPoint{X: 3, Y: 3}); got != (Point{}) {
		t.Errorf("zero-scale Unproject = %v, want origin", got)
	}
}
