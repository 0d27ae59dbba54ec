package cvi

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func nearPt(a, b Point) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestLine(t *testing.T) {
	l := NewLine(Pt(21, -21), Pt(-14, -14))
	if l.Vertical() {
		t.Fatal("line reported vertical")
	}
	if !near(l.Slope(), -0.2) || !near(l.Intercept(), -16.8) {
		t.Errorf("m=%v b=%v, want -0.2 -16.8", l.Slope(), l.Intercept())
	}
	if !nearPt(l.YIntercept(), Pt(0, -16.8)) {
		t.Errorf("YIntercept = %v", l.YIntercept())
	}
	if !nearPt(l.XIntercept(), Pt(-84, 0)) {
		t.Errorf("XIntercept = %v", l.XIntercept())
	}
	if l.P1() != Pt(21, -21) || l.P2() != Pt(-14, -14) {
		t.Error("defining points not kept")
	}
}

func TestLine_PassesThroughBothPoints(t *testing.T) {
	pairs := [][2]Point{
		{Pt(29, 29), Pt(21, -21)},
		{Pt(-8, 8), Pt(29, 29)},
		{Pt(-14, -14), Pt(-8, 8)},
		{Pt(0.1, 3), Pt(1e3, -7)},
	}
	for _, pr := range pairs {
		l := NewLine(pr[0], pr[1])
		for _, p := range pr {
			if !near(l.At(p.X), p.Y) {
				t.Errorf("%v: At(%v) = %v, want %v", l, p.X, l.At(p.X), p.Y)
			}
		}
		if xi := l.XIntercept(); !near(l.At(xi.X), 0) {
			t.Errorf("%v: line misses its x-intercept", l)
		}
	}
}

func TestLine_Vertical(t *testing.T) {
	l := NewLine(Pt(3, 1), Pt(3, 5))
	if !l.Vertical() {
		t.Fatal("line not reported vertical")
	}
	if !math.IsInf(l.Slope(), 1) {
		t.Errorf("Slope = %v, want +Inf", l.Slope())
	}
	if !math.IsNaN(l.Intercept()) {
		t.Errorf("Intercept = %v, want NaN", l.Intercept())
	}
	if l.XIntercept() != Pt(3, 0) {
		t.Errorf("XIntercept = %v, want [3,0]", l.XIntercept())
	}
	yi := l.YIntercept()
	if yi.X != 0 || !math.IsNaN(yi.Y) {
		t.Errorf("YIntercept = %v, want [0,NaN]", yi)
	}
	if !math.IsNaN(l.At(3)) {
		t.Error("At on a vertical line must be NaN")
	}
	if got := l.String(); got != "x = 3  xi:[3,0]  yi:[0,NaN]" {
		t.Errorf("String = %q", got)
	}
}

func TestLine_Horizontal(t *testing.T) {
	l := NewLine(Pt(10, -10), Pt(-10, -10))
	if l.Slope() != 0 || l.Intercept() != -10 {
		t.Errorf("m=%v b=%v", l.Slope(), l.Intercept())
	}
	if l.XIntercept().IsFinite() {
		t.Error("a horizontal line off the axis has no finite x-intercept")
	}
}
