package cvi

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func mark() Profile  { return NewProfile("Mark", 21, 29, 8, 14) }
func karen() Profile { return NewProfile("Karen", 29, 14, 13, 16) }

func TestProfile_AxisPoints(t *testing.T) {
	p := mark()
	tests := []struct {
		axis Axis
		want Point
	}{
		{Merchant, Pt(21, -21)},
		{Innovator, Pt(29, 29)},
		{Banker, Pt(-8, 8)},
		{Builder, Pt(-14, -14)},
	}
	for _, tt := range tests {
		if got := p.AxisPoint(tt.axis); got != tt.want {
			t.Errorf("AxisPoint(%v) = %v, want %v", tt.axis, got, tt.want)
		}
		if got := p.Score(tt.axis); got != math.Abs(tt.want.X) {
			t.Errorf("Score(%v) = %v", tt.axis, got)
		}
	}
	if !math.IsNaN(p.Score(Axis(7))) || p.AxisPoint(Axis(7)).IsFinite() {
		t.Error("unknown axis must yield NaN")
	}
}

func TestProfile_Polygons(t *testing.T) {
	p := mark()
	tests := []struct {
		axis Axis
		want Polygon
	}{
		{Merchant, Polygon{Pt(0, -16.8), Pt(21, -21), Pt(24.36, 0)}},
		{Innovator, Polygon{Pt(24.36, 0), Pt(29, 29), Pt(0, 464.0/37)}},
		{Banker, Polygon{Pt(0, 464.0/37), Pt(-8, 8), Pt(-112.0/11, 0)}},
		{Builder, Polygon{Pt(0, -16.8), Pt(-14, -14), Pt(-112.0/11, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.axis.String(), func(t *testing.T) {
			got := p.QuadrantPolygon(tt.axis)
			for i := range tt.want {
				if !nearPt(got[i], tt.want[i]) {
					t.Errorf("vertex %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestProfile_NeighbouringPolygonsShareIntercepts(t *testing.T) {
	for _, p := range []Profile{mark(), karen(), NewProfile("Even", 10, 10, 10, 10)} {
		m, i, bk, bd := p.MerchantPolygon(), p.InnovatorPolygon(), p.BankerPolygon(), p.BuilderPolygon()
		if m[2] != i[0] || i[2] != bk[0] || m[0] != bd[0] || bk[2] != bd[2] {
			t.Errorf("%v: quadrant polygons do not meet at shared intercepts", p)
		}
		for _, q := range p.Quadrants() {
			for _, v := range q.Polygon {
				if !v.IsFinite() {
					t.Errorf("%v: %v polygon has non-finite vertex %v", p, q.Axis, v)
				}
			}
		}
	}
}

func TestProfile_Quadrants(t *testing.T) {
	qs := mark().Quadrants()
	want := []Axis{Builder, Merchant, Innovator, Banker}
	if len(qs) != len(want) {
		t.Fatalf("len = %d", len(qs))
	}
	for i, a := range want {
		if qs[i].Axis != a {
			t.Errorf("quadrant %d = %v, want %v", i, qs[i].Axis, a)
		}
	}

	closed := qs[0].Polygon.Closed()
	if len(closed) != 4 || closed[0] != (Point{}) {
		t.Errorf("Closed() = %v, want origin first", closed)
	}
	if pts := qs[0].Polygon.Points(); len(pts) != 3 || pts[1] != Pt(-14, -14) {
		t.Errorf("Points() = %v", pts)
	}
}

func TestProfile_TypeScores(t *testing.T) {
	got := mark().TypeScores()
	want := TypeScores{
		Intuitive:   35,
		Independent: 43,
		Practical:   22,
		Creative:    50,
		Community:   29,
		Cognitive:   37,
	}
	if got != want {
		t.Errorf("TypeScores = %+v, want %+v", got, want)
	}
}

func TestProfile_DisplayValue(t *testing.T) {
	p := NewProfile("Avg", 25, 21.5, 10.126, 15)
	tests := map[Axis]string{
		Merchant:  "25",
		Innovator: "21.50",
		Banker:    "10.13",
		Builder:   "15",
	}
	for a, want := range tests {
		if got := p.DisplayValue(a); got != want {
			t.Errorf("DisplayValue(%v) = %q, want %q", a, got, want)
		}
	}
	if got := mark().String(); got != "CVI[Mark: 21, 29, 8, 14]" {
		t.Errorf("String = %q", got)
	}
}

func TestProfile_Check(t *testing.T) {
	if err := mark().Check(); err != nil {
		t.Errorf("Check() = %v, want nil", err)
	}
	if err := NewProfile("Edge", 0, 30, 0, 30).Check(); err != nil {
		t.Errorf("boundary scores must pass, got %v", err)
	}

	err := NewProfile("Bad", -1, 31, math.NaN(), 5).Check()
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("Check() = %v, want *RangeError", err)
	}
	if re.Profile != "Bad" || len(re.Axes) != 3 {
		t.Errorf("RangeError = %+v", re)
	}
	if msg := err.Error(); !strings.Contains(msg, "merchant, innovator, banker") || !strings.Contains(msg, "[0, 30]") {
		t.Errorf("message %q does not name the axes and bound", msg)
	}
}

func TestProfile_CheckRange(t *testing.T) {
	p := NewProfile("Wide", 50, 10, 10, 10)
	if err := p.CheckRange(100); err != nil {
		t.Errorf("CheckRange(100) = %v, want nil", err)
	}
	var re *RangeError
	if err := p.CheckRange(40); !errors.As(err, &re) || re.Max != 40 || len(re.Axes) != 1 || re.Axes[0] != Merchant {
		t.Errorf("CheckRange(40) = %v, want merchant outside [0, 40]", err)
	}
}

func TestAxis(t *testing.T) {
	tests := []struct {
		axis        Axis
		name, title string
		value       string
		sign        Sign
	}{
		{Merchant, "merchant", "Merchant", "Love", Sign{1, -1}},
		{Innovator, "innovator", "Innovator", "Wisdom", Sign{1, 1}},
		{Banker, "banker", "Banker", "Knowledge", Sign{-1, 1}},
		{Builder, "builder", "Builder", "Power", Sign{-1, -1}},
	}
	for _, tt := range tests {
		if tt.axis.String() != tt.name || tt.axis.Title() != tt.title ||
			tt.axis.CoreValue() != tt.value || tt.axis.Quadrant() != tt.sign {
			t.Errorf("%d: got %s %s %s %v", tt.axis, tt.axis, tt.axis.Title(), tt.axis.CoreValue(), tt.axis.Quadrant())
		}
		got, err := ParseAxis(" " + strings.ToUpper(tt.name) + " ")
		if err != nil || got != tt.axis {
			t.Errorf("ParseAxis(%q) = %v, %v", tt.name, got, err)
		}
	}
	if _, err := ParseAxis("dreamer"); err == nil {
		t.Error("ParseAxis accepted an unknown axis")
	}
	if got := Axis(9).String(); got != "Axis(9)" {
		t.Errorf("String = %q", got)
	}
	if Axis(9).CoreValue() != "" || Axis(9).Quadrant() != (Sign{}) {
		t.Error("unknown axis must have no value and no quadrant")
	}
}
