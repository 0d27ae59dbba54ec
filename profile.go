package cvi

import (
	"fmt"
	"math"
	"strconv"
)

// MaxScore is the display-scale constant bounding the nominal coordinate plane.
const MaxScore = 30

// Profile is one person's Core Values Index.
//
// A Profile is a plain value: its methods never modify it and every derived
// quantity is recomputed on each call. Scores are not validated; see Check.
type Profile struct {
	Name      string
	Merchant  float64
	Innovator float64
	Banker    float64
	Builder   float64
}

// NewProfile creates a profile from scores in canonical axis order.
func NewProfile(name string, merchant, innovator, banker, builder float64) Profile {
	return Profile{
		Name:      name,
		Merchant:  merchant,
		Innovator: innovator,
		Banker:    banker,
		Builder:   builder,
	}
}

// Score returns the score of the given axis.
func (p Profile) Score(a Axis) float64 {
	switch a {
	case Merchant:
		return p.Merchant
	case Innovator:
		return p.Innovator
	case Banker:
		return p.Banker
	case Builder:
		return p.Builder
	}
	return math.NaN()
}

// DisplayValue formats the score of an axis for a label: integral scores
// print without decimals, anything else with two.
func (p Profile) DisplayValue(a Axis) string {
	return FormatScore(p.Score(a))
}

// FormatScore prints integral values without decimals and anything else
// with two.
func FormatScore(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// String returns "CVI[name: merchant, innovator, banker, builder]".
func (p Profile) String() string {
	return fmt.Sprintf("CVI[%s: %s, %s, %s, %s]", p.Name,
		FormatScore(p.Merchant), FormatScore(p.Innovator),
		FormatScore(p.Banker), FormatScore(p.Builder))
}

// Axis vertices

// MerchantPoint returns (merchant, -merchant).
func (p Profile) MerchantPoint() Point { return Point{X: p.Merchant, Y: -p.Merchant} }

// InnovatorPoint returns (innovator, innovator).
func (p Profile) InnovatorPoint() Point { return Point{X: p.Innovator, Y: p.Innovator} }

// BuilderPoint returns (-builder, -builder).
func (p Profile) BuilderPoint() Point { return Point{X: -p.Builder, Y: -p.Builder} }

// BankerPoint returns (-banker, banker).
func (p Profile) BankerPoint() Point { return Point{X: -p.Banker, Y: p.Banker} }

// AxisPoint returns the vertex of the given axis.
func (p Profile) AxisPoint(a Axis) Point {
	switch a {
	case Merchant:
		return p.MerchantPoint()
	case Innovator:
		return p.InnovatorPoint()
	case Banker:
		return p.BankerPoint()
	case Builder:
		return p.BuilderPoint()
	}
	return Point{X: math.NaN(), Y: math.NaN()}
}

// Boundary lines between adjacent axis vertices. The point order is fixed:
// it decides which quadrant takes which intercept.

// MerchantBuilderLine is the boundary crossing the negative y-axis.
func (p Profile) MerchantBuilderLine() Line {
	return NewLine(p.MerchantPoint(), p.BuilderPoint())
}

// BuilderBankerLine is the boundary crossing the negative x-axis.
func (p Profile) BuilderBankerLine() Line {
	return NewLine(p.BuilderPoint(), p.BankerPoint())
}

// BankerInnovatorLine is the boundary crossing the positive y-axis.
func (p Profile) BankerInnovatorLine() Line {
	return NewLine(p.BankerPoint(), p.InnovatorPoint())
}

// InnovatorMerchantLine is the boundary crossing the positive x-axis.
func (p Profile) InnovatorMerchantLine() Line {
	return NewLine(p.InnovatorPoint(), p.MerchantPoint())
}

// Polygon is a quadrant polygon: incoming boundary intercept, axis vertex,
// outgoing boundary intercept. The shape is closed through the origin.
type Polygon [3]Point

// Points returns the polygon vertices as a slice.
func (pg Polygon) Points() []Point {
	return []Point{pg[0], pg[1], pg[2]}
}

// Closed returns the filled outline: the origin followed by the three vertices.
func (pg Polygon) Closed() []Point {
	return []Point{{}, pg[0], pg[1], pg[2]}
}

// MerchantPolygon returns the merchant quadrant polygon.
func (p Profile) MerchantPolygon() Polygon {
	return Polygon{
		p.MerchantBuilderLine().YIntercept(),
		p.MerchantPoint(),
		p.InnovatorMerchantLine().XIntercept(),
	}
}

// InnovatorPolygon returns the innovator quadrant polygon.
func (p Profile) InnovatorPolygon() Polygon {
	return Polygon{
		p.InnovatorMerchantLine().XIntercept(),
		p.InnovatorPoint(),
		p.BankerInnovatorLine().YIntercept(),
	}
}

// BankerPolygon returns the banker quadrant polygon.
func (p Profile) BankerPolygon() Polygon {
	return Polygon{
		p.BankerInnovatorLine().YIntercept(),
		p.BankerPoint(),
		p.BuilderBankerLine().XIntercept(),
	}
}

// BuilderPolygon returns the builder quadrant polygon.
func (p Profile) BuilderPolygon() Polygon {
	return Polygon{
		p.MerchantBuilderLine().YIntercept(),
		p.BuilderPoint(),
		p.BuilderBankerLine().XIntercept(),
	}
}

// QuadrantPolygon returns the polygon of the given axis.
func (p Profile) QuadrantPolygon(a Axis) Polygon {
	switch a {
	case Merchant:
		return p.MerchantPolygon()
	case Innovator:
		return p.InnovatorPolygon()
	case Banker:
		return p.BankerPolygon()
	default:
		return p.BuilderPolygon()
	}
}

// Quadrant pairs an axis with its polygon.
type Quadrant struct {
	Axis    Axis
	Polygon Polygon
}

// Quadrants returns the four quadrant polygons in draw order.
func (p Profile) Quadrants() []Quadrant {
	order := DrawOrder()
	out := make([]Quadrant, len(order))
	for i, a := range order {
		out[i] = Quadrant{Axis: a, Polygon: p.QuadrantPolygon(a)}
	}
	return out
}

// Type scores are pairwise sums of axis scores.

// IntuitiveType returns builder + merchant.
func (p Profile) IntuitiveType() float64 { return p.Builder + p.Merchant }

// IndependentType returns builder + innovator.
func (p Profile) IndependentType() float64 { return p.Builder + p.Innovator }

// PracticalType returns builder + banker.
func (p Profile) PracticalType() float64 { return p.Builder + p.Banker }

// CreativeType returns merchant + innovator.
func (p Profile) CreativeType() float64 { return p.Merchant + p.Innovator }

// CommunityType returns merchant + banker.
func (p Profile) CommunityType() float64 { return p.Merchant + p.Banker }

// CognitiveType returns innovator + banker.
func (p Profile) CognitiveType() float64 { return p.Innovator + p.Banker }

// TypeScores holds the six derived pairwise scores of a profile.
type TypeScores struct {
	Intuitive   float64
	Independent float64
	Practical   float64
	Creative    float64
	Community   float64
	Cognitive   float64
}

// TypeScores returns all six derived scores.
func (p Profile) TypeScores() TypeScores {
	return TypeScores{
		Intuitive:   p.IntuitiveType(),
		Independent: p.IndependentType(),
		Practical:   p.PracticalType(),
		Creative:    p.CreativeType(),
		Community:   p.CommunityType(),
		Cognitive:   p.CognitiveType(),
	}
}

// Check reports scores outside [0, MaxScore] or not finite.
// Profiles are never checked on construction; callers decide what to do
// with the returned *RangeError.
func (p Profile) Check() error {
	return p.CheckRange(MaxScore)
}

// CheckRange is Check against a diagram whose axes run to maxScore.
func (p Profile) CheckRange(maxScore float64) error {
	var bad []Axis
	for _, a := range Axes() {
		s := p.Score(a)
		if math.IsNaN(s) || s < 0 || s > maxScore {
			bad = append(bad, a)
		}
	}
	if len(bad) == 0 {
		return nil
	}
	return &RangeError{Profile: p.Name, Axes: bad, Max: maxScore}
}
