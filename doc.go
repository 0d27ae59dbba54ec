// Package cvi draws Core Values Index diagrams.
//
// # Overview
//
// A Core Values Index profile has four scores: merchant, innovator, banker
// and builder. Each score becomes a vertex on its own diagonal of the
// coordinate plane, and the lines joining neighbouring vertices cut the axes
// at the intercepts that bound four quadrant polygons. The Engine fills
// those polygons with per-axis gradients and stacks backgrounds, reference
// markers, borders, labels and axis lines on top of each other.
//
// # Quick Start
//
//	mark := cvi.NewProfile("Mark", 21, 29, 8, 14)
//	karen := cvi.NewProfile("Karen", 29, 14, 13, 16)
//	group := cvi.NewGroupProfile("Nicholsons", []cvi.Profile{mark, karen})
//
//	rec := recording.NewRecorder(700, 700)
//	if err := cvi.NewEngine().Render(rec, cvi.Group(group)); err != nil {
//	    return err
//	}
//
//	svg, _ := recording.NewBackend("svg")
//	rec.FinishRecording().Playback(svg)
//
// # Coordinate System
//
// Geometry is built in model space, where MaxScore (30) bounds the nominal
// plane, and projected onto the surface with a Transform at draw time:
//   - Origin at the surface centre
//   - X increases right
//   - Y increases down, so the merchant quadrant (+,-) is top right
//
// # Layering
//
// A render draws five layers, bottom to top: backgrounds, overlay profiles,
// the frame profile, text, and axes. The frame gets border strokes only
// when overlays exist, which tells "one person" apart from "a person over
// their group".
package cvi

// Version is the current version of the library.
const Version = "0.1.0"
