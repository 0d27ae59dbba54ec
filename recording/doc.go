// Package recording captures Core Values Index renders as replayable
// drawing commands.
//
// The Recorder implements cvi.Surface, so an Engine draws straight into it.
// The captured commands can then be played back to different backends,
// which is how SVG and raster export share one render.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: Captures primitives as commands inside a tree of named layers
//   - Recording: Stores the flattened, z-ordered commands and their brushes
//   - Backend: Renders commands to a specific output format
//
// # Basic Usage
//
//	rec := recording.NewRecorder(700, 700)
//	if err := cvi.NewEngine().Render(rec, cvi.Group(g)); err != nil {
//	    return err
//	}
//	r := rec.FinishRecording()
//
// # Playback to Backends
//
//	import _ "github.com/gogpu/cvi/recording/backends/svg"
//
//	svg, _ := recording.NewBackend("svg")
//	if err := r.Playback(svg); err != nil {
//	    return err
//	}
//	svg.(recording.FileBackend).SaveToFile("team.svg")
//
// BackendFor picks the backend from a file extension instead:
//
//	b, err := recording.BackendFor("team.png")
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to automatically register it:
//
//	import (
//	    _ "github.com/gogpu/cvi/recording/backends/raster" // "png", "jpeg"
//	    _ "github.com/gogpu/cvi/recording/backends/svg"    // "svg"
//	)
//
// # Layers
//
// Each layer is flattened into a BeginLayer/EndLayer pair around its
// contents. A sublayer sits above whatever its parent held when it was
// opened, and below anything drawn into the parent afterwards.
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. A Recording is immutable once
// FinishRecording returns and may be played back from several goroutines.
package recording
