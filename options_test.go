package cvi

import "testing"

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine()
	if e.opts.maxScore != MaxScore || !e.opts.labels || !e.opts.markers {
		t.Errorf("defaults = %+v", e.opts)
	}
	if e.Theme() != DefaultTheme() {
		t.Error("default engine must use DefaultTheme")
	}
}

func TestEngineOptions(t *testing.T) {
	th := DefaultTheme()
	th.FontFamily = "Go"

	e := NewEngine(WithTheme(th), WithMaxScore(40), WithLabels(false), WithMarkers(false))
	if e.Theme().FontFamily != "Go" {
		t.Error("WithTheme not applied")
	}
	if e.opts.maxScore != 40 || e.opts.labels || e.opts.markers {
		t.Errorf("options = %+v", e.opts)
	}

	for _, bad := range []float64{0, -5} {
		if got := NewEngine(WithMaxScore(bad)).opts.maxScore; got != MaxScore {
			t.Errorf("WithMaxScore(%v) = %v, want default", bad, got)
		}
	}
}
