package recording

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gogpu/cvi"
)

// mockBackend is a minimal backend implementation for testing.
// It logs every call so playback order can be asserted.
type mockBackend struct {
	name       string
	beginCalls int
	endCalls   int
	width      int
	height     int
	calls      []string
	brushes    []cvi.Brush
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(width, height int) error {
	b.beginCalls++
	b.width = width
	b.height = height
	return nil
}

func (b *mockBackend) End() error {
	b.endCalls++
	return nil
}

func (b *mockBackend) BeginLayer(name string) { b.calls = append(b.calls, "begin:"+name) }
func (b *mockBackend) EndLayer()              { b.calls = append(b.calls, "end") }

func (b *mockBackend) FillRect(_ Rect, brush cvi.Brush) {
	b.calls = append(b.calls, "rect")
	b.brushes = append(b.brushes, brush)
}

func (b *mockBackend) FillPolygon(pts []cvi.ScreenPoint, brush cvi.Brush) {
	b.calls = append(b.calls, fmt.Sprintf("polygon%d", len(pts)))
	b.brushes = append(b.brushes, brush)
}

func (b *mockBackend) StrokeLine(_, _ cvi.ScreenPoint, _ cvi.Stroke) {
	b.calls = append(b.calls, "line")
}

func (b *mockBackend) FillCircle(_ cvi.ScreenPoint, _ float64, brush cvi.Brush) {
	b.calls = append(b.calls, "circle")
	b.brushes = append(b.brushes, brush)
}

func (b *mockBackend) DrawText(s string, _ cvi.ScreenPoint, _ cvi.TextStyle) {
	b.calls = append(b.calls, "text:"+s)
}

// resetRegistry clears all registered backends for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends = make(map[string]BackendFactory)
	extensions = make(map[string]string)
}

func TestRegisterAndNewBackend(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	// Register a test backend
	Register("test", func() Backend {
		return newMockBackend("test")
	})

	backend, err := NewBackend("test")
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}

	mock, ok := backend.(*mockBackend)
	if !ok {
		t.Fatal("backend is not a mockBackend")
	}
	if mock.name != "test" {
		t.Errorf("got name %q, want %q", mock.name, "test")
	}
}

func TestNewBackendUnknown(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	_, err := NewBackend("nonexistent")
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if !strings.Contains(err.Error(), "forgotten import") {
		t.Errorf("error %q should hint at a forgotten import", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("dup", func() Backend { return newMockBackend("dup") })

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup", func() Backend { return newMockBackend("dup") })
}

func TestRegisterNilFactoryPanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on nil factory")
		}
	}()
	Register("nil", nil)
}

func TestRegisterDuplicateExtensionPanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("a", func() Backend { return newMockBackend("a") }, ".out")

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on shared extension")
		}
		if IsRegistered("b") {
			t.Error("backend b registered despite the panic")
		}
	}()
	Register("b", func() Backend { return newMockBackend("b") }, "OUT")
}

func TestBackendFor(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("vec", func() Backend { return newMockBackend("vec") }, ".vec")
	Register("pix", func() Backend { return newMockBackend("pix") }, "pix", ".PX")

	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"team.vec", "vec", false},
		{"out/TEAM.PIX", "pix", false},
		{"a.b.px", "pix", false},
		{"noext", "", true},
		{"team.pdf", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			b, err := BackendFor(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("BackendFor failed: %v", err)
			}
			if got := b.(*mockBackend).name; got != tt.want {
				t.Errorf("BackendFor(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}

	if got := Extensions("pix"); len(got) != 2 || got[0] != ".pix" || got[1] != ".px" {
		t.Errorf("Extensions(pix) = %v, want [.pix .px]", got)
	}
}

func TestUnregister(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("temp", func() Backend { return newMockBackend("temp") }, ".tmp")
	if !IsRegistered("temp") {
		t.Fatal("temp should be registered")
	}

	Unregister("temp")
	if IsRegistered("temp") {
		t.Error("temp should be unregistered")
	}
	if _, err := BackendFor("x.tmp"); err == nil {
		t.Error("extension survived Unregister")
	}

	// Unregistering twice is a no-op.
	Unregister("temp")
}

func TestBackendsSorted(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	for _, name := range []string{"svg", "jpeg", "png"} {
		Register(name, func() Backend { return newMockBackend(name) })
	}

	got := Backends()
	want := []string{"jpeg", "png", "svg"}
	if len(got) != len(want) {
		t.Fatalf("Backends() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Backends()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if Count() != 3 {
		t.Errorf("Count() = %d, want 3", Count())
	}
}

func TestMustBackendPanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for unknown backend")
		}
	}()
	MustBackend("missing")
}
