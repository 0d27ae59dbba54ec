package text

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// It holds the font parsed twice: once for shaping with go-text/typesetting
// and once for rasterizing with golang.org/x/image.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	data   []byte
	shaped *font.Font    // read-only, safe for concurrent use
	glyphs *opentype.Font
	name   string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	face, err := font.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	glyphs, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{
		data:   dataCopy,
		shaped: face.Font,
		glyphs: glyphs,
	}
	if name, err := glyphs.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font family name, or "" if the font does not carry one.
func (s *FontSource) Name() string {
	return s.name
}

var (
	defaultOnce   sync.Once
	defaultSource *FontSource

	familyMu sync.RWMutex
	families = make(map[string]*FontSource)
)

// Default returns the bundled Go Regular font.
func Default() *FontSource {
	defaultOnce.Do(func() {
		s, err := NewFontSource(goregular.TTF)
		if err != nil {
			panic("text: bundled font: " + err.Error())
		}
		defaultSource = s
	})
	return defaultSource
}

// RegisterFamily makes src the font used for family. Family names are
// matched case-insensitively.
func RegisterFamily(family string, src *FontSource) {
	familyMu.Lock()
	defer familyMu.Unlock()
	if src == nil {
		delete(families, strings.ToLower(family))
		return
	}
	families[strings.ToLower(family)] = src
}

// Lookup returns the font registered for family, falling back to Default.
func Lookup(family string) *FontSource {
	familyMu.RLock()
	src, ok := families[strings.ToLower(family)]
	familyMu.RUnlock()
	if ok {
		return src
	}
	return Default()
}
