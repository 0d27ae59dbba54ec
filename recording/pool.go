package recording

import "github.com/gogpu/cvi"

// ResourcePool stores the brushes referenced by recording commands.
// Solid brushes are deduplicated by colour; every gradient gets its own
// slot because gradients are built per polygon.
//
// ResourcePool is not safe for concurrent use. If concurrent access is needed,
// external synchronization must be provided.
type ResourcePool struct {
	brushes []cvi.Brush
	solids  map[cvi.RGBA]BrushRef
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		brushes: make([]cvi.Brush, 0, 32),
		solids:  make(map[cvi.RGBA]BrushRef),
	}
}

// AddBrush adds a brush to the pool and returns its reference.
// A nil brush is stored as transparent.
func (p *ResourcePool) AddBrush(brush cvi.Brush) BrushRef {
	if brush == nil {
		brush = cvi.Solid(cvi.Transparent)
	}
	if s, ok := brush.(cvi.SolidBrush); ok {
		if ref, dup := p.solids[s.Color]; dup {
			return ref
		}
		ref := p.push(s)
		p.solids[s.Color] = ref
		return ref
	}
	if g, ok := brush.(*cvi.LinearGradientBrush); ok {
		// Copy so later edits by the caller cannot change the recording.
		c := *g
		c.Stops = append([]cvi.ColorStop(nil), g.Stops...)
		brush = &c
	}
	return p.push(brush)
}

func (p *ResourcePool) push(brush cvi.Brush) BrushRef {
	p.brushes = append(p.brushes, brush)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return BrushRef(uint32(len(p.brushes) - 1))
}

// GetBrush returns the brush for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetBrush(ref BrushRef) cvi.Brush {
	if int(ref) >= len(p.brushes) {
		return nil
	}
	return p.brushes[ref]
}

// BrushCount returns the number of brushes in the pool.
func (p *ResourcePool) BrushCount() int {
	return len(p.brushes)
}

// Clear removes all resources from the pool.
func (p *ResourcePool) Clear() {
	p.brushes = p.brushes[:0]
	clear(p.solids)
}
