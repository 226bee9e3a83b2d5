// Package render coordinates the two draw surfaces of a canvas instance:
// an ephemeral surface holding only the stroke being captured, redrawn on
// every input move, and a committed surface holding the scene graph,
// redrawn when the graph changes or the canvas resizes.
package render

import (
	ink "github.com/shelost/daydream-svelte-sub006"
	"github.com/shelost/daydream-svelte-sub006/scene"
)

// Pipeline owns the ephemeral and committed surfaces of one canvas.
// Either surface may be nil, in which case the pipeline logs one warning
// and degrades to a no-op for that layer.
//
// A Pipeline is not safe for concurrent use; it belongs to the canvas
// instance's event loop.
type Pipeline struct {
	graph     *scene.Graph
	committed Surface
	ephemeral Surface

	// drawn is the graph version last rendered to the committed surface.
	drawn    uint64
	hasDrawn bool
	warned   bool
}

// NewPipeline creates a pipeline drawing graph onto the given surfaces.
func NewPipeline(graph *scene.Graph, committed, ephemeral Surface) *Pipeline {
	return &Pipeline{graph: graph, committed: committed, ephemeral: ephemeral}
}

// Preview replaces the ephemeral surface contents with a single path, the
// live outline of the stroke being captured. A nil or empty path just
// clears the preview.
func (p *Pipeline) Preview(path *ink.PathData, paint Paint) {
	if p.ephemeral == nil {
		p.warnOnce()
		return
	}
	p.ephemeral.Clear()
	if path == nil || path.Empty() {
		return
	}
	if err := p.ephemeral.FillPath(path, paint); err != nil {
		ink.Logger().Warn("render: preview fill failed", "error", err)
	}
}

// ClearPreview erases the ephemeral surface.
func (p *Pipeline) ClearPreview() {
	if p.ephemeral == nil {
		p.warnOnce()
		return
	}
	p.ephemeral.Clear()
}

// SyncCommitted redraws the committed surface if the graph has changed
// since it was last drawn.
func (p *Pipeline) SyncCommitted() {
	if p.hasDrawn && p.graph.Version() == p.drawn {
		return
	}
	p.RedrawCommitted()
}

// RedrawCommitted clears the committed surface and redraws every object in
// the graph, bottom of the z-order first. A failed fill is logged and the
// remaining objects are still drawn.
func (p *Pipeline) RedrawCommitted() {
	if p.committed == nil {
		p.warnOnce()
		return
	}
	p.committed.Clear()
	for _, obj := range p.graph.Objects() {
		err := p.committed.FillPath(obj.Path, Paint{Fill: obj.Fill, Opacity: obj.Opacity})
		if err != nil {
			ink.Logger().Warn("render: committed fill failed", "id", obj.ID, "error", err)
		}
	}
	p.drawn = p.graph.Version()
	p.hasDrawn = true
}

// Resize propagates new pixel dimensions to both surfaces, then fully
// redraws the committed layer and clears the preview. Committed object
// coordinates are untouched; only the surfaces change size.
func (p *Pipeline) Resize(width, height int) {
	if r, ok := p.committed.(Resizer); ok {
		r.Resize(width, height)
	}
	if r, ok := p.ephemeral.(Resizer); ok {
		r.Resize(width, height)
	}
	p.RedrawCommitted()
	p.ClearPreview()
}

func (p *Pipeline) warnOnce() {
	if p.warned {
		return
	}
	p.warned = true
	ink.Logger().Warn("render: no surface attached, rendering disabled")
}
