// Command inkdemo exercises the freehand ink engine end to end: it feeds
// synthesized pointer events through the stroke capturer, renders the
// committed scene to a PNG, persists the scene JSON, and optionally
// exports a PDF.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	ink "github.com/shelost/daydream-svelte-sub006"
	"github.com/shelost/daydream-svelte-sub006/capture"
	"github.com/shelost/daydream-svelte-sub006/export"
	"github.com/shelost/daydream-svelte-sub006/persist"
	"github.com/shelost/daydream-svelte-sub006/raster"
	"github.com/shelost/daydream-svelte-sub006/render"
	"github.com/shelost/daydream-svelte-sub006/scene"
)

func main() {
	var (
		width   = flag.Int("width", 800, "canvas width in internal pixels")
		height  = flag.Int("height", 600, "canvas height in internal pixels")
		output  = flag.String("output", "ink.png", "output PNG file")
		dataDir = flag.String("data", ".", "directory for the persisted scene")
		docID   = flag.String("doc", "inkdemo", "document id for the persisted scene")
		pdfOut  = flag.String("pdf", "", "optional PDF output file")
		verbose = flag.Bool("v", false, "log engine diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		ink.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	graph := scene.NewGraph()
	committed := raster.NewSurface(*width, *height, raster.WithBackground(ink.White))
	ephemeral := raster.NewSurface(*width, *height)
	pipe := render.NewPipeline(graph, committed, ephemeral)
	pipe.RedrawCommitted()

	capturer := capture.NewCapturer(graph, pipe)
	capturer.SetViewport(capture.NewViewportState(float64(*width), float64(*height)))

	drawWave(capturer, *width, *height)
	drawLoop(capturer, *width, *height)
	drawFlick(capturer, *width, *height)

	if err := committed.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save PNG: %v", err)
	}

	if err := saveScene(graph, *dataDir, *docID); err != nil {
		log.Fatalf("Failed to persist scene: %v", err)
	}

	if *pdfOut != "" {
		if err := export.SavePDF(*pdfOut, graph, export.WithBackground(ink.White)); err != nil {
			log.Fatalf("Failed to export PDF: %v", err)
		}
		log.Printf("PDF exported to %s", *pdfOut)
	}

	log.Printf("Rendered %d strokes to %s (%dx%d), scene saved as %q under %s",
		graph.Len(), *output, *width, *height, *docID, *dataDir)
}

// stroke feeds one synthesized gesture through the capturer: a pointer
// down at the first sample, moves for the rest, then a lift. Mouse events
// report the platform's constant 0.5 pressure, so stroke width comes from
// the simulated, velocity-derived pressure.
func stroke(c *capture.Capturer, style ink.StrokeStyle, points []ink.Point, stepMs float64) {
	if len(points) == 0 {
		return
	}
	c.SetStyle(ink.ToolPen, style)

	vp := c.Viewport()
	bounds := capture.ElementBounds{Width: vp.CSSWidth, Height: vp.CSSHeight}
	ev := capture.PointerEvent{
		Kind:     capture.PointerDown,
		Pointer:  capture.PointerMouse,
		X:        points[0].X,
		Y:        points[0].Y,
		Pressure: 0.5,
		Bounds:   bounds,
	}
	c.Handle(ev)
	for i, p := range points[1:] {
		ev.Kind = capture.PointerMove
		ev.X, ev.Y = p.X, p.Y
		ev.Time = float64(i+1) * stepMs
		c.Handle(ev)
	}
	ev.Kind = capture.PointerUp
	c.Handle(ev)
}

func drawWave(c *capture.Capturer, w, h int) {
	style := ink.DefaultStrokeStyle().
		WithColor(ink.Hex("#1a6fb0")).
		WithSize(14)

	var points []ink.Point
	baseY := float64(h) * 0.3
	for i := 0; i <= 120; i++ {
		t := float64(i) / 120
		x := float64(w)*0.1 + t*float64(w)*0.8
		y := baseY + math.Sin(t*4*math.Pi)*float64(h)*0.08
		points = append(points, ink.Pt(x, y))
	}
	stroke(c, style, points, 8)
}

func drawLoop(c *capture.Capturer, w, h int) {
	style := ink.DefaultStrokeStyle().
		WithColor(ink.Hex("#c03a2b")).
		WithSize(10).
		WithTaper(40, 40)

	cx, cy := float64(w)*0.5, float64(h)*0.62
	var points []ink.Point
	for i := 0; i <= 150; i++ {
		t := float64(i) / 150
		angle := t * 3 * math.Pi
		r := float64(h) * 0.22 * (1 - 0.5*t)
		points = append(points, ink.Pt(cx+math.Cos(angle)*r, cy+math.Sin(angle)*r))
	}
	stroke(c, style, points, 10)
}

// drawFlick moves fast, so the simulated pressure bottoms out and the
// stroke thins.
func drawFlick(c *capture.Capturer, w, h int) {
	style := ink.DefaultStrokeStyle().
		WithColor(ink.Hex("#2b8a4b")).
		WithSize(18).
		WithThinning(0.8)

	var points []ink.Point
	for i := 0; i <= 10; i++ {
		t := float64(i) / 10
		x := float64(w) * (0.15 + 0.7*t)
		y := float64(h) * (0.85 - 0.05*t)
		points = append(points, ink.Pt(x, y))
	}
	stroke(c, style, points, 2)
}

func saveScene(graph *scene.Graph, dir, docID string) error {
	data, err := graph.Serialize()
	if err != nil {
		return err
	}
	store, err := persist.NewFileStore(dir)
	if err != nil {
		return err
	}
	return store.Save(context.Background(), docID, data)
}
