package scene

import (
	"bytes"
	"encoding/json"
	"fmt"

	ink "github.com/shelost/daydream-svelte-sub006"
)

// sceneEntry is the wire form of one object in a serialized scene.
type sceneEntry struct {
	ID       string       `json:"id"`
	PathData string       `json:"pathData"`
	Fill     string       `json:"fill"`
	Opacity  *float64     `json:"opacity,omitempty"`
	Bounds   *boundsEntry `json:"boundingBox,omitempty"`
}

// boundsEntry is the wire form of a bounding box.
type boundsEntry struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Serialize encodes the graph as an ordered JSON array. Array order is the
// z-order, bottom first, and is authoritative: deserializing the output
// reproduces the same stacking. The encoding is deterministic for a given
// graph.
func (g *Graph) Serialize() ([]byte, error) {
	entries := make([]sceneEntry, 0, len(g.objects))
	for _, obj := range g.objects {
		opacity := obj.Opacity
		entries = append(entries, sceneEntry{
			ID:       obj.ID,
			PathData: obj.Path.String(),
			Fill:     obj.Fill.HexString(),
			Opacity:  &opacity,
			Bounds: &boundsEntry{
				X:      obj.Bounds.MinX,
				Y:      obj.Bounds.MinY,
				Width:  obj.Bounds.Width(),
				Height: obj.Bounds.Height(),
			},
		})
	}
	return json.Marshal(entries)
}

// Deserialize rebuilds a graph from a serialized scene. Nil, empty, and
// JSON null input yield an empty graph. A malformed document returns an
// error; a malformed entry within a well-formed document is skipped with a
// warning so one corrupt object cannot take down the whole drawing.
func Deserialize(data []byte) (*Graph, error) {
	g := NewGraph()
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return g, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("scene: malformed document: %w", err)
	}

	log := ink.Logger()
	seen := make(map[string]bool, len(raw))
	for i, msg := range raw {
		var entry sceneEntry
		if err := json.Unmarshal(msg, &entry); err != nil {
			log.Warn("scene: skipping malformed entry", "index", i, "error", err)
			continue
		}
		obj, err := entryObject(entry)
		if err != nil {
			log.Warn("scene: skipping entry", "index", i, "error", err)
			continue
		}
		if seen[obj.ID] {
			log.Warn("scene: skipping entry with duplicate id", "index", i, "id", obj.ID)
			continue
		}
		seen[obj.ID] = true
		g.insert(obj)
	}
	return g, nil
}

// entryObject validates one wire entry and converts it to an Object.
func entryObject(entry sceneEntry) (*Object, error) {
	if entry.ID == "" {
		return nil, fmt.Errorf("missing id")
	}
	if entry.PathData == "" {
		return nil, fmt.Errorf("missing pathData")
	}
	path, err := ink.ParsePathData(entry.PathData)
	if err != nil {
		return nil, fmt.Errorf("invalid pathData: %w", err)
	}
	if path.Empty() {
		return nil, fmt.Errorf("empty pathData")
	}
	fill, err := ink.ParseHex(entry.Fill)
	if err != nil {
		return nil, fmt.Errorf("invalid fill: %w", err)
	}

	opacity := 1.0
	if entry.Opacity != nil {
		opacity = clamp01(*entry.Opacity)
	}

	var bounds ink.Rect
	if entry.Bounds != nil {
		bounds = ink.RectFromSize(entry.Bounds.X, entry.Bounds.Y, entry.Bounds.Width, entry.Bounds.Height)
	} else {
		bounds = path.Bounds()
	}

	return &Object{
		ID:      entry.ID,
		Path:    path,
		Fill:    fill,
		Opacity: opacity,
		Bounds:  bounds,
	}, nil
}
