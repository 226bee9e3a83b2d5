// Package persist stores serialized scene documents. It provides the
// adapter boundary the engine saves through, a file-backed implementation,
// and a debounced autosaver that keeps persistence off the input path.
package persist

import "context"

// Adapter is the persistence boundary: it stores and retrieves serialized
// scenes keyed by a document identifier. Implementations must tolerate
// concurrent calls for different documents.
type Adapter interface {
	// Save stores the serialized scene for a document, replacing any
	// previous version.
	Save(ctx context.Context, docID string, data []byte) error

	// Load retrieves the serialized scene for a document. A document that
	// was never saved loads as (nil, nil), not as an error.
	Load(ctx context.Context, docID string) ([]byte, error)
}
