package ports

import "context"

// ArtifactStore persists generated presentation files and resolves them for
// download. Implementations must never expose paths outside their root.
type ArtifactStore interface {
	// Save writes data under filename and returns the absolute path.
	// The write is atomic: a partially written file is never resolvable.
	Save(ctx context.Context, filename string, data []byte) (string, error)

	// Resolve returns the absolute path for a previously saved file, or an
	// error if the name escapes the store root or the file does not exist.
	Resolve(filename string) (string, error)
}
