package guide

import "context"

// Generator turns a transcript file into a formatted study guide.
type Generator interface {
	// Generate returns the study guide for the transcript at path.
	// An empty guide (no content after cleaning) returns "".
	Generate(ctx context.Context, path string) (string, error)

	// ProcessFile generates a guide for the transcript at path, writes it
	// to the configured output directory, and archives the transcript.
	// Used by watch mode.
	ProcessFile(ctx context.Context, path string) error
}
