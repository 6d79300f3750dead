package transcript

import "context"

// Parser turns a raw lecture transcript into cleaned, LLM-sized segments.
type Parser interface {
	Read(ctx context.Context, path string) (string, error)
	Clean(text string) string
	Segment(text string, wordsPerSegment int) []string
}
