package transcript

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// Read returns the content of the transcript file at path.
func (p *implParser) Read(ctx context.Context, path string) (string, error) {
	p.logger.Debug(ctx, "Reading transcript file: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read transcript %s: %w", path, err)
	}

	p.logger.Info(ctx, "Read transcript: %s (%d bytes)", path, len(data))
	return string(data), nil
}

// Clean strips configured filler words and normalizes all whitespace
// runs to a single space.
func (p *implParser) Clean(text string) string {
	cleaned := text
	for _, re := range p.fillerPatterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}

	cleaned = whitespaceRE.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// Segment splits text into chunks of wordsPerSegment words each; the
// final chunk holds whatever remains. Empty text yields no segments.
func (p *implParser) Segment(text string, wordsPerSegment int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	words := strings.Fields(text)
	var segments []string

	for start := 0; start < len(words); start += wordsPerSegment {
		end := start + wordsPerSegment
		if end > len(words) {
			end = len(words)
		}
		segments = append(segments, strings.Join(words[start:end], " "))
	}

	return segments
}
