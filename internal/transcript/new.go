package transcript

import (
	"regexp"

	"github.com/nguyentantai21042004/study-flow/internal/logger"
)

type implParser struct {
	fillerPatterns []*regexp.Regexp
	logger         logger.Logger
}

// New creates a Parser that strips the given filler words during cleaning.
// Fillers match as whole words, case-insensitive; multi-word fillers
// ("you know") match across a single space.
func New(fillerWords []string, log logger.Logger) Parser {
	patterns := make([]*regexp.Regexp, 0, len(fillerWords))
	for _, word := range fillerWords {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(word)+`\b`))
	}

	return &implParser{
		fillerPatterns: patterns,
		logger:         log,
	}
}
