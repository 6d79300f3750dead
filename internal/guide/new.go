package guide

import (
	"github.com/nguyentantai21042004/study-flow/internal/config"
	"github.com/nguyentantai21042004/study-flow/internal/llm"
	"github.com/nguyentantai21042004/study-flow/internal/logger"
	"github.com/nguyentantai21042004/study-flow/internal/transcript"
)

type implGenerator struct {
	cfg    *config.Config
	parser transcript.Parser
	llm    llm.Client
	logger logger.Logger
}

// New creates a Generator wired to the given parser and LLM client.
func New(cfg *config.Config, parser transcript.Parser, client llm.Client, log logger.Logger) Generator {
	return &implGenerator{
		cfg:    cfg,
		parser: parser,
		llm:    client,
		logger: log,
	}
}
