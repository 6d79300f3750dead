package llm

import "context"

// Client generates study-guide content from transcript segments.
type Client interface {
	ExtractConcepts(ctx context.Context, segment string) (string, error)
	GenerateQA(ctx context.Context, segment string) (string, error)
	Usage() TokenUsage
}

// TokenUsage accumulates token counts across LLM calls.
type TokenUsage struct {
	PromptTokens     int32
	CompletionTokens int32
	TotalTokens      int32
}
