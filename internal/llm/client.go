package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/genai"
)

// ExtractConcepts asks the model for the key concepts and definitions
// found in a transcript segment.
func (c *implClient) ExtractConcepts(ctx context.Context, segment string) (string, error) {
	c.logger.Debug(ctx, "Extracting key concepts (segment length: %d chars)", len(segment))
	return c.call(ctx, fmt.Sprintf(c.prompts.Concepts, segment))
}

// GenerateQA asks the model for practice question/answer pairs covering
// a transcript segment.
func (c *implClient) GenerateQA(ctx context.Context, segment string) (string, error) {
	c.logger.Debug(ctx, "Generating Q&A pairs (segment length: %d chars)", len(segment))
	return c.call(ctx, fmt.Sprintf(c.prompts.QA, segment))
}

// Usage returns the token counts accumulated over all calls so far.
func (c *implClient) Usage() TokenUsage {
	return c.usage
}

// call sends one prompt to the model, retrying transient failures with
// exponential backoff and rotating API keys between attempts. Permanent
// errors fail immediately.
func (c *implClient) call(ctx context.Context, prompt string) (string, error) {
	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(c.temperature),
		MaxOutputTokens: c.maxTokens,
	}

	attempt := 0
	var out string

	operation := func() error {
		attempt++
		key := c.apiKeys[c.currentKey]
		c.logger.Debug(ctx, "LLM call attempt %d/%d (model: %s, key %d/%d)",
			attempt, c.maxRetries+1, c.model, c.currentKey+1, len(c.apiKeys))

		resp, err := c.generate(ctx, key, c.model, prompt, genCfg)
		if err != nil {
			if !isTransient(err) {
				return backoff.Permanent(fmt.Errorf("generate content: %w", err))
			}
			c.logger.Warn(ctx, "Transient LLM error on attempt %d, rotating key: %v", attempt, err)
			c.rotateKey()
			return err
		}

		text, err := responseText(resp)
		if err != nil {
			return backoff.Permanent(err)
		}

		c.recordUsage(ctx, resp.UsageMetadata)
		out = text
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.initialBackoff

	err := backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(bo, uint64(c.maxRetries)), ctx))
	if err != nil {
		return "", fmt.Errorf("LLM call failed after %d attempts: %w", attempt, err)
	}

	return out, nil
}

func (c *implClient) rotateKey() {
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
}

// recordUsage logs per-call token counts and adds them to the running totals.
func (c *implClient) recordUsage(ctx context.Context, meta *genai.GenerateContentResponseUsageMetadata) {
	if meta == nil {
		c.logger.Debug(ctx, "LLM response carried no usage metadata")
		return
	}

	c.usage.PromptTokens += meta.PromptTokenCount
	c.usage.CompletionTokens += meta.CandidatesTokenCount
	c.usage.TotalTokens += meta.TotalTokenCount

	c.logger.Info(ctx, "LLM call successful. Model: %s, Prompt Tokens: %d, Completion Tokens: %d, Total Tokens: %d",
		c.model, meta.PromptTokenCount, meta.CandidatesTokenCount, meta.TotalTokenCount)
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	if text == "" {
		return "", fmt.Errorf("response contained no text parts")
	}

	return text, nil
}

// isTransient reports whether an API error is worth retrying:
// rate limits, quota exhaustion, and server-side failures.
func isTransient(err error) bool {
	msg := err.Error()
	for _, marker := range []string{"429", "quota", "RESOURCE_EXHAUSTED", "UNAVAILABLE", "500", "503"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
