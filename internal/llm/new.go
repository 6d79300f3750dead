package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/study-flow/internal/config"
	"github.com/nguyentantai21042004/study-flow/internal/logger"
)

const apiKeyEnvVar = "GEMINI_API_KEY"

// generateFunc performs a single model call. Swapped out in tests.
type generateFunc func(ctx context.Context, apiKey, model, prompt string, genCfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

type implClient struct {
	apiKeys        []string
	currentKey     int
	model          string
	temperature    float32
	maxTokens      int32
	maxRetries     int
	initialBackoff time.Duration
	prompts        *PromptSet
	logger         logger.Logger
	generate       generateFunc
	usage          TokenUsage
}

// New creates a Client that rotates through the supplied Gemini API keys.
func New(cfg config.LLMConfig, apiKeys []string, prompts *PromptSet, log logger.Logger) Client {
	return &implClient{
		apiKeys:        apiKeys,
		model:          cfg.Model,
		temperature:    cfg.Temperature,
		maxTokens:      cfg.MaxOutputTokens,
		maxRetries:     cfg.MaxRetries,
		initialBackoff: time.Duration(cfg.InitialBackoffSeconds * float64(time.Second)),
		prompts:        prompts,
		logger:         log,
		generate:       generateGemini,
	}
}

// APIKeysFromEnv reads GEMINI_API_KEY, which may hold several keys
// separated by commas. Missing or empty is a configuration error.
func APIKeysFromEnv() ([]string, error) {
	raw := os.Getenv(apiKeyEnvVar)

	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}

	if len(keys) == 0 {
		return nil, fmt.Errorf("missing API key: set the %s environment variable", apiKeyEnvVar)
	}

	return keys, nil
}

func generateGemini(ctx context.Context, apiKey, model, prompt string, genCfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return client.Models.GenerateContent(ctx, model, genai.Text(prompt), genCfg)
}
