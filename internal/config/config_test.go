package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "negative words per segment",
			config: Config{
				Segmenter: SegmenterConfig{WordsPerSegment: -10},
			},
			wantErr: true,
		},
		{
			name: "negative max retries",
			config: Config{
				LLM: LLMConfig{MaxRetries: -1},
			},
			wantErr: true,
		},
		{
			name: "negative backoff",
			config: Config{
				LLM: LLMConfig{InitialBackoffSeconds: -0.5},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.LLM.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v, want gemini-2.5-flash", cfg.LLM.Model)
	}
	if cfg.LLM.MaxRetries != 3 {
		t.Errorf("MaxRetries = %v, want 3", cfg.LLM.MaxRetries)
	}
	if cfg.LLM.MaxOutputTokens != 1500 {
		t.Errorf("MaxOutputTokens = %v, want 1500", cfg.LLM.MaxOutputTokens)
	}
	if cfg.Segmenter.WordsPerSegment != 500 {
		t.Errorf("WordsPerSegment = %v, want 500", cfg.Segmenter.WordsPerSegment)
	}
	if len(cfg.Segmenter.FillerWords) != 5 {
		t.Errorf("FillerWords = %v, want 5 defaults", cfg.Segmenter.FillerWords)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %v, want info", cfg.Logging.Level)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
llm:
  model: "gemini-2.0-flash"
  max_retries: 5

segmenter:
  words_per_segment: 250
  filler_words: ["uh", "um"]

paths:
  prompts: "prompts"
  input: "data/input"
  output: "data/output"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LLM.Model != "gemini-2.0-flash" {
		t.Errorf("Model = %v, want gemini-2.0-flash", cfg.LLM.Model)
	}
	if cfg.LLM.MaxRetries != 5 {
		t.Errorf("MaxRetries = %v, want 5", cfg.LLM.MaxRetries)
	}
	if cfg.Segmenter.WordsPerSegment != 250 {
		t.Errorf("WordsPerSegment = %v, want 250", cfg.Segmenter.WordsPerSegment)
	}
	if cfg.LLM.MaxOutputTokens != 1500 {
		t.Errorf("MaxOutputTokens = %v, want default 1500", cfg.LLM.MaxOutputTokens)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Segmenter.WordsPerSegment != 500 {
		t.Errorf("WordsPerSegment = %v, want 500", cfg.Segmenter.WordsPerSegment)
	}
}
