package config

import "fmt"

type Config struct {
	LLM       LLMConfig       `yaml:"llm"`
	Segmenter SegmenterConfig `yaml:"segmenter"`
	Paths     PathsConfig     `yaml:"paths"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type LLMConfig struct {
	Model                 string  `yaml:"model"`
	Temperature           float32 `yaml:"temperature"`
	MaxOutputTokens       int32   `yaml:"max_output_tokens"`
	MaxRetries            int     `yaml:"max_retries"`
	InitialBackoffSeconds float64 `yaml:"initial_backoff_seconds"`
}

type SegmenterConfig struct {
	WordsPerSegment int      `yaml:"words_per_segment"`
	FillerWords     []string `yaml:"filler_words"`
}

type PathsConfig struct {
	Prompts  string `yaml:"prompts"`
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func (c *Config) Validate() error {
	if c.Segmenter.WordsPerSegment < 0 {
		return fmt.Errorf("segmenter.words_per_segment must be positive")
	}
	if c.LLM.MaxRetries < 0 {
		return fmt.Errorf("llm.max_retries must not be negative")
	}
	if c.LLM.InitialBackoffSeconds < 0 {
		return fmt.Errorf("llm.initial_backoff_seconds must not be negative")
	}

	if c.LLM.Model == "" {
		c.LLM.Model = "gemini-2.5-flash"
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.7
	}
	if c.LLM.MaxOutputTokens == 0 {
		c.LLM.MaxOutputTokens = 1500
	}
	if c.LLM.MaxRetries == 0 {
		c.LLM.MaxRetries = 3
	}
	if c.LLM.InitialBackoffSeconds == 0 {
		c.LLM.InitialBackoffSeconds = 1.0
	}
	if c.Segmenter.WordsPerSegment == 0 {
		c.Segmenter.WordsPerSegment = 500
	}
	if len(c.Segmenter.FillerWords) == 0 {
		c.Segmenter.FillerWords = []string{"uh", "um", "like", "you know", "so"}
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
