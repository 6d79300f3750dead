package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/study-flow/internal/config"
	"github.com/nguyentantai21042004/study-flow/internal/guide"
	"github.com/nguyentantai21042004/study-flow/internal/llm"
	"github.com/nguyentantai21042004/study-flow/internal/logger"
	"github.com/nguyentantai21042004/study-flow/internal/transcript"
	"github.com/nguyentantai21042004/study-flow/internal/watcher"
)

const defaultConfigPath = "config.yaml"

func main() {
	var (
		outputPath      = flag.String("o", "", "Write the study guide to this file instead of stdout")
		wordsPerSegment = flag.Int("w", 0, "Approximate words per segment sent to the LLM (overrides config)")
		configPath      = flag.String("config", defaultConfigPath, "Path to the YAML config file")
		watchMode       = flag.Bool("watch", false, "Watch the input directory for new transcripts instead of processing one file")
	)
	flag.Usage = usage
	flag.Parse()

	ctx := context.Background()

	// Best-effort .env loading; the variable may already be exported.
	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *wordsPerSegment > 0 {
		cfg.Segmenter.WordsPerSegment = *wordsPerSegment
	}

	log := logger.New(cfg.Logging.Level)

	apiKeys, err := llm.APIKeysFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	prompts, err := llm.LoadPrompts(cfg.Paths.Prompts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load prompt templates: %v\n", err)
		os.Exit(1)
	}

	parser := transcript.New(cfg.Segmenter.FillerWords, log)
	client := llm.New(cfg.LLM, apiKeys, prompts, log)
	gen := guide.New(cfg, parser, client, log)

	if *watchMode {
		if err := runWatch(ctx, cfg, gen, log); err != nil {
			log.Error(ctx, "Watch mode failed: %v", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	if err := runOnce(ctx, gen, flag.Arg(0), *outputPath); err != nil {
		log.Error(ctx, "Study guide generation failed: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runOnce generates a guide for a single transcript and writes it to
// outputPath, or stdout when no output path is given.
func runOnce(ctx context.Context, gen guide.Generator, transcriptPath, outputPath string) error {
	guideText, err := gen.Generate(ctx, transcriptPath)
	if err != nil {
		return err
	}

	if guideText == "" {
		fmt.Println("No content to process after parsing the transcript.")
		return nil
	}

	if outputPath == "" {
		fmt.Println(guideText)
		return nil
	}

	if err := os.WriteFile(outputPath, []byte(guideText), 0644); err != nil {
		return fmt.Errorf("write study guide to %s: %w", outputPath, err)
	}

	fmt.Printf("Study guide saved to %s\n", outputPath)
	return nil
}

// runWatch monitors the configured input directory and processes each
// new transcript sequentially until interrupted.
func runWatch(ctx context.Context, cfg *config.Config, gen guide.Generator, log logger.Logger) error {
	if err := ensureDirectories(cfg); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	w, err := watcher.New(cfg.Paths.Input, gen.ProcessFile, log)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Study guide pipeline is ready")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		return err
	}

	cancel()
	log.Info(ctx, "Study guide pipeline stopped")
	return nil
}

// loadConfig reads the config file when present. The default path is
// allowed to be absent; an explicitly requested file is not.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && path == defaultConfigPath {
		return config.Default(), nil
	}
	return config.Load(path)
}

// ensureDirectories creates the watch-mode directories if needed.
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: studyguide [flags] <transcript_path>

Generates a plain-text study guide from a lecture transcript using the
Gemini API. Requires the GEMINI_API_KEY environment variable (multiple
keys may be given, comma-separated).

Flags:
`)
	flag.PrintDefaults()
}
