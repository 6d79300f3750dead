package guide

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Generate runs the full pipeline for one transcript: read, clean,
// segment, query the LLM per segment, and format the result.
func (g *implGenerator) Generate(ctx context.Context, path string) (string, error) {
	startTime := time.Now()

	g.logger.Info(ctx, "Starting study guide generation: %s", path)

	raw, err := g.parser.Read(ctx, path)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	cleaned := g.parser.Clean(raw)
	segments := g.parser.Segment(cleaned, g.cfg.Segmenter.WordsPerSegment)
	if len(segments) == 0 {
		g.logger.Warn(ctx, "No text segments found after cleaning: %s", path)
		return "", nil
	}

	g.logger.Info(ctx, "Transcript processed into %d segments", len(segments))

	results := make([]SegmentContent, 0, len(segments))
	succeeded := 0

	for i, segment := range segments {
		g.logger.Info(ctx, "Processing segment %d/%d...", i+1, len(segments))
		var content SegmentContent

		concepts, err := g.llm.ExtractConcepts(ctx, segment)
		if err != nil {
			g.logger.Warn(ctx, "Failed to extract key concepts for segment %d: %v", i+1, err)
		} else {
			content.Concepts = concepts
			succeeded++
		}

		qa, err := g.llm.GenerateQA(ctx, segment)
		if err != nil {
			g.logger.Warn(ctx, "Failed to generate Q&A pairs for segment %d: %v", i+1, err)
		} else {
			content.QA = qa
			succeeded++
		}

		results = append(results, content)
	}

	if succeeded == 0 {
		return "", fmt.Errorf("all LLM calls failed across %d segments", len(segments))
	}

	usage := g.llm.Usage()
	g.logger.Info(ctx, "LLM processing complete. Tokens used: %d prompt, %d completion, %d total",
		usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens)
	g.logger.Info(ctx, "Study guide generated in %s", time.Since(startTime))

	return formatPlainText(results), nil
}

// ProcessFile wraps Generate for watch mode: the guide lands in the
// output directory and the transcript moves to the archived directory.
func (g *implGenerator) ProcessFile(ctx context.Context, path string) error {
	guideText, err := g.Generate(ctx, path)
	if err != nil {
		return err
	}
	if guideText == "" {
		g.logger.Warn(ctx, "Skipping empty transcript: %s", path)
		return nil
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(g.cfg.Paths.Output, name+"_study_guide.txt")

	if err := os.WriteFile(outPath, []byte(guideText), 0644); err != nil {
		return fmt.Errorf("write study guide %s: %w", outPath, err)
	}
	g.logger.Info(ctx, "Study guide written: %s", outPath)

	if err := g.archiveTranscript(ctx, path); err != nil {
		g.logger.Warn(ctx, "Failed to archive transcript %s: %v", path, err)
	}

	return nil
}

// archiveTranscript moves a processed transcript out of the input
// directory so it is not picked up again.
func (g *implGenerator) archiveTranscript(ctx context.Context, path string) error {
	destPath := filepath.Join(g.cfg.Paths.Archived, filepath.Base(path))

	g.logger.Debug(ctx, "Archiving transcript: %s -> %s", path, destPath)

	if err := os.Rename(path, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	return nil
}
