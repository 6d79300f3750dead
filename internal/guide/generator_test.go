package guide

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/study-flow/internal/config"
	"github.com/nguyentantai21042004/study-flow/internal/llm"
	"github.com/nguyentantai21042004/study-flow/internal/logger"
	"github.com/nguyentantai21042004/study-flow/internal/transcript"
)

type fakeLLM struct {
	conceptsErr error
	qaErr       error
	calls       int
}

func (f *fakeLLM) ExtractConcepts(ctx context.Context, segment string) (string, error) {
	f.calls++
	if f.conceptsErr != nil {
		return "", f.conceptsErr
	}
	return "Concept: from segment of " + firstWord(segment), nil
}

func (f *fakeLLM) GenerateQA(ctx context.Context, segment string) (string, error) {
	f.calls++
	if f.qaErr != nil {
		return "", f.qaErr
	}
	return "Q: about segment of " + firstWord(segment) + "?\nA: yes.", nil
}

func (f *fakeLLM) Usage() llm.TokenUsage {
	return llm.TokenUsage{PromptTokens: 1, CompletionTokens: 2, TotalTokens: 3}
}

func firstWord(s string) string {
	return strings.Join(strings.Fields(s)[:1], "")
}

func newTestGenerator(t *testing.T, client llm.Client, wordsPerSegment int) Generator {
	t.Helper()

	cfg := config.Default()
	cfg.Segmenter.WordsPerSegment = wordsPerSegment
	cfg.Paths.Output = t.TempDir()
	cfg.Paths.Archived = t.TempDir()

	log := logger.NewWithWriter("error", io.Discard)
	parser := transcript.New(cfg.Segmenter.FillerWords, log)
	return New(cfg, parser, client, log)
}

func writeTranscript(t *testing.T, words int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lecture.txt")
	content := strings.TrimSpace(strings.Repeat("word ", words))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerate(t *testing.T) {
	client := &fakeLLM{}
	g := newTestGenerator(t, client, 10)
	path := writeTranscript(t, 25) // 3 segments

	out, err := g.Generate(context.Background(), path)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if got := strings.Count(out, "--- SEGMENT"); got != 3 {
		t.Errorf("guide has %d segment headers, want 3:\n%s", got, out)
	}
	if client.calls != 6 {
		t.Errorf("LLM called %d times, want 6 (two per segment)", client.calls)
	}
	if !strings.HasPrefix(out, "STUDY GUIDE") {
		t.Errorf("guide missing title:\n%s", out)
	}
}

func TestGenerateContinuesOnPartialFailure(t *testing.T) {
	client := &fakeLLM{qaErr: errors.New("model overloaded")}
	g := newTestGenerator(t, client, 10)
	path := writeTranscript(t, 15)

	out, err := g.Generate(context.Background(), path)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !strings.Contains(out, "Practice Questions & Answers: Not generated for this segment.") {
		t.Errorf("missing Q&A placeholder:\n%s", out)
	}
	if !strings.Contains(out, "Key Concepts & Definitions:\n") {
		t.Errorf("concepts section should still be present:\n%s", out)
	}
}

func TestGenerateFailsWhenAllCallsFail(t *testing.T) {
	client := &fakeLLM{
		conceptsErr: errors.New("boom"),
		qaErr:       errors.New("boom"),
	}
	g := newTestGenerator(t, client, 10)
	path := writeTranscript(t, 15)

	if _, err := g.Generate(context.Background(), path); err == nil {
		t.Error("Generate() should fail when every LLM call fails")
	}
}

func TestGenerateEmptyTranscript(t *testing.T) {
	g := newTestGenerator(t, &fakeLLM{}, 10)

	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("   \n\t"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := g.Generate(context.Background(), path)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out != "" {
		t.Errorf("Generate() = %q, want empty string for empty transcript", out)
	}
}

func TestGenerateMissingFile(t *testing.T) {
	g := newTestGenerator(t, &fakeLLM{}, 10)

	if _, err := g.Generate(context.Background(), "no-such-file.txt"); err == nil {
		t.Error("Generate() should fail for a missing transcript")
	}
}

func TestProcessFile(t *testing.T) {
	cfg := config.Default()
	cfg.Segmenter.WordsPerSegment = 10
	cfg.Paths.Output = t.TempDir()
	cfg.Paths.Archived = t.TempDir()

	log := logger.NewWithWriter("error", io.Discard)
	parser := transcript.New(cfg.Segmenter.FillerWords, log)
	g := New(cfg, parser, &fakeLLM{}, log)

	inputDir := t.TempDir()
	path := filepath.Join(inputDir, "lecture01.txt")
	if err := os.WriteFile(path, []byte(strings.Repeat("word ", 12)), 0644); err != nil {
		t.Fatal(err)
	}

	if err := g.ProcessFile(context.Background(), path); err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	guidePath := filepath.Join(cfg.Paths.Output, "lecture01_study_guide.txt")
	data, err := os.ReadFile(guidePath)
	if err != nil {
		t.Fatalf("guide not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "STUDY GUIDE") {
		t.Errorf("guide content unexpected:\n%s", data)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("transcript should have been moved out of input dir")
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.Archived, "lecture01.txt")); err != nil {
		t.Errorf("transcript not archived: %v", err)
	}
}
