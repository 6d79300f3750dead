package llm

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	conceptsPromptFile = "extract_concepts_prompt.txt"
	qaPromptFile       = "generate_qa_prompt.txt"
)

const defaultConceptsPrompt = `You are an expert study-guide author. From the lecture transcript segment below, extract the key concepts a student should learn.

Requirements:
- List each concept on its own line as "Concept: <name>"
- Follow each concept with "Definition: <one or two sentences>"
- Only include concepts actually discussed in the segment
- Keep technical terms exactly as the lecturer used them

Transcript segment:
---
%s
---`

const defaultQAPrompt = `You are an expert study-guide author. From the lecture transcript segment below, write practice questions that test understanding of the material.

Requirements:
- Write 3 to 5 question/answer pairs
- Format each pair as "Q: <question>" followed by "A: <answer>"
- Questions must be answerable from the segment alone
- Favor questions about reasoning and relationships over rote recall

Transcript segment:
---
%s
---`

// PromptSet holds the two prompt templates, each with a single %s
// placeholder for the transcript segment.
type PromptSet struct {
	Concepts string
	QA       string
}

// DefaultPrompts returns the built-in prompt templates.
func DefaultPrompts() *PromptSet {
	return &PromptSet{
		Concepts: defaultConceptsPrompt,
		QA:       defaultQAPrompt,
	}
}

// LoadPrompts returns the default templates, overridden by any template
// files present in dir. An empty dir means defaults only.
func LoadPrompts(dir string) (*PromptSet, error) {
	prompts := DefaultPrompts()
	if dir == "" {
		return prompts, nil
	}

	if err := loadTemplate(filepath.Join(dir, conceptsPromptFile), &prompts.Concepts); err != nil {
		return nil, err
	}
	if err := loadTemplate(filepath.Join(dir, qaPromptFile), &prompts.QA); err != nil {
		return nil, err
	}

	return prompts, nil
}

// loadTemplate replaces *dst with the file content when the file exists.
// A missing file keeps the default; an unusable file is an error.
func loadTemplate(path string, dst *string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read prompt template %s: %w", path, err)
	}

	template := string(data)
	if strings.Count(template, "%s") != 1 {
		return fmt.Errorf("prompt template %s must contain exactly one %%s placeholder", path)
	}

	*dst = template
	return nil
}
