package guide

import (
	"fmt"
	"strings"
)

// SegmentContent holds the LLM output for one transcript segment.
// An empty field means the corresponding call failed.
type SegmentContent struct {
	Concepts string
	QA       string
}

const (
	titleRule   = "========================================"
	sectionRule = "------------------------------"
)

// formatPlainText assembles per-segment LLM output into the final
// plain-text study guide.
func formatPlainText(segments []SegmentContent) string {
	if len(segments) == 0 {
		return ""
	}

	var lines []string
	lines = append(lines, "STUDY GUIDE", titleRule, "")

	for i, seg := range segments {
		lines = append(lines, fmt.Sprintf("--- SEGMENT %d ---", i+1), "")
		lines = append(lines, formatSection("Key Concepts & Definitions", seg.Concepts)...)
		lines = append(lines, formatSection("Practice Questions & Answers", seg.QA)...)
		lines = append(lines, titleRule, "")
	}

	return strings.Join(lines, "\n")
}

func formatSection(heading, content string) []string {
	if content == "" {
		return []string{heading + ": Not generated for this segment.", ""}
	}
	return []string{heading + ":", sectionRule, strings.TrimSpace(content), ""}
}
