package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuizPromptEmbedsCountAndDocument(t *testing.T) {
	system, task := BuildQuizPrompt("the document body", 7)
	assert.Contains(t, system, `"correct_label"`)
	assert.Contains(t, task, "exactly 7 multiple choice questions")
	assert.Contains(t, task, "the document body")
}

func TestBuildMindmapPromptStatesBounds(t *testing.T) {
	system, task := BuildMindmapPrompt("the document body")
	assert.Contains(t, system, "Exactly ONE node must have parent_id = null")
	assert.Contains(t, system, "Maximum 3 levels of depth")
	assert.Contains(t, task, "12-20 nodes")
}

func TestBuildSummaryPromptProseDirective(t *testing.T) {
	system, task := BuildSummaryPrompt("the document body")
	assert.Contains(t, system, "no bullet points")
	assert.Contains(t, task, "the document body")
}

func TestBuildTutorSystemPromptGrounding(t *testing.T) {
	system := BuildTutorSystemPrompt("the document body")
	assert.Contains(t, system, "say so honestly rather than guessing")
	assert.Contains(t, system, "the document body")
}
