package rag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptSectionOrder(t *testing.T) {
	prompt := BuildPrompt("some context", "some question")

	role := strings.Index(prompt, "HR assistant")
	ctx := strings.Index(prompt, "Context: some context")
	question := strings.Index(prompt, "Question: some question")
	answer := strings.Index(prompt, "Answer:")

	assert.GreaterOrEqual(t, role, 0)
	assert.Greater(t, ctx, role, "context follows the instruction")
	assert.Greater(t, question, ctx, "question follows the context")
	assert.Greater(t, answer, question, "answer cue comes last")
}

func TestBuildPromptCarriesSentinel(t *testing.T) {
	prompt := BuildPrompt(NoResultsSentinel, "who knows Python?")
	assert.Contains(t, prompt, NoResultsSentinel,
		"empty-retrieval sentinel must reach the model so it declines instead of inventing")
}
