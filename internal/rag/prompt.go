package rag

import "fmt"

// promptTemplate is the fixed instruction for the language model. It pins the
// HR-assistant role, restricts the answer to the supplied context, asks for
// names and key attributes, and tells the model to admit missing data rather
// than fabricate employees.
const promptTemplate = "You are an intelligent HR assistant. " +
	"Based on the following employee information, answer the user's query comprehensively. " +
	"If the information is not sufficient to answer, state that you don't have enough data. " +
	"Always try to provide names of relevant employees and their key attributes.\n\n" +
	"Context: %s\n\n" +
	"Question: %s\n" +
	"Answer:"

// BuildPrompt combines the instruction template, the formatted context and
// the user query into the final prompt, in that fixed order.
func BuildPrompt(context, query string) string {
	return fmt.Sprintf(promptTemplate, context, query)
}
