package domain

import "strings"

// GenerationRequest is what a strategy asks the text-generation service for.
type GenerationRequest struct {
	System    string
	Prompt    string
	WordRange WordRange
	MaxTokens int
}

// GenerationResult is the text-generation service's answer.
type GenerationResult struct {
	Content   string
	Model     string
	WordCount int
}

// CountWords returns the number of whitespace-separated words in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
