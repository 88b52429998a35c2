// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm abstracts the text-generation capability the pipeline
// depends on. Stages render a prompt, invoke the client, and receive raw
// text; everything downstream of the raw text is the extractor's job.
package llm

import "context"

// Options tunes a single model invocation.
type Options struct {
	// Temperature is the sampling temperature. Zero means the backend
	// default.
	Temperature float64

	// MaxTokens caps the response length. Zero means the backend default.
	MaxTokens int
}

// Client invokes the external model with a fully-rendered prompt and
// returns the raw response text. Implementations must honor context
// cancellation; each call may take minutes. Tests supply a mock.
type Client interface {
	Invoke(ctx context.Context, prompt string, opts Options) (string, error)
}
