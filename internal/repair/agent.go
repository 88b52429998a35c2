// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package repair turns malformed candidate JSON into a corrected
// serialization via a secondary model call. The agent knows nothing
// about field names or stage schemas, only generic JSON syntax; it
// repairs text, it does not generate content.
package repair

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/pdiddy/coursegen/internal/llm"
)

// repairPromptTmpl is the fixed instruction template for the repair
// call. It demands corrected JSON only, with no commentary.
var repairPromptTmpl = template.Must(template.New("repair").Parse(`You are an expert JSON issue resolver. You can put any JSON into proper format.

Here is text that is meant to be a JSON object but is not well-formed. Correct it.

{{.Malformed}}

Strict instructions:
- Return only the corrected JSON.
- Do not add any text other than the corrected JSON.
- The output must be 100 percent syntactically valid JSON.
`))

// Agent performs one-shot textual JSON repair.
type Agent struct {
	Client llm.Client
}

// New returns a repair agent backed by the given model client.
func New(client llm.Client) *Agent {
	return &Agent{Client: client}
}

// Repair asks the model to correct the malformed text and returns the
// response verbatim. Fence stripping and the one-attempt bound are the
// caller's concern.
func (a *Agent) Repair(ctx context.Context, malformed string) (string, error) {
	var buf bytes.Buffer
	if err := repairPromptTmpl.Execute(&buf, struct{ Malformed string }{Malformed: malformed}); err != nil {
		return "", fmt.Errorf("rendering repair prompt: %w", err)
	}

	text, err := a.Client.Invoke(ctx, buf.String(), llm.Options{})
	if err != nil {
		return "", fmt.Errorf("repair model call: %w", err)
	}
	return text, nil
}
