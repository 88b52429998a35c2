// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package insight gathers expert insights from the web for a course
// topic. Search hits are distilled through a model call into short,
// prompt-ready statements; the planning stage injects them verbatim.
// Insights are an enhancement, not a dependency: callers treat an error
// or an empty list as "proceed without insights".
package insight

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/pdiddy/coursegen/internal/extractor"
	"github.com/pdiddy/coursegen/internal/llm"
	"github.com/pdiddy/coursegen/internal/schema"
	"github.com/pdiddy/coursegen/pkg/types"
)

// Provider produces expert insights for a course spec.
type Provider interface {
	Insights(ctx context.Context, spec types.CourseSpec) ([]string, error)
}

// None is a Provider that always returns no insights. Used when the
// insight stage is disabled.
type None struct{}

func (None) Insights(context.Context, types.CourseSpec) ([]string, error) {
	return nil, nil
}

// digestSchema is the distillation output shape.
var digestSchema = schema.Schema{
	Name: "InsightDigest",
	Fields: []schema.Field{
		{Name: "insights", Type: schema.StringList, Description: "Concise expert insights, one sentence each, relevant to teaching this topic"},
	},
}

// digest is the distillation target. An empty list is acceptable: thin
// search results legitimately distill to nothing.
type digest struct {
	Insights []string `json:"insights"`
}

func (d *digest) Validate() error { return nil }

var distillTmpl = template.Must(template.New("distill").Parse(`You are an expert researcher preparing background material for a course on {{.Topic}} aimed at {{.Audience}}.

Here are web search results about the topic:
{{range .Results}}
Title: {{.Title}}
URL: {{.URL}}
Content: {{.Content}}
{{end}}
Distill these results into a short list of expert insights that would help a course designer: common misconceptions, recommended sequencing, practical applications, and current best practices. Ignore marketing copy and irrelevant results.

{{.FormatInstructions}}
`))

// WebProvider searches the web and distills the hits into insights.
type WebProvider struct {
	Searcher  Searcher
	Client    llm.Client
	Extractor *extractor.Extractor
}

// NewWebProvider returns a provider that searches with s and distills
// with client.
func NewWebProvider(s Searcher, client llm.Client) *WebProvider {
	return &WebProvider{Searcher: s, Client: client, Extractor: extractor.New()}
}

// Insights searches for the course topic and distills the hits. No hits
// yields no insights and no error.
func (p *WebProvider) Insights(ctx context.Context, spec types.CourseSpec) ([]string, error) {
	query := fmt.Sprintf("expert advice on teaching %s to %s", spec.Topic, spec.Audience)
	results, err := p.Searcher.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("insight search: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	err = distillTmpl.Execute(&buf, map[string]any{
		"Topic":              spec.Topic,
		"Audience":           spec.Audience,
		"Results":            results,
		"FormatInstructions": digestSchema.FormatInstructions(),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering distill prompt: %w", err)
	}

	raw, err := p.Client.Invoke(ctx, buf.String(), llm.Options{})
	if err != nil {
		return nil, fmt.Errorf("insight distillation: %w", err)
	}

	var d digest
	if err := p.Extractor.Extract(ctx, raw, &d); err != nil {
		return nil, fmt.Errorf("parsing insight digest: %w", err)
	}
	return d.Insights, nil
}
