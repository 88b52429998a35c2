// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stage runs one generation stage: render a prompt, invoke the
// model once, and coerce the response through the extractor. Failures
// are never retried here; recovery beyond the extractor's one-shot
// repair is the caller's decision.
package stage

import (
	"context"
	"fmt"
	"time"

	"github.com/pdiddy/coursegen/internal/extractor"
	"github.com/pdiddy/coursegen/internal/llm"
	"github.com/pdiddy/coursegen/pkg/types"
)

// ID identifies one generation stage in a run.
type ID string

const (
	Plan     ID = "plan"
	Metadata ID = "metadata"
	Feedback ID = "feedback"
)

// Team returns the stage ID for one team's module-proposal stage.
func Team(team types.TeamID) ID {
	return ID(fmt.Sprintf("team%d", team))
}

// Content returns the stage ID for a module content creator.
func Content(k types.ModuleKey) ID {
	return ID("content_" + k.String())
}

// Assessment returns the stage ID for a module assessment creator.
func Assessment(k types.ModuleKey) ID {
	return ID("assessment_" + k.String())
}

// Resources returns the stage ID for a module resources creator.
func Resources(k types.ModuleKey) ID {
	return ID("resources_" + k.String())
}

// Failure reports that a stage could not complete. Err is the cause: a
// *extractor.MalformedError, a model-invocation error, or a
// *PreconditionError.
type Failure struct {
	Stage ID
	Err   error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("stage %s failed: %v", f.Stage, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// PreconditionError reports that a stage's declared input was absent or
// empty when the stage attempted to start. It indicates a sequencing bug
// or an upstream stage that produced an empty result.
type PreconditionError struct {
	Field string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("missing precondition: %s is not populated", e.Field)
}

// Runner invokes the model for one stage and parses the result. Each Run
// makes exactly one model call, plus at most one repair call inside the
// extractor.
type Runner struct {
	Client    llm.Client
	Extractor *extractor.Extractor

	// Timeout bounds each stage's model call. Zero disables the bound.
	Timeout time.Duration

	// Temperature is passed through to generation calls.
	Temperature float64
}

// Run invokes the model with the rendered prompt and extracts the
// response into target. Any error is wrapped as a *Failure carrying the
// stage ID.
func (r *Runner) Run(ctx context.Context, id ID, prompt string, target extractor.Target) error {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	raw, err := r.Client.Invoke(ctx, prompt, llm.Options{Temperature: r.Temperature})
	if err != nil {
		return &Failure{Stage: id, Err: fmt.Errorf("model invocation: %w", err)}
	}

	if err := r.Extractor.Extract(ctx, raw, target); err != nil {
		return &Failure{Stage: id, Err: err}
	}
	return nil
}
