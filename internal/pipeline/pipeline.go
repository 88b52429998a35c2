// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates a course generation run: plan, team
// fan-out, per-module creators, metadata integration, and quality
// review. Stages within a tier run concurrently; tiers run in order.
// Any stage failure aborts the run with the failing stage identified.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/coursegen/internal/extractor"
	"github.com/pdiddy/coursegen/internal/insight"
	"github.com/pdiddy/coursegen/internal/llm"
	"github.com/pdiddy/coursegen/internal/repair"
	"github.com/pdiddy/coursegen/internal/stage"
	"github.com/pdiddy/coursegen/pkg/types"
)

// newRunID is a var so tests can pin run identifiers.
var newRunID = func() string {
	return time.Now().UTC().Format("20060102-150405")
}

// Saver durably stores a finished course keyed by its run ID and
// returns the document location.
type Saver interface {
	Save(ctx context.Context, course *types.Course) (string, error)
}

// Pipeline runs the course generation stages against one model client.
// Store may be nil, in which case the caller owns persistence.
type Pipeline struct {
	Runner   *stage.Runner
	Insights insight.Provider
	Store    Saver
	Sampling types.SamplingPolicy

	// wmu serializes progress writes from concurrent stages.
	wmu sync.Mutex
}

// progress writes one progress line; safe from concurrent stages.
func (p *Pipeline) progress(w io.Writer, format string, args ...any) {
	p.wmu.Lock()
	defer p.wmu.Unlock()
	fmt.Fprintf(w, format, args...)
}

// New wires a pipeline from config: the stage runner gets an extractor
// whose repair agent shares the main model client.
func New(cfg types.GenerationConfig, client llm.Client, insights insight.Provider, store Saver) *Pipeline {
	return &Pipeline{
		Runner: &stage.Runner{
			Client:      client,
			Extractor:   extractor.NewWithRepair(repair.New(client)),
			Timeout:     cfg.StageTimeout,
			Temperature: cfg.Temperature,
		},
		Insights: insights,
		Store:    store,
		Sampling: cfg.Sampling.WithDefaults(),
	}
}

// Run executes a full generation run for spec and returns the assembled
// course. Progress lines go to w. Insight gathering is best-effort; any
// generation stage failure aborts the run.
func (p *Pipeline) Run(ctx context.Context, spec types.CourseSpec, w io.Writer) (*types.Course, error) {
	state := newRunState(newRunID(), spec)

	insights, err := p.Insights.Insights(ctx, spec)
	if err != nil {
		p.progress(w, "warning: insight gathering failed, proceeding without: %v\n", err)
	} else if len(insights) > 0 {
		p.progress(w, "gathered %d expert insights\n", len(insights))
		state.setInsights(insights)
	}

	if err := p.runPlan(ctx, state, w); err != nil {
		return nil, err
	}
	if err := p.runTeams(ctx, state, w); err != nil {
		return nil, err
	}
	if err := p.runCreators(ctx, state, w); err != nil {
		return nil, err
	}
	if err := p.runMetadata(ctx, state, w); err != nil {
		return nil, err
	}
	if err := p.runFeedback(ctx, state, w); err != nil {
		return nil, err
	}

	course := state.snapshot()
	if p.Store != nil {
		path, err := p.Store.Save(ctx, course)
		if err != nil {
			return nil, fmt.Errorf("persisting course: %w", err)
		}
		p.progress(w, "course saved to %s\n", path)
	}
	p.progress(w, "run %s complete: %d modules across %d teams\n",
		course.RunID, len(course.Teams)*3, len(course.Teams))
	return course, nil
}

func (p *Pipeline) runPlan(ctx context.Context, state *runState, w io.Writer) error {
	prompt, err := stage.PlanPrompt(state.course.Spec, state.course.Insights)
	if err != nil {
		return &stage.Failure{Stage: stage.Plan, Err: err}
	}

	var plan types.TaskAssignment
	if err := p.Runner.Run(ctx, stage.Plan, prompt, &plan); err != nil {
		return err
	}
	state.setPlan(&plan)
	p.progress(w, "stage %s complete: tasks assigned to %d teams\n", stage.Plan, len(types.AllTeams))
	return nil
}

func (p *Pipeline) runTeams(ctx context.Context, state *runState, w io.Writer) error {
	plan := state.plan()
	if plan == nil {
		return &stage.Failure{Stage: stage.Team(types.TeamCurriculum), Err: &stage.PreconditionError{Field: "plan"}}
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, team := range types.AllTeams {
		team := team
		g.Go(func() error {
			id := stage.Team(team)
			task := plan.Task(team)
			if task.Task == "" {
				return &stage.Failure{Stage: id, Err: &stage.PreconditionError{Field: fmt.Sprintf("task_%d", team)}}
			}

			prompt, err := stage.TeamPrompt(team, task, state.course.Spec)
			if err != nil {
				return &stage.Failure{Stage: id, Err: err}
			}

			var modules types.TeamModules
			if err := p.Runner.Run(gCtx, id, prompt, &modules); err != nil {
				return err
			}
			state.setTeam(team, &modules)
			p.progress(w, "stage %s complete: 3 modules proposed\n", id)
			return nil
		})
	}
	return g.Wait()
}

// creatorJob is one per-module artifact generation task.
type creatorJob struct {
	id  stage.ID
	key types.ModuleKey
	run func(ctx context.Context, stub types.ModuleStub) error
}

func (p *Pipeline) runCreators(ctx context.Context, state *runState, w io.Writer) error {
	spec := state.course.Spec

	var jobs []creatorJob
	for _, team := range p.Sampling.ContentTeams {
		key := types.ModuleKey{Team: team, Module: 1}
		jobs = append(jobs, creatorJob{
			id:  stage.Content(key),
			key: key,
			run: func(ctx context.Context, stub types.ModuleStub) error {
				prompt, err := stage.ContentPrompt(stub, spec)
				if err != nil {
					return err
				}
				var content types.ModuleContent
				if err := p.Runner.Run(ctx, stage.Content(key), prompt, &content); err != nil {
					return err
				}
				state.setContent(key, &content)
				return nil
			},
		})
	}

	assessKey := types.ModuleKey{Team: p.Sampling.AssessmentTeam, Module: 1}
	jobs = append(jobs, creatorJob{
		id:  stage.Assessment(assessKey),
		key: assessKey,
		run: func(ctx context.Context, stub types.ModuleStub) error {
			prompt, err := stage.AssessmentPrompt(stub, spec)
			if err != nil {
				return err
			}
			var assessment types.ModuleAssessment
			if err := p.Runner.Run(ctx, stage.Assessment(assessKey), prompt, &assessment); err != nil {
				return err
			}
			state.setAssessment(assessKey, &assessment)
			return nil
		},
	})

	resKey := types.ModuleKey{Team: p.Sampling.ResourcesTeam, Module: 1}
	jobs = append(jobs, creatorJob{
		id:  stage.Resources(resKey),
		key: resKey,
		run: func(ctx context.Context, stub types.ModuleStub) error {
			prompt, err := stage.ResourcesPrompt(stub, spec)
			if err != nil {
				return err
			}
			var resources types.ModuleResources
			if err := p.Runner.Run(ctx, stage.Resources(resKey), prompt, &resources); err != nil {
				return err
			}
			state.setResources(resKey, &resources)
			return nil
		},
	})

	g, gCtx := errgroup.WithContext(ctx)
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			modules := state.team(job.key.Team)
			if modules == nil {
				return &stage.Failure{Stage: job.id, Err: &stage.PreconditionError{Field: string(stage.Team(job.key.Team))}}
			}
			if err := job.run(gCtx, modules.Stub(job.key.Module)); err != nil {
				return err
			}
			p.progress(w, "stage %s complete\n", job.id)
			return nil
		})
	}
	return g.Wait()
}

func (p *Pipeline) runMetadata(ctx context.Context, state *runState, w io.Writer) error {
	if pre := state.readyForMetadata(); pre != nil {
		return &stage.Failure{Stage: stage.Metadata, Err: pre}
	}

	prompt, err := stage.MetadataPrompt(state.course.Spec, state.teams())
	if err != nil {
		return &stage.Failure{Stage: stage.Metadata, Err: err}
	}

	var metadata types.CourseMetadata
	if err := p.Runner.Run(ctx, stage.Metadata, prompt, &metadata); err != nil {
		return err
	}
	state.setMetadata(&metadata)
	p.progress(w, "stage %s complete: %q\n", stage.Metadata, metadata.Title)
	return nil
}

func (p *Pipeline) runFeedback(ctx context.Context, state *runState, w io.Writer) error {
	metadata := state.metadata()
	if metadata == nil {
		return &stage.Failure{Stage: stage.Feedback, Err: &stage.PreconditionError{Field: "metadata"}}
	}

	materials := stage.ReviewMaterials{Metadata: metadata}
	if len(p.Sampling.ContentTeams) > 0 {
		materials.ContentSample = state.content(types.ModuleKey{Team: p.Sampling.ContentTeams[0], Module: 1})
	}
	materials.AssessmentSample = state.assessment(types.ModuleKey{Team: p.Sampling.AssessmentTeam, Module: 1})
	materials.ResourcesSample = state.resources(types.ModuleKey{Team: p.Sampling.ResourcesTeam, Module: 1})

	prompt, err := stage.FeedbackPrompt(state.course.Spec, materials)
	if err != nil {
		return &stage.Failure{Stage: stage.Feedback, Err: err}
	}

	var feedback types.Feedback
	if err := p.Runner.Run(ctx, stage.Feedback, prompt, &feedback); err != nil {
		return err
	}
	state.setFeedback(&feedback)
	p.progress(w, "stage %s complete: overall quality %d/10\n", stage.Feedback, feedback.OverallQuality)
	return nil
}
