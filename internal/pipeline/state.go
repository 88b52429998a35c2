// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"sync"
	"time"

	"github.com/pdiddy/coursegen/internal/stage"
	"github.com/pdiddy/coursegen/pkg/types"
)

// runState accumulates stage outputs for one run. Writers from
// concurrent stages go through the setters; fields are never overwritten
// once populated, only appended to.
type runState struct {
	mu     sync.Mutex
	course types.Course
}

func newRunState(runID string, spec types.CourseSpec) *runState {
	return &runState{
		course: types.Course{
			RunID:       runID,
			Spec:        spec,
			Teams:       make(map[types.TeamID]*types.TeamModules, len(types.AllTeams)),
			Content:     make(map[types.ModuleKey]*types.ModuleContent),
			Assessments: make(map[types.ModuleKey]*types.ModuleAssessment),
			Resources:   make(map[types.ModuleKey]*types.ModuleResources),
			CreatedAt:   time.Now().UTC(),
		},
	}
}

func (s *runState) setInsights(insights []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.course.Insights = insights
}

func (s *runState) setPlan(plan *types.TaskAssignment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.course.Plan != nil {
		return
	}
	s.course.Plan = plan
}

func (s *runState) plan() *types.TaskAssignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.course.Plan
}

func (s *runState) setTeam(team types.TeamID, modules *types.TeamModules) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.course.Teams[team] != nil {
		return
	}
	s.course.Teams[team] = modules
}

func (s *runState) team(team types.TeamID) *types.TeamModules {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.course.Teams[team]
}

func (s *runState) teams() map[types.TeamID]*types.TeamModules {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make(map[types.TeamID]*types.TeamModules, len(s.course.Teams))
	for k, v := range s.course.Teams {
		copied[k] = v
	}
	return copied
}

func (s *runState) setContent(key types.ModuleKey, c *types.ModuleContent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.course.Content[key] != nil {
		return
	}
	s.course.Content[key] = c
}

func (s *runState) content(key types.ModuleKey) *types.ModuleContent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.course.Content[key]
}

func (s *runState) setAssessment(key types.ModuleKey, a *types.ModuleAssessment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.course.Assessments[key] != nil {
		return
	}
	s.course.Assessments[key] = a
}

func (s *runState) assessment(key types.ModuleKey) *types.ModuleAssessment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.course.Assessments[key]
}

func (s *runState) setResources(key types.ModuleKey, r *types.ModuleResources) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.course.Resources[key] != nil {
		return
	}
	s.course.Resources[key] = r
}

func (s *runState) resources(key types.ModuleKey) *types.ModuleResources {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.course.Resources[key]
}

func (s *runState) setMetadata(m *types.CourseMetadata) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.course.Metadata != nil {
		return
	}
	s.course.Metadata = m
}

func (s *runState) metadata() *types.CourseMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.course.Metadata
}

func (s *runState) setFeedback(f *types.Feedback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.course.Feedback != nil {
		return
	}
	s.course.Feedback = f
}

// readyForMetadata verifies that the metadata stage's declared inputs
// are all populated: the plan, every team's modules, and at least one
// artifact of each kind. A missing input is a sequencing bug or a
// swallowed upstream failure, never something to paper over with a
// model call.
func (s *runState) readyForMetadata() *stage.PreconditionError {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.course.Plan == nil {
		return &stage.PreconditionError{Field: "plan"}
	}
	for _, team := range types.AllTeams {
		if s.course.Teams[team] == nil {
			return &stage.PreconditionError{Field: string(stage.Team(team))}
		}
	}
	if len(s.course.Content) == 0 {
		return &stage.PreconditionError{Field: "content"}
	}
	if len(s.course.Assessments) == 0 {
		return &stage.PreconditionError{Field: "assessments"}
	}
	if len(s.course.Resources) == 0 {
		return &stage.PreconditionError{Field: "resources"}
	}
	return nil
}

// snapshot returns the assembled course document.
func (s *runState) snapshot() *types.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	course := s.course
	return &course
}
