package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/coursegen/pkg/types"
)

func completeState() *runState {
	state := newRunState("run-x", testSpec)
	state.setPlan(&types.TaskAssignment{Task1: "t"})
	for _, team := range types.AllTeams {
		state.setTeam(team, &types.TeamModules{Module1: "M1"})
	}
	state.setContent(types.ModuleKey{Team: types.TeamCurriculum, Module: 1}, &types.ModuleContent{Title: "c"})
	state.setAssessment(types.ModuleKey{Team: types.TeamAssessment, Module: 1}, &types.ModuleAssessment{ModuleTitle: "a"})
	state.setResources(types.ModuleKey{Team: types.TeamResources, Module: 1}, &types.ModuleResources{ModuleTitle: "r"})
	return state
}

func TestReadyForMetadata(t *testing.T) {
	state := completeState()
	assert.Nil(t, state.readyForMetadata())
}

func TestReadyForMetadataMissingInputs(t *testing.T) {
	tests := []struct {
		name  string
		state func() *runState
		field string
	}{
		{"no plan", func() *runState { return newRunState("r", testSpec) }, "plan"},
		{"missing team", func() *runState {
			s := completeState()
			delete(s.course.Teams, types.TeamContent)
			return s
		}, "team2"},
		{"no content", func() *runState {
			s := completeState()
			s.course.Content = map[types.ModuleKey]*types.ModuleContent{}
			return s
		}, "content"},
		{"no assessments", func() *runState {
			s := completeState()
			s.course.Assessments = map[types.ModuleKey]*types.ModuleAssessment{}
			return s
		}, "assessments"},
		{"no resources", func() *runState {
			s := completeState()
			s.course.Resources = map[types.ModuleKey]*types.ModuleResources{}
			return s
		}, "resources"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pre := tt.state().readyForMetadata()
			require.NotNil(t, pre)
			assert.Equal(t, tt.field, pre.Field)
		})
	}
}

func TestSettersRefuseOverwrite(t *testing.T) {
	state := newRunState("run-x", testSpec)

	first := &types.TaskAssignment{Task1: "first"}
	state.setPlan(first)
	state.setPlan(&types.TaskAssignment{Task1: "second"})
	assert.Same(t, first, state.plan())

	tm := &types.TeamModules{Module1: "first"}
	state.setTeam(types.TeamCurriculum, tm)
	state.setTeam(types.TeamCurriculum, &types.TeamModules{Module1: "second"})
	assert.Same(t, tm, state.team(types.TeamCurriculum))

	md := &types.CourseMetadata{Title: "first"}
	state.setMetadata(md)
	state.setMetadata(&types.CourseMetadata{Title: "second"})
	assert.Same(t, md, state.metadata())
}

func TestSnapshotCarriesRunIdentity(t *testing.T) {
	state := newRunState("run-y", testSpec)
	course := state.snapshot()
	assert.Equal(t, "run-y", course.RunID)
	assert.Equal(t, testSpec, course.Spec)
	assert.False(t, course.CreatedAt.IsZero())
}
