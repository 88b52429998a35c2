package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/coursegen/internal/insight"
	"github.com/pdiddy/coursegen/internal/llm"
	"github.com/pdiddy/coursegen/internal/stage"
	"github.com/pdiddy/coursegen/pkg/types"
)

var testSpec = types.CourseSpec{
	Topic:         "Graph Theory",
	Difficulty:    types.DifficultyIntermediate,
	Audience:      "software engineers",
	LearningGoals: []string{"model problems as graphs"},
}

const planJSON = `{
	"task_1": "Plan the curriculum", "detail_1": "Structure and sequencing.",
	"task_2": "Develop core content", "detail_2": "Concepts and examples.",
	"task_3": "Design assessments", "detail_3": "Quizzes and projects.",
	"task_4": "Curate resources", "detail_4": "Readings and tools."
}`

const teamJSON = `{
	"module_1": "Graph Basics", "description_1": "Vertices and edges.",
	"learning_objectives_1": ["define graphs"],
	"module_2": "Traversals", "description_2": "BFS and DFS.",
	"learning_objectives_2": ["walk graphs"],
	"module_3": "Applications", "description_3": "Real uses.",
	"learning_objectives_3": ["apply graphs"]
}`

const contentJSON = `{
	"title": "Graph Basics", "introduction": "Graphs model relations.",
	"sections": [{"title": "Vertices", "content": "A vertex is a node.", "subsections": []}],
	"key_concepts": ["vertex", "edge"], "examples": [], "practice_activities": [],
	"summary": "Graphs are everywhere.", "further_reading": []
}`

const assessmentJSON = `{
	"module_title": "Graph Basics",
	"quiz_questions": [{"question": "What is a vertex?", "context": "",
		"options": ["a node", "an edge"], "correct_answer": "a node", "explanation": "By definition."}],
	"practice_problems": [], "project_ideas": [], "self_assessment": [], "grading_rubrics": []
}`

const resourcesJSON = `{
	"module_title": "Graph Basics",
	"recommended_readings": [{"title": "Introduction to Graph Theory", "author": "West",
		"description": "Standard text.", "key_topics": [], "relevance": "", "difficulty": "",
		"discussion_questions": []}],
	"advanced_topics": [], "tools_and_resources": [], "glossary": [], "case_studies": [], "cheat_sheets": []
}`

const metadataJSON = `{
	"title": "Graph Theory for Engineers", "description": "A practical course.",
	"target_audience": "software engineers", "prerequisites": [], "learning_outcomes": [],
	"modules": [{"title": "Graph Basics", "description": "Vertices and edges."}],
	"estimated_duration": "6 weeks", "difficulty_level": "Intermediate",
	"instructional_approach": "hands-on", "authors_note": "Enjoy."
}`

const feedbackJSON = `{
	"strengths": ["clear"], "areas_for_improvement": ["pace"],
	"content_accuracy": 8, "engagement_level": 7, "clarity": 9,
	"overall_quality": 8, "recommendations": ["more examples"]
}`

// routingClient answers each prompt by recognizing the stage persona.
// responses maps a persona marker to the scripted reply; overrides let a
// test corrupt one stage's output.
type routingClient struct {
	mu        sync.Mutex
	prompts   []string
	calls     map[string]int
	overrides map[string]string
}

func newRoutingClient() *routingClient {
	return &routingClient{calls: make(map[string]int), overrides: make(map[string]string)}
}

var personas = []struct {
	marker string
	kind   string
	reply  string
}{
	{"course designer team manager", "plan", planJSON},
	{"expert course content developer specializing", "team", teamJSON},
	{"educational content creator", "content", contentJSON},
	{"educational assessment design", "assessment", assessmentJSON},
	{"educational resource curation", "resources", resourcesJSON},
	{"final course metadata", "metadata", metadataJSON},
	{"educational quality reviewer", "feedback", feedbackJSON},
	{"JSON issue resolver", "repair", `{}`},
}

func (c *routingClient) Invoke(_ context.Context, prompt string, _ llm.Options) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prompts = append(c.prompts, prompt)
	for _, p := range personas {
		if strings.Contains(prompt, p.marker) {
			c.calls[p.kind]++
			if override, ok := c.overrides[p.kind]; ok {
				return override, nil
			}
			return p.reply, nil
		}
	}
	return "", fmt.Errorf("unrecognized prompt: %.80s", prompt)
}

func (c *routingClient) count(kind string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[kind]
}

func (c *routingClient) promptContaining(marker string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.prompts {
		if strings.Contains(p, marker) {
			return p
		}
	}
	return ""
}

func pinRunID(t *testing.T, id string) {
	t.Helper()
	orig := newRunID
	newRunID = func() string { return id }
	t.Cleanup(func() { newRunID = orig })
}

func testConfig() types.GenerationConfig {
	return types.GenerationConfig{
		AIConfig:     types.AIConfig{Temperature: 0.7},
		StageTimeout: time.Minute,
	}
}

func TestRunHappyPath(t *testing.T) {
	pinRunID(t, "run-test-1")
	client := newRoutingClient()
	p := New(testConfig(), client, insight.None{}, nil)

	var out bytes.Buffer
	course, err := p.Run(context.Background(), testSpec, &out)
	require.NoError(t, err)

	assert.Equal(t, "run-test-1", course.RunID)
	assert.Equal(t, testSpec, course.Spec)
	require.NotNil(t, course.Plan)
	assert.Equal(t, "Plan the curriculum", course.Plan.Task1)

	require.Len(t, course.Teams, 4)
	assert.Equal(t, "Graph Basics", course.Teams[types.TeamCurriculum].Module1)

	assert.Len(t, course.Content, 2)
	require.NotNil(t, course.Content[types.ModuleKey{Team: types.TeamCurriculum, Module: 1}])
	require.NotNil(t, course.Content[types.ModuleKey{Team: types.TeamContent, Module: 1}])
	require.NotNil(t, course.Assessments[types.ModuleKey{Team: types.TeamAssessment, Module: 1}])
	require.NotNil(t, course.Resources[types.ModuleKey{Team: types.TeamResources, Module: 1}])

	require.NotNil(t, course.Metadata)
	assert.Equal(t, "Graph Theory for Engineers", course.Metadata.Title)
	require.NotNil(t, course.Feedback)
	assert.Equal(t, 8, course.Feedback.OverallQuality)
	assert.False(t, course.CreatedAt.IsZero())

	assert.Equal(t, 1, client.count("plan"))
	assert.Equal(t, 4, client.count("team"))
	assert.Equal(t, 2, client.count("content"))
	assert.Equal(t, 1, client.count("assessment"))
	assert.Equal(t, 1, client.count("resources"))
	assert.Equal(t, 1, client.count("metadata"))
	assert.Equal(t, 1, client.count("feedback"))
	assert.Zero(t, client.count("repair"))

	assert.Contains(t, out.String(), "run run-test-1 complete")
}

// staticInsights is a Provider stub for pipeline tests.
type staticInsights struct {
	insights []string
	err      error
}

func (s staticInsights) Insights(context.Context, types.CourseSpec) ([]string, error) {
	return s.insights, s.err
}

func TestRunInjectsInsightsIntoPlan(t *testing.T) {
	client := newRoutingClient()
	p := New(testConfig(), client, staticInsights{insights: []string{"start with adjacency lists"}}, nil)

	var out bytes.Buffer
	course, err := p.Run(context.Background(), testSpec, &out)
	require.NoError(t, err)

	assert.Equal(t, []string{"start with adjacency lists"}, course.Insights)
	planPrompt := client.promptContaining("course designer team manager")
	assert.Contains(t, planPrompt, "start with adjacency lists")
}

func TestRunToleratesInsightFailure(t *testing.T) {
	client := newRoutingClient()
	p := New(testConfig(), client, staticInsights{err: fmt.Errorf("search down")}, nil)

	var out bytes.Buffer
	course, err := p.Run(context.Background(), testSpec, &out)
	require.NoError(t, err, "insight failure must not abort the run")
	assert.Empty(t, course.Insights)
	assert.Contains(t, out.String(), "warning: insight gathering failed")
}

func TestRunPlanFailureAborts(t *testing.T) {
	client := newRoutingClient()
	client.overrides["plan"] = "not json"
	client.overrides["repair"] = "still not json"
	p := New(testConfig(), client, insight.None{}, nil)

	var out bytes.Buffer
	_, err := p.Run(context.Background(), testSpec, &out)
	require.Error(t, err)

	var failure *stage.Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, stage.Plan, failure.Stage)

	assert.Equal(t, 1, client.count("repair"), "extractor gets one repair attempt")
	assert.Zero(t, client.count("team"), "no downstream stage may run")
}

func TestRunTeamFailureBlocksMetadata(t *testing.T) {
	client := newRoutingClient()
	client.overrides["team"] = "garbage output"
	client.overrides["repair"] = "more garbage"
	p := New(testConfig(), client, insight.None{}, nil)

	var out bytes.Buffer
	_, err := p.Run(context.Background(), testSpec, &out)
	require.Error(t, err)

	var failure *stage.Failure
	require.ErrorAs(t, err, &failure)
	assert.True(t, strings.HasPrefix(string(failure.Stage), "team"), "failure names the team stage, got %s", failure.Stage)
	assert.Zero(t, client.count("metadata"), "metadata must not run with missing team outputs")
	assert.Zero(t, client.count("feedback"))
}

func TestRunMetadataPrecondition(t *testing.T) {
	client := newRoutingClient()
	p := New(testConfig(), client, insight.None{}, nil)

	state := newRunState("run-x", testSpec)
	state.setPlan(&types.TaskAssignment{Task1: "t"})
	state.setTeam(types.TeamCurriculum, &types.TeamModules{})
	// Teams 2-4 missing.

	var out bytes.Buffer
	err := p.runMetadata(context.Background(), state, &out)
	require.Error(t, err)

	var failure *stage.Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, stage.Metadata, failure.Stage)

	var pre *stage.PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.Equal(t, "team2", pre.Field)
	assert.Zero(t, client.count("metadata"), "no model call on failed precondition")
}

func TestRunMissingTaskIsPrecondition(t *testing.T) {
	client := newRoutingClient()
	// Plan parses and validates only if all eight fields are set, so an
	// empty task can only come from a bug; simulate via direct state.
	p := New(testConfig(), client, insight.None{}, nil)
	state := newRunState("run-x", testSpec)
	state.setPlan(&types.TaskAssignment{Task1: "only one"})

	var out bytes.Buffer
	err := p.runTeams(context.Background(), state, &out)
	require.Error(t, err)

	var pre *stage.PreconditionError
	require.ErrorAs(t, err, &pre)
}

func TestRunRecoversViaRepair(t *testing.T) {
	client := newRoutingClient()
	client.overrides["metadata"] = `{"title": "Broken`
	client.overrides["repair"] = metadataJSON
	p := New(testConfig(), client, insight.None{}, nil)

	var out bytes.Buffer
	course, err := p.Run(context.Background(), testSpec, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, client.count("repair"))
	assert.Equal(t, "Graph Theory for Engineers", course.Metadata.Title)
}

// captureSaver records the course handed to Save.
type captureSaver struct {
	saved *types.Course
	err   error
}

func (s *captureSaver) Save(_ context.Context, course *types.Course) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = course
	return "courses/course_" + course.RunID + ".json", nil
}

func TestRunPersistsThroughSaver(t *testing.T) {
	pinRunID(t, "run-save-1")
	saver := &captureSaver{}
	p := New(testConfig(), newRoutingClient(), insight.None{}, saver)

	var out bytes.Buffer
	course, err := p.Run(context.Background(), testSpec, &out)
	require.NoError(t, err)
	require.NotNil(t, saver.saved)
	assert.Equal(t, course.RunID, saver.saved.RunID)
	assert.Contains(t, out.String(), "course saved to courses/course_run-save-1.json")
}

func TestRunSaveFailureAborts(t *testing.T) {
	saver := &captureSaver{err: fmt.Errorf("disk full")}
	p := New(testConfig(), newRoutingClient(), insight.None{}, saver)

	var out bytes.Buffer
	_, err := p.Run(context.Background(), testSpec, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persisting course")
}

func TestDefaultSamplingApplied(t *testing.T) {
	p := New(types.GenerationConfig{}, newRoutingClient(), insight.None{}, nil)
	assert.Equal(t, types.DefaultSamplingPolicy(), p.Sampling)
}

func TestPartialSamplingFilledPerField(t *testing.T) {
	cfg := types.GenerationConfig{
		Sampling: types.SamplingPolicy{ContentTeams: []types.TeamID{types.TeamCurriculum}},
	}
	p := New(cfg, newRoutingClient(), insight.None{}, nil)

	assert.Equal(t, []types.TeamID{types.TeamCurriculum}, p.Sampling.ContentTeams)
	assert.Equal(t, types.TeamAssessment, p.Sampling.AssessmentTeam)
	assert.Equal(t, types.TeamResources, p.Sampling.ResourcesTeam)

	var out bytes.Buffer
	course, err := p.Run(context.Background(), testSpec, &out)
	require.NoError(t, err)
	assert.Len(t, course.Content, 1)
	require.NotNil(t, course.Assessments[types.ModuleKey{Team: types.TeamAssessment, Module: 1}])
	require.NotNil(t, course.Resources[types.ModuleKey{Team: types.TeamResources, Module: 1}])
}
