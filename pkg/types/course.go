// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures for the course
// generation pipeline: the course request, the per-stage structured
// artifacts each generation stage must produce, and the assembled
// course document.
package types

import (
	"fmt"
	"time"
)

// Difficulty is the course difficulty tier.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
	DifficultyExpert       Difficulty = "Expert"
)

// TeamID identifies one of the four specialized generation teams.
type TeamID int

const (
	TeamCurriculum TeamID = 1
	TeamContent    TeamID = 2
	TeamAssessment TeamID = 3
	TeamResources  TeamID = 4
)

// AllTeams lists the team identifiers in dispatch order.
var AllTeams = []TeamID{TeamCurriculum, TeamContent, TeamAssessment, TeamResources}

// Specialty returns the team's area of expertise, used in prompts.
func (t TeamID) Specialty() string {
	switch t {
	case TeamCurriculum:
		return "curriculum planning and course structure"
	case TeamContent:
		return "core content development"
	case TeamAssessment:
		return "assessments and practice materials"
	case TeamResources:
		return "resources and advanced materials"
	}
	return "course development"
}

// ModuleID identifies one of the three module stubs a team proposes.
type ModuleID int

// ModuleKey addresses one module proposal: which team proposed it and
// which of that team's three slots it occupies.
type ModuleKey struct {
	Team   TeamID
	Module ModuleID
}

// String renders the key in the document form "team1_module1".
func (k ModuleKey) String() string {
	return fmt.Sprintf("team%d_module%d", k.Team, k.Module)
}

// MarshalText implements encoding.TextMarshaler so ModuleKey can be used
// as a JSON map key.
func (k ModuleKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// MarshalYAML renders the key in its document form for YAML export.
func (k ModuleKey) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ModuleKey) UnmarshalText(text []byte) error {
	var team, module int
	if _, err := fmt.Sscanf(string(text), "team%d_module%d", &team, &module); err != nil {
		return fmt.Errorf("invalid module key %q: %w", text, err)
	}
	k.Team = TeamID(team)
	k.Module = ModuleID(module)
	return nil
}

// CourseSpec holds the generation parameters. It is set once when a run
// is created and never mutated afterward.
type CourseSpec struct {
	Topic         string     `json:"topic" yaml:"topic"`
	Difficulty    Difficulty `json:"difficulty" yaml:"difficulty"`
	Audience      string     `json:"audience" yaml:"audience"`
	LearningGoals []string   `json:"learning_goals" yaml:"learning_goals"`
}

// TeamTask is one team's assignment from the planning stage.
type TeamTask struct {
	Task   string `json:"task" yaml:"task"`
	Detail string `json:"detail" yaml:"detail"`
}

// TaskAssignment is the planning stage output: one task/detail pair per
// team. Teams consume their own entry only.
type TaskAssignment struct {
	Task1   string `json:"task_1" yaml:"task_1"`
	Detail1 string `json:"detail_1" yaml:"detail_1"`
	Task2   string `json:"task_2" yaml:"task_2"`
	Detail2 string `json:"detail_2" yaml:"detail_2"`
	Task3   string `json:"task_3" yaml:"task_3"`
	Detail3 string `json:"detail_3" yaml:"detail_3"`
	Task4   string `json:"task_4" yaml:"task_4"`
	Detail4 string `json:"detail_4" yaml:"detail_4"`
}

// Task returns the assignment for one team.
func (a *TaskAssignment) Task(team TeamID) TeamTask {
	switch team {
	case TeamCurriculum:
		return TeamTask{Task: a.Task1, Detail: a.Detail1}
	case TeamContent:
		return TeamTask{Task: a.Task2, Detail: a.Detail2}
	case TeamAssessment:
		return TeamTask{Task: a.Task3, Detail: a.Detail3}
	case TeamResources:
		return TeamTask{Task: a.Task4, Detail: a.Detail4}
	}
	return TeamTask{}
}

// ModuleStub is one proposed module: title, description, and objectives.
type ModuleStub struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Objectives  []string `json:"objectives" yaml:"objectives"`
}

// TeamModules is a team stage output: exactly three module stubs.
type TeamModules struct {
	Module1      string   `json:"module_1" yaml:"module_1"`
	Description1 string   `json:"description_1" yaml:"description_1"`
	Objectives1  []string `json:"learning_objectives_1" yaml:"learning_objectives_1"`
	Module2      string   `json:"module_2" yaml:"module_2"`
	Description2 string   `json:"description_2" yaml:"description_2"`
	Objectives2  []string `json:"learning_objectives_2" yaml:"learning_objectives_2"`
	Module3      string   `json:"module_3" yaml:"module_3"`
	Description3 string   `json:"description_3" yaml:"description_3"`
	Objectives3  []string `json:"learning_objectives_3" yaml:"learning_objectives_3"`
}

// Stub returns the module proposal in slot m (1-3).
func (t *TeamModules) Stub(m ModuleID) ModuleStub {
	switch m {
	case 1:
		return ModuleStub{Title: t.Module1, Description: t.Description1, Objectives: t.Objectives1}
	case 2:
		return ModuleStub{Title: t.Module2, Description: t.Description2, Objectives: t.Objectives2}
	case 3:
		return ModuleStub{Title: t.Module3, Description: t.Description3, Objectives: t.Objectives3}
	}
	return ModuleStub{}
}

// Stubs returns all three module proposals in slot order.
func (t *TeamModules) Stubs() []ModuleStub {
	return []ModuleStub{t.Stub(1), t.Stub(2), t.Stub(3)}
}

// Section is one section of module content, with optional subsections.
type Section struct {
	Title       string              `json:"title" yaml:"title"`
	Content     string              `json:"content" yaml:"content"`
	Subsections []map[string]string `json:"subsections" yaml:"subsections"`
}

// Example is a worked example inside module content.
type Example struct {
	Title        string   `json:"title" yaml:"title"`
	Scenario     string   `json:"scenario" yaml:"scenario"`
	Content      string   `json:"content" yaml:"content"`
	KeyTakeaways []string `json:"key_takeaways" yaml:"key_takeaways"`
}

// ModuleContent is the content creator stage output for one module.
type ModuleContent struct {
	Title              string              `json:"title" yaml:"title"`
	Introduction       string              `json:"introduction" yaml:"introduction"`
	Sections           []Section           `json:"sections" yaml:"sections"`
	KeyConcepts        []string            `json:"key_concepts" yaml:"key_concepts"`
	Examples           []Example           `json:"examples" yaml:"examples"`
	PracticeActivities []map[string]string `json:"practice_activities" yaml:"practice_activities"`
	Summary            string              `json:"summary" yaml:"summary"`
	FurtherReading     []map[string]string `json:"further_reading" yaml:"further_reading"`
}

// QuizQuestion is one multiple-choice question with context and rationale.
type QuizQuestion struct {
	Question      string   `json:"question" yaml:"question"`
	Context       string   `json:"context" yaml:"context"`
	Options       []string `json:"options" yaml:"options"`
	CorrectAnswer string   `json:"correct_answer" yaml:"correct_answer"`
	Explanation   string   `json:"explanation" yaml:"explanation"`
}

// PracticeProblem is one worked practice problem.
type PracticeProblem struct {
	Problem        string   `json:"problem" yaml:"problem"`
	Context        string   `json:"context" yaml:"context"`
	Solution       string   `json:"solution" yaml:"solution"`
	Hints          []string `json:"hints" yaml:"hints"`
	LearningPoints []string `json:"learning_points" yaml:"learning_points"`
}

// ProjectIdea is one project proposal with an implementation guide.
type ProjectIdea struct {
	Title              string              `json:"title" yaml:"title"`
	Description        string              `json:"description" yaml:"description"`
	LearningGoals      []string            `json:"learning_goals" yaml:"learning_goals"`
	Steps              []map[string]string `json:"steps" yaml:"steps"`
	ResourcesNeeded    []string            `json:"resources_needed" yaml:"resources_needed"`
	EvaluationCriteria []string            `json:"evaluation_criteria" yaml:"evaluation_criteria"`
	Extensions         []string            `json:"extensions" yaml:"extensions"`
}

// ModuleAssessment is the assessment creator stage output for one module.
type ModuleAssessment struct {
	ModuleTitle      string              `json:"module_title" yaml:"module_title"`
	QuizQuestions    []QuizQuestion      `json:"quiz_questions" yaml:"quiz_questions"`
	PracticeProblems []PracticeProblem   `json:"practice_problems" yaml:"practice_problems"`
	ProjectIdeas     []ProjectIdea       `json:"project_ideas" yaml:"project_ideas"`
	SelfAssessment   []map[string]string `json:"self_assessment" yaml:"self_assessment"`
	GradingRubrics   []map[string]string `json:"grading_rubrics" yaml:"grading_rubrics"`
}

// Reading is one recommended reading entry.
type Reading struct {
	Title               string   `json:"title" yaml:"title"`
	Author              string   `json:"author" yaml:"author"`
	Description         string   `json:"description" yaml:"description"`
	KeyTopics           []string `json:"key_topics" yaml:"key_topics"`
	Relevance           string   `json:"relevance" yaml:"relevance"`
	Difficulty          string   `json:"difficulty" yaml:"difficulty"`
	DiscussionQuestions []string `json:"discussion_questions" yaml:"discussion_questions"`
}

// AdvancedTopic is one advanced-study pathway entry.
type AdvancedTopic struct {
	Title           string              `json:"title" yaml:"title"`
	Description     string              `json:"description" yaml:"description"`
	Prerequisites   []string            `json:"prerequisites" yaml:"prerequisites"`
	LearningPathway string              `json:"learning_pathway" yaml:"learning_pathway"`
	Resources       []map[string]string `json:"resources" yaml:"resources"`
	Applications    []string            `json:"applications" yaml:"applications"`
}

// ToolResource is one tool or resource recommendation.
type ToolResource struct {
	Name           string              `json:"name" yaml:"name"`
	Type           string              `json:"type" yaml:"type"`
	Description    string              `json:"description" yaml:"description"`
	UseCases       []string            `json:"use_cases" yaml:"use_cases"`
	GettingStarted string              `json:"getting_started" yaml:"getting_started"`
	Alternatives   []map[string]string `json:"alternatives" yaml:"alternatives"`
}

// GlossaryItem is one glossary entry.
type GlossaryItem struct {
	Term         string   `json:"term" yaml:"term"`
	Definition   string   `json:"definition" yaml:"definition"`
	Context      string   `json:"context" yaml:"context"`
	Examples     []string `json:"examples" yaml:"examples"`
	RelatedTerms []string `json:"related_terms" yaml:"related_terms"`
}

// CaseStudy is one real-world case study.
type CaseStudy struct {
	Title     string   `json:"title" yaml:"title"`
	Scenario  string   `json:"scenario" yaml:"scenario"`
	Analysis  string   `json:"analysis" yaml:"analysis"`
	Lessons   []string `json:"lessons" yaml:"lessons"`
	Questions []string `json:"questions" yaml:"questions"`
}

// ModuleResources is the resources creator stage output for one module.
type ModuleResources struct {
	ModuleTitle         string              `json:"module_title" yaml:"module_title"`
	RecommendedReadings []Reading           `json:"recommended_readings" yaml:"recommended_readings"`
	AdvancedTopics      []AdvancedTopic     `json:"advanced_topics" yaml:"advanced_topics"`
	ToolsAndResources   []ToolResource      `json:"tools_and_resources" yaml:"tools_and_resources"`
	Glossary            []GlossaryItem      `json:"glossary" yaml:"glossary"`
	CaseStudies         []CaseStudy         `json:"case_studies" yaml:"case_studies"`
	CheatSheets         []map[string]string `json:"cheat_sheets" yaml:"cheat_sheets"`
}

// ModuleSummary is one module entry in the course metadata.
type ModuleSummary struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// CourseMetadata is the final structured course descriptor.
type CourseMetadata struct {
	Title                 string          `json:"title" yaml:"title"`
	Description           string          `json:"description" yaml:"description"`
	TargetAudience        string          `json:"target_audience" yaml:"target_audience"`
	Prerequisites         []string        `json:"prerequisites" yaml:"prerequisites"`
	LearningOutcomes      []string        `json:"learning_outcomes" yaml:"learning_outcomes"`
	Modules               []ModuleSummary `json:"modules" yaml:"modules"`
	EstimatedDuration     string          `json:"estimated_duration" yaml:"estimated_duration"`
	DifficultyLevel       string          `json:"difficulty_level" yaml:"difficulty_level"`
	InstructionalApproach string          `json:"instructional_approach" yaml:"instructional_approach"`
	AuthorsNote           string          `json:"authors_note" yaml:"authors_note"`
}

// Feedback is the quality review produced at the end of a run.
type Feedback struct {
	Strengths           []string `json:"strengths" yaml:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement" yaml:"areas_for_improvement"`
	ContentAccuracy     int      `json:"content_accuracy" yaml:"content_accuracy"`
	EngagementLevel     int      `json:"engagement_level" yaml:"engagement_level"`
	Clarity             int      `json:"clarity" yaml:"clarity"`
	OverallQuality      int      `json:"overall_quality" yaml:"overall_quality"`
	Recommendations     []string `json:"recommendations" yaml:"recommendations"`
}

// Course is the complete assembled document handed to the persistence
// collaborator at the end of a successful run.
type Course struct {
	RunID       string                          `json:"run_id" yaml:"run_id"`
	Spec        CourseSpec                      `json:"spec" yaml:"spec"`
	Insights    []string                        `json:"insights,omitempty" yaml:"insights,omitempty"`
	Plan        *TaskAssignment                 `json:"plan" yaml:"plan"`
	Teams       map[TeamID]*TeamModules         `json:"teams" yaml:"teams"`
	Content     map[ModuleKey]*ModuleContent    `json:"content" yaml:"content"`
	Assessments map[ModuleKey]*ModuleAssessment `json:"assessments" yaml:"assessments"`
	Resources   map[ModuleKey]*ModuleResources  `json:"resources" yaml:"resources"`
	Metadata    *CourseMetadata                 `json:"metadata" yaml:"metadata"`
	Feedback    *Feedback                       `json:"feedback" yaml:"feedback"`
	CreatedAt   time.Time                       `json:"created_at" yaml:"created_at"`
}
