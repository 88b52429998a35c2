// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/pdiddy/coursegen/internal/schema"
	"github.com/pdiddy/coursegen/pkg/types"
)

// planTmpl is the planning stage prompt: the manager divides the course
// work among the four specialized teams.
var planTmpl = template.Must(template.New("plan").Parse(`You are an expert course designer team manager with a PhD in instructional design and curriculum development.

User requested a course on: {{.Topic}}
Difficulty level: {{.Difficulty}}
Target audience: {{.Audience}}
Learning goals: {{.Goals}}
{{if .Insights}}
Expert insights from research:
{{range .Insights}}- {{.}}
{{end}}{{end}}
You are managing 4 specialized teams to create a comprehensive, expert-level course:

1. Curriculum Planning Team: Responsible for overall structure, learning objectives, module sequencing
2. Content Development Team: Responsible for developing main educational content, explanations, and core concepts
3. Assessment Team: Responsible for exercises, quizzes, practice materials, and projects
4. Resources Team: Responsible for supplementary materials, references, advanced topics, and glossaries

Divide the course creation tasks among these teams in a way that ensures a cohesive, high-quality learning experience.
Be specific about what each team should focus on for this particular course topic.

{{.FormatInstructions}}
`))

// teamTmpl is the team stage prompt: one team proposes three modules.
var teamTmpl = template.Must(template.New("team").Parse(`You are an expert course content developer specializing in {{.Specialty}} with years of experience creating professional educational content.

Here is the task received from the course manager:
Task: {{.Task}}
Description: {{.Detail}}

Course Information:
- Topic: {{.Topic}}
- Difficulty level: {{.Difficulty}}
- Target audience: {{.Audience}}
- Learning goals: {{.Goals}}

Your job is to propose three comprehensive, well-structured modules that fulfill your team's assignment for this course.
Each module should:
- Have a clear, descriptive title
- Include a concise but thorough description
- List specific learning objectives that align with the overall course goals
- Follow a logical progression that builds expertise step by step

{{.FormatInstructions}}
`))

// moduleTmplText is shared by the content, assessment, and resources
// creator prompts; only the mission paragraph differs.
const moduleTmplText = `{{.Mission}}

You're working on the following module in a course about {{.Topic}}:

Module Title: {{.ModuleTitle}}
Module Description: {{.ModuleDescription}}
Learning Objectives: {{.Objectives}}

Course Information:
- Difficulty level: {{.Difficulty}}
- Target audience: {{.Audience}}

{{.Directives}}

{{.FormatInstructions}}
`

var moduleTmpl = template.Must(template.New("module").Parse(moduleTmplText))

// metadataTmpl is the metadata stage prompt: integrate all team outputs
// into the final course descriptor.
var metadataTmpl = template.Must(template.New("metadata").Parse(`You are an expert course designer responsible for creating the final course metadata and structure.

You are integrating a comprehensive course on: {{.Topic}}

Review the modules created by the different teams:

Team 1 (Curriculum Planning) Modules:
{{.Team1}}

Team 2 (Content Development) Modules:
{{.Team2}}

Team 3 (Assessment) Modules:
{{.Team3}}

Team 4 (Resources) Modules:
{{.Team4}}

Course Information:
- Difficulty level: {{.Difficulty}}
- Target audience: {{.Audience}}
- Learning goals: {{.Goals}}

Create comprehensive course metadata that:
- Provides a compelling course title and description
- Clearly defines prerequisites and learning outcomes
- Organizes all modules into a cohesive structure
- Estimates appropriate course duration
- Describes the instructional approach
- Includes an authentic "note from the authors"

{{.FormatInstructions}}
`))

// feedbackTmpl is the quality review prompt.
var feedbackTmpl = template.Must(template.New("feedback").Parse(`You are an expert educational quality reviewer with extensive experience evaluating curriculum and course materials.

You are reviewing content for a course on: {{.Topic}}

Course metadata:
{{.Metadata}}

Sample module content:
{{.ContentSample}}

Sample assessment materials:
{{.AssessmentSample}}

Sample supplementary resources:
{{.ResourcesSample}}

Based on these materials, provide a comprehensive quality review that:
- Identifies specific strengths of the course materials
- Pinpoints concrete areas for improvement
- Rates various quality dimensions on a scale of 1-10
- Offers specific recommendations for enhancing the course

Consider factors such as alignment with learning objectives, clarity of
explanations, engagement, assessment quality, comprehensiveness of
resources, and overall coherence and progression.

{{.FormatInstructions}}
`))

// goalList renders learning goals for prompt injection.
func goalList(goals []string) string {
	return strings.Join(goals, ", ")
}

// PlanPrompt renders the planning stage prompt. Insights may be empty.
func PlanPrompt(spec types.CourseSpec, insights []string) (string, error) {
	return render(planTmpl, map[string]any{
		"Topic":              spec.Topic,
		"Difficulty":         spec.Difficulty,
		"Audience":           spec.Audience,
		"Goals":              goalList(spec.LearningGoals),
		"Insights":           insights,
		"FormatInstructions": schema.TaskAssignment.FormatInstructions(),
	})
}

// TeamPrompt renders one team's module-proposal prompt.
func TeamPrompt(team types.TeamID, task types.TeamTask, spec types.CourseSpec) (string, error) {
	return render(teamTmpl, map[string]any{
		"Specialty":          team.Specialty(),
		"Task":               task.Task,
		"Detail":             task.Detail,
		"Topic":              spec.Topic,
		"Difficulty":         spec.Difficulty,
		"Audience":           spec.Audience,
		"Goals":              goalList(spec.LearningGoals),
		"FormatInstructions": schema.TeamModules.FormatInstructions(),
	})
}

const contentMission = `You are an expert educational content creator specialized in producing clear, engaging, and thorough instructional materials.`

const contentDirectives = `Create comprehensive, engaging, and instructionally sound content for this module. The content should be:
- Expert-level but accessible to the specified target audience
- Well-structured with logical flow between concepts
- Rich with clear explanations and illuminating examples
- Focused on helping learners achieve the stated learning objectives

Your content should include an introduction, multiple well-organized sections with subsections, key concepts, practical examples, practice activities, a summary, and further reading.`

const assessmentMission = `You are an expert in educational assessment design, specialized in creating effective learning evaluations.`

const assessmentDirectives = `Create comprehensive assessment materials including quiz questions with multiple-choice options and correct answers, practice problems with detailed solutions, project ideas that apply the module's concepts, self-assessment reflection questions, and grading rubrics.

The assessments should:
- Directly measure achievement of the learning objectives
- Progress from basic understanding to application and analysis
- Include a variety of question types and difficulty levels
- Provide opportunities for both validation of knowledge and deeper learning`

const resourcesMission = `You are an expert in educational resource curation and advanced materials development.`

const resourcesDirectives = `Create comprehensive supplementary resources including recommended readings with descriptions, advanced topics for learners who want to go deeper, useful tools and resources, a glossary of important terms, case studies, and cheat sheets.

The resources should:
- Extend learning beyond the core content
- Provide pathways for learners with different interests
- Include both beginner-friendly and advanced materials
- Reference high-quality, authoritative sources when appropriate`

// ContentPrompt renders the content creator prompt for one module stub.
func ContentPrompt(stub types.ModuleStub, spec types.CourseSpec) (string, error) {
	return modulePrompt(contentMission, contentDirectives, stub, spec, schema.ModuleContent)
}

// AssessmentPrompt renders the assessment creator prompt for one module stub.
func AssessmentPrompt(stub types.ModuleStub, spec types.CourseSpec) (string, error) {
	return modulePrompt(assessmentMission, assessmentDirectives, stub, spec, schema.ModuleAssessment)
}

// ResourcesPrompt renders the resources creator prompt for one module stub.
func ResourcesPrompt(stub types.ModuleStub, spec types.CourseSpec) (string, error) {
	return modulePrompt(resourcesMission, resourcesDirectives, stub, spec, schema.ModuleResources)
}

func modulePrompt(mission, directives string, stub types.ModuleStub, spec types.CourseSpec, s schema.Schema) (string, error) {
	return render(moduleTmpl, map[string]any{
		"Mission":            mission,
		"Directives":         directives,
		"Topic":              spec.Topic,
		"ModuleTitle":        stub.Title,
		"ModuleDescription":  stub.Description,
		"Objectives":         goalList(stub.Objectives),
		"Difficulty":         spec.Difficulty,
		"Audience":           spec.Audience,
		"FormatInstructions": s.FormatInstructions(),
	})
}

// MetadataPrompt renders the metadata stage prompt from all four team
// outputs, serialized as JSON for the model to review.
func MetadataPrompt(spec types.CourseSpec, teams map[types.TeamID]*types.TeamModules) (string, error) {
	dump := func(team types.TeamID) (string, error) {
		out, ok := teams[team]
		if !ok {
			return "", fmt.Errorf("team %d output is missing", team)
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", fmt.Errorf("serializing team %d output: %w", team, err)
		}
		return string(data), nil
	}

	dumps := make(map[types.TeamID]string, len(types.AllTeams))
	for _, team := range types.AllTeams {
		d, err := dump(team)
		if err != nil {
			return "", err
		}
		dumps[team] = d
	}

	return render(metadataTmpl, map[string]any{
		"Topic":              spec.Topic,
		"Difficulty":         spec.Difficulty,
		"Audience":           spec.Audience,
		"Goals":              goalList(spec.LearningGoals),
		"Team1":              dumps[types.TeamCurriculum],
		"Team2":              dumps[types.TeamContent],
		"Team3":              dumps[types.TeamAssessment],
		"Team4":              dumps[types.TeamResources],
		"FormatInstructions": schema.CourseMetadata.FormatInstructions(),
	})
}

// ReviewMaterials holds the samples the quality reviewer sees.
type ReviewMaterials struct {
	Metadata         *types.CourseMetadata
	ContentSample    *types.ModuleContent
	AssessmentSample *types.ModuleAssessment
	ResourcesSample  *types.ModuleResources
}

// FeedbackPrompt renders the quality review prompt from a sample of the
// generated materials.
func FeedbackPrompt(spec types.CourseSpec, materials ReviewMaterials) (string, error) {
	dump := func(name string, v any) (string, error) {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("serializing %s: %w", name, err)
		}
		return string(data), nil
	}

	metadata, err := dump("metadata", materials.Metadata)
	if err != nil {
		return "", err
	}
	content, err := dump("content sample", materials.ContentSample)
	if err != nil {
		return "", err
	}
	assessment, err := dump("assessment sample", materials.AssessmentSample)
	if err != nil {
		return "", err
	}
	resources, err := dump("resources sample", materials.ResourcesSample)
	if err != nil {
		return "", err
	}

	return render(feedbackTmpl, map[string]any{
		"Topic":              spec.Topic,
		"Metadata":           metadata,
		"ContentSample":      content,
		"AssessmentSample":   assessment,
		"ResourcesSample":    resources,
		"FormatInstructions": schema.Feedback.FormatInstructions(),
	})
}

func render(tmpl *template.Template, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s prompt: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
