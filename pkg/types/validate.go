// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// Validate checks that the planning stage produced a complete task/detail
// pair for every team.
func (a *TaskAssignment) Validate() error {
	var missing []string
	for _, team := range AllTeams {
		task := a.Task(team)
		if strings.TrimSpace(task.Task) == "" {
			missing = append(missing, fmt.Sprintf("task_%d", team))
		}
		if strings.TrimSpace(task.Detail) == "" {
			missing = append(missing, fmt.Sprintf("detail_%d", team))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("task assignment missing fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Validate checks that the team proposed exactly three complete module
// stubs: every slot needs a title, a description, and at least one
// learning objective.
func (t *TeamModules) Validate() error {
	var missing []string
	for i, stub := range t.Stubs() {
		slot := i + 1
		if strings.TrimSpace(stub.Title) == "" {
			missing = append(missing, fmt.Sprintf("module_%d", slot))
		}
		if strings.TrimSpace(stub.Description) == "" {
			missing = append(missing, fmt.Sprintf("description_%d", slot))
		}
		if len(stub.Objectives) == 0 {
			missing = append(missing, fmt.Sprintf("learning_objectives_%d", slot))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("team modules missing fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Validate checks the structural minimum for module content: a title,
// an introduction, at least one section, and a summary. Section and
// concept count targets live in the schema descriptions; the model is
// steered toward them but a shorter document is still usable.
func (c *ModuleContent) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("module content missing title")
	}
	if strings.TrimSpace(c.Introduction) == "" {
		return fmt.Errorf("module content %q missing introduction", c.Title)
	}
	if len(c.Sections) == 0 {
		return fmt.Errorf("module content %q has no sections", c.Title)
	}
	if strings.TrimSpace(c.Summary) == "" {
		return fmt.Errorf("module content %q missing summary", c.Title)
	}
	return nil
}

// Validate checks the structural minimum for a module assessment.
func (a *ModuleAssessment) Validate() error {
	if strings.TrimSpace(a.ModuleTitle) == "" {
		return fmt.Errorf("assessment missing module_title")
	}
	if len(a.QuizQuestions) == 0 {
		return fmt.Errorf("assessment for %q has no quiz questions", a.ModuleTitle)
	}
	for i, q := range a.QuizQuestions {
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("assessment for %q: quiz question %d is empty", a.ModuleTitle, i+1)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("assessment for %q: quiz question %d needs at least 2 options", a.ModuleTitle, i+1)
		}
	}
	return nil
}

// Validate checks the structural minimum for module resources.
func (r *ModuleResources) Validate() error {
	if strings.TrimSpace(r.ModuleTitle) == "" {
		return fmt.Errorf("resources missing module_title")
	}
	if len(r.RecommendedReadings) == 0 && len(r.ToolsAndResources) == 0 && len(r.Glossary) == 0 {
		return fmt.Errorf("resources for %q are empty", r.ModuleTitle)
	}
	return nil
}

// Validate checks that the course metadata names the course and lists
// its modules.
func (m *CourseMetadata) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return fmt.Errorf("course metadata missing title")
	}
	if strings.TrimSpace(m.Description) == "" {
		return fmt.Errorf("course metadata missing description")
	}
	if len(m.Modules) == 0 {
		return fmt.Errorf("course metadata lists no modules")
	}
	return nil
}

// Validate checks that all four quality ratings are in the 1-10 range.
func (f *Feedback) Validate() error {
	ratings := map[string]int{
		"content_accuracy": f.ContentAccuracy,
		"engagement_level": f.EngagementLevel,
		"clarity":          f.Clarity,
		"overall_quality":  f.OverallQuality,
	}
	for name, v := range ratings {
		if v < 1 || v > 10 {
			return fmt.Errorf("feedback rating %s = %d out of range [1,10]", name, v)
		}
	}
	return nil
}
