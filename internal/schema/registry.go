// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schema

// TaskAssignment is the planning stage schema: one task/detail pair per
// specialized team.
var TaskAssignment = Schema{
	Name: "TaskAssignment",
	Fields: []Field{
		{Name: "task_1", Type: String, Description: "Task for team 1 - Course structure and curriculum planning"},
		{Name: "detail_1", Type: String, Description: "Detailed description of team 1's task"},
		{Name: "task_2", Type: String, Description: "Task for team 2 - Core content development"},
		{Name: "detail_2", Type: String, Description: "Detailed description of team 2's task"},
		{Name: "task_3", Type: String, Description: "Task for team 3 - Assessments, exercises and practice materials"},
		{Name: "detail_3", Type: String, Description: "Detailed description of team 3's task"},
		{Name: "task_4", Type: String, Description: "Task for team 4 - Resources, references and advanced materials"},
		{Name: "detail_4", Type: String, Description: "Detailed description of team 4's task"},
	},
}

// TeamModules is the team stage schema: exactly three module stubs.
var TeamModules = Schema{
	Name: "TeamModules",
	Fields: []Field{
		{Name: "module_1", Type: String, Description: "Title of module 1"},
		{Name: "description_1", Type: String, Description: "Brief description of module 1 content"},
		{Name: "learning_objectives_1", Type: StringList, Description: "Learning objectives for module 1"},
		{Name: "module_2", Type: String, Description: "Title of module 2"},
		{Name: "description_2", Type: String, Description: "Brief description of module 2 content"},
		{Name: "learning_objectives_2", Type: StringList, Description: "Learning objectives for module 2"},
		{Name: "module_3", Type: String, Description: "Title of module 3"},
		{Name: "description_3", Type: String, Description: "Brief description of module 3 content"},
		{Name: "learning_objectives_3", Type: StringList, Description: "Learning objectives for module 3"},
	},
}

// ModuleContent is the content creator schema.
var ModuleContent = Schema{
	Name: "ModuleContent",
	Fields: []Field{
		{Name: "title", Type: String, Description: "Module title"},
		{Name: "introduction", Type: String, Description: "Comprehensive introduction (300+ words)"},
		{Name: "sections", Type: ObjectList, Description: "List of 4-7 detailed sections, each with title, content (300-500 words), and 2-4 subsections with titles and content"},
		{Name: "key_concepts", Type: StringList, Description: "List of 8-12 key concepts covered in the module"},
		{Name: "examples", Type: ObjectList, Description: "List of 3-5 detailed examples, each with title, scenario, step-by-step content, and key_takeaways"},
		{Name: "practice_activities", Type: ObjectList, Description: "List of 3-5 practice activities with instructions and expected outcomes"},
		{Name: "summary", Type: String, Description: "Comprehensive summary (250+ words)"},
		{Name: "further_reading", Type: ObjectList, Description: "Suggested resources for deeper learning with brief descriptions"},
	},
}

// ModuleAssessment is the assessment creator schema.
var ModuleAssessment = Schema{
	Name: "ModuleAssessment",
	Fields: []Field{
		{Name: "module_title", Type: String, Description: "Title of the module this assessment is for"},
		{Name: "quiz_questions", Type: ObjectList, Description: "List of 8-12 detailed quiz questions, each with question, context, options, correct_answer, and explanation"},
		{Name: "practice_problems", Type: ObjectList, Description: "List of 4-6 practice problems, each with problem, context, step-by-step solution, hints, and learning_points"},
		{Name: "project_ideas", Type: ObjectList, Description: "List of 3-5 project proposals, each with title, description, learning_goals, steps, resources_needed, evaluation_criteria, and extensions"},
		{Name: "self_assessment", Type: ObjectList, Description: "Reflection questions with guidelines for self-evaluation"},
		{Name: "grading_rubrics", Type: ObjectList, Description: "Detailed grading rubrics for the major assessments"},
	},
}

// ModuleResources is the resources creator schema.
var ModuleResources = Schema{
	Name: "ModuleResources",
	Fields: []Field{
		{Name: "module_title", Type: String, Description: "Title of the module these resources are for"},
		{Name: "recommended_readings", Type: ObjectList, Description: "List of 5-8 readings, each with title, author, description, key_topics, relevance, difficulty, and discussion_questions"},
		{Name: "advanced_topics", Type: ObjectList, Description: "List of 4-6 advanced topics, each with title, description, prerequisites, learning_pathway, resources, and applications"},
		{Name: "tools_and_resources", Type: ObjectList, Description: "List of 4-6 tools, each with name, type, description, use_cases, getting_started, and alternatives"},
		{Name: "glossary", Type: ObjectList, Description: "List of 10-15 glossary items, each with term, definition, context, examples, and related_terms"},
		{Name: "case_studies", Type: ObjectList, Description: "List of 2-4 case studies, each with title, scenario, analysis, lessons, and questions"},
		{Name: "cheat_sheets", Type: ObjectList, Description: "Quick reference materials for key concepts"},
	},
}

// CourseMetadata is the metadata stage schema.
var CourseMetadata = Schema{
	Name: "CourseMetadata",
	Fields: []Field{
		{Name: "title", Type: String, Description: "Full course title"},
		{Name: "description", Type: String, Description: "Comprehensive course description"},
		{Name: "target_audience", Type: String, Description: "Description of the intended audience"},
		{Name: "prerequisites", Type: StringList, Description: "List of prerequisites for taking this course"},
		{Name: "learning_outcomes", Type: StringList, Description: "Overall learning outcomes for the course"},
		{Name: "modules", Type: ObjectList, Description: "List of all modules with title and description"},
		{Name: "estimated_duration", Type: String, Description: "Estimated time to complete the course"},
		{Name: "difficulty_level", Type: String, Description: "Course difficulty level (Beginner, Intermediate, Advanced, Expert)"},
		{Name: "instructional_approach", Type: String, Description: "Description of the teaching approach"},
		{Name: "authors_note", Type: String, Description: "Note from the course creators"},
	},
}

// Feedback is the quality review schema.
var Feedback = Schema{
	Name: "Feedback",
	Fields: []Field{
		{Name: "strengths", Type: StringList, Description: "Strengths of the course content"},
		{Name: "areas_for_improvement", Type: StringList, Description: "Areas that could be improved"},
		{Name: "content_accuracy", Type: Integer, Description: "Rating of content accuracy from 1-10"},
		{Name: "engagement_level", Type: Integer, Description: "Rating of engagement level from 1-10"},
		{Name: "clarity", Type: Integer, Description: "Rating of clarity from 1-10"},
		{Name: "overall_quality", Type: Integer, Description: "Overall quality rating from 1-10"},
		{Name: "recommendations", Type: StringList, Description: "Specific recommendations for improvement"},
	},
}

// All lists every stage schema, for registry lookups and tests.
var All = []Schema{
	TaskAssignment,
	TeamModules,
	ModuleContent,
	ModuleAssessment,
	ModuleResources,
	CourseMetadata,
	Feedback,
}
