package types

import "time"

// HTTPConfig holds shared HTTP settings used by backends that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "coursegen/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// AIConfig holds shared settings for components that call a Generative
// AI API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "claude-sonnet-4-5-20250929").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxTokens caps the response length per model call (default 8192).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Temperature is the sampling temperature for generation calls.
	// Zero means the backend default.
	Temperature float64 `json:"temperature" yaml:"temperature"`
}

// InsightConfig holds settings for the optional web-insight stage.
type InsightConfig struct {
	HTTPConfig `yaml:",inline"`

	// Enabled controls whether the planning prompt is augmented with
	// web-derived insights.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// APIKey is the search provider authentication key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxResults is the number of search results to distill (default 5).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// SamplingPolicy selects which module stubs get full artifacts. The
// defaults give one content document per content-bearing team plus one
// assessment set and one resource set, which bounds model-call cost
// while satisfying the metadata stage's preconditions.
type SamplingPolicy struct {
	// ContentTeams lists the teams whose first module receives a full
	// content document (default teams 1 and 2).
	ContentTeams []TeamID `json:"content_teams" yaml:"content_teams"`

	// AssessmentTeam is the team whose first module receives an
	// assessment set (default team 3).
	AssessmentTeam TeamID `json:"assessment_team" yaml:"assessment_team"`

	// ResourcesTeam is the team whose first module receives a resource
	// set (default team 4).
	ResourcesTeam TeamID `json:"resources_team" yaml:"resources_team"`
}

// DefaultSamplingPolicy returns the reference sampling choices.
func DefaultSamplingPolicy() SamplingPolicy {
	return SamplingPolicy{
		ContentTeams:   []TeamID{TeamCurriculum, TeamContent},
		AssessmentTeam: TeamAssessment,
		ResourcesTeam:  TeamResources,
	}
}

// WithDefaults fills each unset field from DefaultSamplingPolicy. A
// partially-specified policy would otherwise target team 0, which no
// stage can satisfy.
func (p SamplingPolicy) WithDefaults() SamplingPolicy {
	defaults := DefaultSamplingPolicy()
	if len(p.ContentTeams) == 0 {
		p.ContentTeams = defaults.ContentTeams
	}
	if p.AssessmentTeam == 0 {
		p.AssessmentTeam = defaults.AssessmentTeam
	}
	if p.ResourcesTeam == 0 {
		p.ResourcesTeam = defaults.ResourcesTeam
	}
	return p
}

// GenerationConfig holds settings for the course generation pipeline.
type GenerationConfig struct {
	AIConfig `yaml:",inline"`

	// StageTimeout bounds each stage's model call. A stage that exceeds
	// it fails the run with a timeout cause (default 5m).
	StageTimeout time.Duration `json:"stage_timeout" yaml:"stage_timeout"`

	// Sampling selects which modules receive full artifacts.
	Sampling SamplingPolicy `json:"sampling" yaml:"sampling"`
}

// StoreConfig holds settings for the course store.
type StoreConfig struct {
	// CoursesDir is the directory for course documents and the catalog
	// database (default "courses").
	CoursesDir string `json:"courses_dir" yaml:"courses_dir"`
}

// PipelineConfig groups all component configurations.
type PipelineConfig struct {
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	Insight    InsightConfig    `json:"insight" yaml:"insight"`
	Store      StoreConfig      `json:"store" yaml:"store"`
}
