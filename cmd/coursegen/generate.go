package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/coursegen/internal/insight"
	"github.com/pdiddy/coursegen/internal/llm"
	"github.com/pdiddy/coursegen/internal/pipeline"
	"github.com/pdiddy/coursegen/internal/store"
	"github.com/pdiddy/coursegen/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a complete course for a topic",
	Long: `Generate runs the full course pipeline: planning, four concurrent team
stages, per-module content/assessment/resource creators, metadata
integration, and a quality review. The finished course is saved as a
JSON document and cataloged.

With --enhance, the planning stage is augmented with expert insights
gathered from a web search (requires a tavily-api-key secret).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		if topic == "" {
			return fmt.Errorf("--topic is required")
		}
		difficulty, _ := cmd.Flags().GetString("difficulty")
		audience, _ := cmd.Flags().GetString("audience")
		goals, _ := cmd.Flags().GetStringSlice("goals")
		enhance, _ := cmd.Flags().GetBool("enhance")

		cfg := buildConfig()
		if model, _ := cmd.Flags().GetString("model"); model != "" {
			cfg.Generation.Model = model
		}
		if dir, _ := cmd.Flags().GetString("output-dir"); dir != "" {
			cfg.Store.CoursesDir = dir
		}
		if cfg.Generation.APIKey == "" {
			return fmt.Errorf("no Anthropic API key: add .secrets/anthropic-api-key or set generation.api_key")
		}

		spec := types.CourseSpec{
			Topic:         topic,
			Difficulty:    types.Difficulty(difficulty),
			Audience:      audience,
			LearningGoals: goals,
		}

		backend := &llm.ClaudeBackend{
			Config: cfg.Generation.AIConfig,
			Client: &http.Client{},
		}

		var provider insight.Provider = insight.None{}
		if enhance || cfg.Insight.Enabled {
			if cfg.Insight.APIKey == "" {
				return fmt.Errorf("--enhance requires a search API key: add .secrets/tavily-api-key or set insight.api_key")
			}
			provider = insight.NewWebProvider(&insight.TavilyBackend{
				Client: &http.Client{Timeout: cfg.Insight.Timeout},
				Config: cfg.Insight,
			}, backend)
		}

		st, err := store.New(cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close()

		p := pipeline.New(cfg.Generation, backend, provider, st)

		fmt.Fprintf(os.Stdout, "Generating %s course on %q for %s\n",
			spec.Difficulty, spec.Topic, spec.Audience)
		_, err = p.Run(cmd.Context(), spec, os.Stdout)
		return err
	},
}

func init() {
	generateCmd.Flags().String("topic", "", "course topic (required)")
	generateCmd.Flags().String("difficulty", string(types.DifficultyIntermediate), "difficulty level: Beginner, Intermediate, Advanced, or Expert")
	generateCmd.Flags().String("audience", "general learners", "target audience description")
	generateCmd.Flags().StringSlice("goals", nil, "learning goals (comma-separated)")
	generateCmd.Flags().Bool("enhance", false, "augment planning with web-derived expert insights")
	generateCmd.Flags().String("model", "", "AI model identifier (overrides config)")
	generateCmd.Flags().String("output-dir", "", "directory for course documents (overrides config)")

	rootCmd.AddCommand(generateCmd)
}
