// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the coursegen CLI. One command
// generates a complete course from a topic; the courses command inspects
// previously generated runs.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/coursegen/internal/secrets"
	"github.com/pdiddy/coursegen/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the coursegen CLI.
var rootCmd = &cobra.Command{
	Use:   "coursegen",
	Short: "Multi-stage AI course generation",
	Long: `coursegen generates complete educational courses from a topic. A planning
stage divides the work among four specialized teams, each team proposes
modules concurrently, per-module creators produce content, assessments,
and resources, and final stages integrate course metadata and a quality
review.

Generated courses are saved as JSON documents with a SQLite catalog for
listing and lookup.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./coursegen.yaml or ~/.config/coursegen/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("coursegen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "coursegen"))
		}
	}

	viper.SetEnvPrefix("COURSEGEN")
	viper.AutomaticEnv()

	viper.SetDefault("generation.model", "claude-sonnet-4-5-20250929")
	viper.SetDefault("generation.max_tokens", 8192)
	viper.SetDefault("generation.temperature", 0.7)
	viper.SetDefault("generation.stage_timeout", "5m")
	viper.SetDefault("insight.max_results", 5)
	viper.SetDefault("insight.timeout", "30s")
	viper.SetDefault("store.courses_dir", "courses")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// buildConfig assembles the pipeline configuration from viper and the
// secrets directory.
func buildConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Generation: types.GenerationConfig{
			AIConfig: types.AIConfig{
				Model:       viper.GetString("generation.model"),
				APIKey:      secretDefault(secrets.AnthropicAPIKey, viper.GetString("generation.api_key")),
				MaxTokens:   viper.GetInt("generation.max_tokens"),
				Temperature: viper.GetFloat64("generation.temperature"),
			},
			StageTimeout: viper.GetDuration("generation.stage_timeout"),
			Sampling:     types.DefaultSamplingPolicy(),
		},
		Insight: types.InsightConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("insight.timeout"),
				UserAgent: "coursegen/" + version,
			},
			Enabled:    viper.GetBool("insight.enabled"),
			APIKey:     secretDefault(secrets.TavilyAPIKey, viper.GetString("insight.api_key")),
			MaxResults: viper.GetInt("insight.max_results"),
		},
		Store: types.StoreConfig{
			CoursesDir: viper.GetString("store.courses_dir"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
