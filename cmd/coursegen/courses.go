package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/coursegen/internal/store"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Inspect previously generated courses",
}

var coursesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated courses, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig()
		st, err := store.New(cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close()

		entries, err := st.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No courses found.")
			return nil
		}

		fmt.Printf("%-18s  %-40s  %-25s  %-12s  %s\n",
			"Run", "Title", "Topic", "Difficulty", "Quality")
		fmt.Println(strings.Repeat("-", 110))
		for _, e := range entries {
			title := e.Title
			if len(title) > 40 {
				title = title[:37] + "..."
			}
			topic := e.Topic
			if len(topic) > 25 {
				topic = topic[:22] + "..."
			}
			fmt.Printf("%-18s  %-40s  %-25s  %-12s  %d/10\n",
				e.RunID, title, topic, e.Difficulty, e.OverallQuality)
		}
		fmt.Printf("\n%d courses\n", len(entries))
		return nil
	},
}

var coursesShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show one generated course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig()
		st, err := store.New(cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close()

		course, err := st.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(course)
		}
		asYAML, _ := cmd.Flags().GetBool("yaml")
		if asYAML {
			enc := yaml.NewEncoder(os.Stdout)
			defer enc.Close()
			return enc.Encode(course)
		}

		fmt.Printf("Run:        %s\n", course.RunID)
		fmt.Printf("Topic:      %s (%s)\n", course.Spec.Topic, course.Spec.Difficulty)
		fmt.Printf("Audience:   %s\n", course.Spec.Audience)
		if course.Metadata != nil {
			fmt.Printf("Title:      %s\n", course.Metadata.Title)
			fmt.Printf("Duration:   %s\n", course.Metadata.EstimatedDuration)
			fmt.Printf("Modules:\n")
			for i, m := range course.Metadata.Modules {
				fmt.Printf("  %2d. %s\n", i+1, m.Title)
			}
		}
		if course.Feedback != nil {
			fmt.Printf("Quality:    %d/10 overall, %d/10 clarity, %d/10 accuracy\n",
				course.Feedback.OverallQuality, course.Feedback.Clarity, course.Feedback.ContentAccuracy)
		}
		return nil
	},
}

func init() {
	coursesShowCmd.Flags().Bool("json", false, "print the full course document as JSON")
	coursesShowCmd.Flags().Bool("yaml", false, "print the full course document as YAML")

	coursesCmd.AddCommand(coursesListCmd)
	coursesCmd.AddCommand(coursesShowCmd)
	rootCmd.AddCommand(coursesCmd)
}
