package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmngeo/seqpt/core/generation"
)

var (
	generateCompetency  string
	generateRole        string
	generateArchetype   string
	generateCompanyName string
	generateDescription string
	generateDescFile    string
	generateIterations  int
	generateExtra       []string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one SMART learning objective",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		description := generateDescription
		if generateDescFile != "" {
			data, err := os.ReadFile(generateDescFile)
			if err != nil {
				return fmt.Errorf("read company description: %w", err)
			}
			description = string(data)
		}

		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.close()

		result := rt.engine.GenerateObjective(ctx, generation.Request{
			Competency:         generateCompetency,
			Role:               generateRole,
			Archetype:          generateArchetype,
			CompanyDescription: description,
			CompanyName:        generateCompanyName,
			MaxIterations:      generateIterations,
			ExtraRequirements:  generateExtra,
		})
		rt.recordResult(ctx, result)

		return printResult(cmd, result)
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateCompetency, "competency", "", "target competency (required)")
	generateCmd.Flags().StringVar(&generateRole, "role", "", "target role (required)")
	generateCmd.Flags().StringVar(&generateArchetype, "archetype", "Common basic understanding", "qualification strategy archetype")
	generateCmd.Flags().StringVar(&generateCompanyName, "company", "", "company name")
	generateCmd.Flags().StringVar(&generateDescription, "description", "", "free-text company description")
	generateCmd.Flags().StringVar(&generateDescFile, "description-file", "", "file containing the company description")
	generateCmd.Flags().IntVar(&generateIterations, "max-iterations", 0, "override refinement iteration bound")
	generateCmd.Flags().StringArrayVar(&generateExtra, "requirement", nil, "extra requirement line (repeatable)")

	generateCmd.MarkFlagRequired("competency")
	generateCmd.MarkFlagRequired("role")

	rootCmd.AddCommand(generateCmd)
}

func printResult(cmd *cobra.Command, result *generation.Result) error {
	if jsonOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Objective:")
	cmd.Println("  " + result.Objective)
	cmd.Println()
	if result.Assessment != nil {
		cmd.Printf("Overall quality: %.3f (threshold met: %v)\n",
			result.Assessment.OverallQuality, result.Assessment.MeetsThreshold)
		cmd.Printf("SMART average:   %.3f\n", result.Assessment.SMARTAverage)
	}
	cmd.Printf("Iterations: %d  Template source: %s  Provider: %s\n",
		result.Metadata.Iterations, result.Metadata.TemplateSource, result.Metadata.Provider)
	if result.IsFallback {
		cmd.Println("NOTE: fallback objective (provider unavailable)")
	}
	if len(result.Improvements) > 0 {
		cmd.Println("Suggested improvements:")
		cmd.Println("  - " + strings.Join(result.Improvements, "\n  - "))
	}
	return nil
}
