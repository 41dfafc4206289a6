package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmngeo/seqpt/core/generation"
)

var (
	batchPairsFile   string
	batchArchetype   string
	batchCompanyName string
	batchDescFile    string
)

// batchCmd generates one objective per (competency, role) pair from a JSON
// pairs file of the form [{"competency": "...", "role": "..."}, ...].
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate objectives for a list of competency/role pairs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		pairsData, err := os.ReadFile(batchPairsFile)
		if err != nil {
			return fmt.Errorf("read pairs file: %w", err)
		}
		var pairs []generation.CompetencyRole
		if err := json.Unmarshal(pairsData, &pairs); err != nil {
			return fmt.Errorf("parse pairs file: %w", err)
		}

		var description string
		if batchDescFile != "" {
			data, err := os.ReadFile(batchDescFile)
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

		results := rt.engine.BatchGenerate(ctx, description, batchCompanyName, pairs, batchArchetype)
		for _, result := range results {
			rt.recordResult(ctx, result)
		}

		if jsonOutput {
			data, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(data))
			return nil
		}

		for i, result := range results {
			cmd.Printf("[%d] %s / %s\n", i, result.Metadata.Competency, result.Metadata.Role)
			if result.Error != "" {
				cmd.Printf("    ERROR: %s\n", result.Error)
				continue
			}
			cmd.Printf("    %s\n", result.Objective)
			if result.Assessment != nil {
				cmd.Printf("    quality %.3f, threshold met: %v\n",
					result.Assessment.OverallQuality, result.Assessment.MeetsThreshold)
			}
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchPairsFile, "pairs", "", "JSON file of competency/role pairs (required)")
	batchCmd.Flags().StringVar(&batchArchetype, "archetype", "Common basic understanding", "qualification strategy archetype")
	batchCmd.Flags().StringVar(&batchCompanyName, "company", "", "company name")
	batchCmd.Flags().StringVar(&batchDescFile, "description-file", "", "file containing the company description")

	batchCmd.MarkFlagRequired("pairs")

	rootCmd.AddCommand(batchCmd)
}
