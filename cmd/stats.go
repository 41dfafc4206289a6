package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var statsLimit int

// statsCmd prints recent runs from the persisted history log.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent generation runs from the history log",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.close()

		if rt.history == nil {
			return fmt.Errorf("history log is disabled; enable history in the config")
		}

		runs, err := rt.history.Recent(ctx, statsLimit)
		if err != nil {
			return err
		}

		if jsonOutput {
			data, err := json.MarshalIndent(runs, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(data))
			return nil
		}

		var met, fallbacks int
		var qualitySum float64
		for _, run := range runs {
			if run.MetThreshold {
				met++
			}
			if run.IsFallback {
				fallbacks++
			}
			qualitySum += run.Quality
			cmd.Printf("%s  %-28s %-20s q=%.3f met=%v\n",
				run.CreatedAt.Format("2006-01-02 15:04"), run.Competency, run.Role,
				run.Quality, run.MetThreshold)
		}
		if len(runs) > 0 {
			cmd.Printf("\n%d runs, %d met threshold, %d fallbacks, mean quality %.3f\n",
				len(runs), met, fallbacks, qualitySum/float64(len(runs)))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsLimit, "limit", 20, "number of runs to show")
	rootCmd.AddCommand(statsCmd)
}
