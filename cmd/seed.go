package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmngeo/seqpt/core/retrieval"
)

var seedCorpusFile string

// seedCmd indexes the objective corpus into the configured store. Without
// --corpus it indexes the built-in seed corpus; with it, a JSON array of
// documents.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Index the historical objective corpus",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Retrieval.IndexPath == "" {
			return fmt.Errorf("retrieval.index_path must be configured for seeding")
		}

		store, err := retrieval.OpenStore(cfg.Retrieval.IndexPath)
		if err != nil {
			return err
		}
		defer store.Close()

		docs := retrieval.SeedCorpus
		if seedCorpusFile != "" {
			data, err := os.ReadFile(seedCorpusFile)
			if err != nil {
				return fmt.Errorf("read corpus file: %w", err)
			}
			if err := json.Unmarshal(data, &docs); err != nil {
				return fmt.Errorf("parse corpus file: %w", err)
			}
		}

		if err := store.Add(ctx, docs...); err != nil {
			return fmt.Errorf("index corpus: %w", err)
		}

		count, err := store.Count()
		if err != nil {
			return err
		}
		cmd.Printf("Indexed %d documents (%d in store)\n", len(docs), count)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedCorpusFile, "corpus", "", "JSON file of documents to index")
	rootCmd.AddCommand(seedCmd)
}
