package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"travel-vlogs/pkg/dataset"
	"travel-vlogs/pkg/logger"
)

// newFakeDatasetCmd creates a command that writes a generated dataset, for
// trying the gallery with more vlogs than the embedded seed
func newFakeDatasetCmd() *cobra.Command {
	var (
		count  int
		seed   int64
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "fake-dataset",
		Short: "Generate a fake vlog dataset",
		Long: `Generate a dataset of random vlogs in JSON or YAML. The same seed always
produces the same dataset. Pass the result back with --dataset.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("count must not be negative: %d", count)
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			f := dataset.Format(format)
			if output != "" {
				var err error
				if f, err = dataset.FormatFromPath(output); err != nil {
					return err
				}
			}

			entries := dataset.Fake(count, seed)
			if output == "" {
				return dataset.Encode(cmd.OutOrStdout(), entries, f)
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			defer file.Close()

			if err := dataset.Encode(file, entries, f); err != nil {
				return err
			}
			logger.GetLogger().
				WithField("count", count).
				WithField("seed", seed).
				WithField("output", output).
				Info("Fake dataset written")
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 24, "Number of vlogs to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 picks one from the clock)")
	cmd.Flags().StringVarP(&format, "format", "f", string(dataset.FormatJSON), "Output format when writing to stdout (json or yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file; the extension picks the format")
	return cmd
}
