package cmd

import (
	"github.com/spf13/cobra"

	"travel-vlogs/pkg/dataset"
	"travel-vlogs/pkg/services"
)

// newExportCmd creates a new command for exporting the vlog collection
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "export [format]",
		Short:     "Export vlog data",
		Long:      `Export the full vlog collection in the specified format. Supported formats: json, yaml.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(dataset.FormatJSON), string(dataset.FormatYAML)},
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := loadService(); err != nil {
				return err
			}

			format := dataset.FormatJSON
			if len(args) > 0 {
				format = dataset.Format(args[0])
			}
			return dataset.Encode(cmd.OutOrStdout(), services.GetEntries(), format)
		},
	}
}
