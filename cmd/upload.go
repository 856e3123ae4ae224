package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"travel-vlogs/pkg/gallery"
)

// newUploadCmd creates a new command for uploading a vlog
func newUploadCmd() *cobra.Command {
	var fields gallery.UploadFields

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a vlog",
		Long: `Add a vlog to the front of the gallery and print it as JSON. Uploads use
placeholder media and are credited to the configured user.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService()
			if err != nil {
				return err
			}

			entry, err := svc.Upload(fields)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(entry, "", "  ")
			if err != nil {
				return fmt.Errorf("error marshaling vlog: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, string(data))
			for _, n := range svc.Notifications() {
				fmt.Fprintf(w, "[%s] %s\n", n.Kind, n.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.Title, "title", "", "Title of the vlog (required)")
	cmd.Flags().StringVar(&fields.Description, "description", "", "Description of the vlog")
	cmd.Flags().StringVar(&fields.DestinationKey, "destination", "", "Destination, e.g. kerala")
	cmd.Flags().StringVar(&fields.Category, "type", "", "Category, e.g. food-tour")
	cmd.Flags().StringVar(&fields.TagsCSV, "tags", "", "Comma separated tags")
	return cmd
}
