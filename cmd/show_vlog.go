package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newShowVlogCmd creates a new command for showing a vlog
func newShowVlogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-vlog [id]",
		Short: "Show a single vlog",
		Long:  `Open a vlog by its id and show its details. Opening counts as one view.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService()
			if err != nil {
				return err
			}

			detail, err := svc.OpenVideo(args[0])
			if err != nil {
				return fmt.Errorf("%w: %s", err, args[0])
			}
			defer svc.CloseVideo()

			w := cmd.OutOrStdout()
			e := detail.Entry
			fmt.Fprintf(w, "Vlog: %s\n", e.Title)
			fmt.Fprintf(w, "Author: %s, %s\n", e.Author.Name, e.Author.Location)
			fmt.Fprintf(w, "Destination: %s\n", e.DestinationKey)
			fmt.Fprintf(w, "Category: %s\n", e.Category)
			fmt.Fprintln(w, "================")
			fmt.Fprintf(w, "Views: %s\n", detail.Views)
			fmt.Fprintf(w, "Likes: %s\n", detail.Likes)
			fmt.Fprintf(w, "Uploaded: %s\n", detail.Uploaded)
			fmt.Fprintf(w, "Duration: %s\n", e.DurationLabel)
			fmt.Fprintf(w, "Video: %s\n", e.VideoURL)
			if len(e.Tags) > 0 {
				fmt.Fprintf(w, "Tags: #%s\n", strings.Join(e.Tags, " #"))
			}
			if e.Description != "" {
				fmt.Fprintln(w)
				fmt.Fprintln(w, e.Description)
			}
			return nil
		},
	}
}
