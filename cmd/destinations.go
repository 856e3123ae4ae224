package cmd

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"travel-vlogs/pkg/gallery"
)

// newListDestinationsCmd creates a new command for listing destinations
func newListDestinationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-destinations",
		Short: "List the destination guide",
		Long:  `List every destination in the guide with its tagline and average daily cost.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			destinations := svc.Destinations()

			fmt.Fprintln(w, "Destinations:")
			fmt.Fprintln(w, "=============")
			for _, d := range destinations {
				fmt.Fprintf(w, "%s [%s]\n", d.Name, d.Key)
				fmt.Fprintf(w, "  %s · ₹%s/day\n", d.Tagline, humanize.Comma(int64(d.Expenses.Daily())))
			}
			fmt.Fprintf(w, "Total: %d destinations\n", len(destinations))
			return nil
		},
	}
}

// newShowDestinationCmd creates a new command for showing a destination
func newShowDestinationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-destination [key]",
		Short: "Show a destination and its vlogs",
		Long:  `Show a destination from the guide, its local food and the vlogs filmed there, newest first.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService()
			if err != nil {
				return err
			}

			detail, err := svc.Destination(args[0])
			if err != nil {
				return fmt.Errorf("%w: %s", err, args[0])
			}

			w := cmd.OutOrStdout()
			d := detail.Destination
			fmt.Fprintf(w, "Destination: %s\n", d.Name)
			fmt.Fprintf(w, "%s\n", d.Tagline)
			fmt.Fprintln(w, "================")
			if len(d.Types) > 0 {
				fmt.Fprintf(w, "Good for: %s\n", strings.Join(d.Types, ", "))
			}
			fmt.Fprintf(w, "Best time: %s\n", d.BestTime)
			fmt.Fprintf(w, "Avoid: %s\n", d.BadTime)
			fmt.Fprintf(w, "Daily cost: ₹%s\n", humanize.Comma(int64(detail.DailyCost)))
			for _, dish := range d.Food {
				fmt.Fprintf(w, "  %s (%s)\n", dish.Dish, dish.Price)
			}

			fmt.Fprintln(w)
			fmt.Fprintf(w, "Vlogs (%d, %s views):\n", detail.Stats.Count, gallery.FormatCount(detail.Stats.TotalViews))
			for _, e := range detail.Vlogs {
				fmt.Fprintf(w, "  %s [%s]\n", e.Title, e.ID)
			}
			return nil
		},
	}
}
