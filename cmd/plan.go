package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"travel-vlogs/pkg/planner"
)

// newPlanCmd creates a new command for planning a trip
func newPlanCmd() *cobra.Command {
	var req planner.Request

	cmd := &cobra.Command{
		Use:   "plan [destination]",
		Short: "Plan a trip day by day",
		Long:  `Build a day-by-day itinerary for a destination with a budget breakdown.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService()
			if err != nil {
				return err
			}

			req.Destination = args[0]
			itinerary, err := svc.PlanTrip(req)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, day := range itinerary.Days {
				fmt.Fprintf(w, "Day %d\n", day.Number)
				for _, a := range day.Activities {
					fmt.Fprintf(w, "  %s: %s (₹%s)\n", a.Title, a.Description, humanize.Comma(int64(a.Cost)))
				}
			}

			b := itinerary.Budget
			fmt.Fprintln(w)
			fmt.Fprintf(w, "Per day: ₹%s\n", humanize.Comma(int64(b.Daily)))
			fmt.Fprintf(w, "  Stay: ₹%s\n", humanize.Comma(int64(b.Stay)))
			fmt.Fprintf(w, "  Food: ₹%s\n", humanize.Comma(int64(b.Food)))
			fmt.Fprintf(w, "  Activities: ₹%s\n", humanize.Comma(int64(b.Activities)))
			fmt.Fprintf(w, "  Transport: ₹%s\n", humanize.Comma(int64(b.Transport)))
			fmt.Fprintf(w, "Total for %d days: ₹%s\n", len(itinerary.Days), humanize.Comma(int64(b.Total)))
			return nil
		},
	}

	cmd.Flags().IntVar(&req.Days, "days", 3, "Length of the trip in days")
	cmd.Flags().IntVar(&req.DailyBudget, "budget", 3000, "Daily budget in rupees")
	return cmd
}
