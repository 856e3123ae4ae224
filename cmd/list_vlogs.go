package cmd

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"travel-vlogs/pkg/gallery"
	"travel-vlogs/pkg/services"
)

// newListVlogsCmd creates a new command for listing vlogs
func newListVlogsCmd() *cobra.Command {
	var filter, sortKey, query string

	cmd := &cobra.Command{
		Use:   "list-vlogs",
		Short: "List vlogs",
		Long:  `List the vlogs matching a filter or a search query, in the requested order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService()
			if err != nil {
				return err
			}

			if query != "" {
				svc.Search(query)
			} else {
				svc.SetFilter(filter)
			}
			view, err := svc.SetSort(sortKey)
			if err != nil {
				return fmt.Errorf("%w: %q (use one of %v)", err, sortKey, gallery.SortKeys)
			}
			listVlogs(cmd.OutOrStdout(), svc, view)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", string(gallery.FilterAll), "all, featured, local or a category")
	cmd.Flags().StringVar(&sortKey, "sort", string(gallery.SortLatest), "latest, oldest, mostViewed or mostLiked")
	cmd.Flags().StringVar(&query, "search", "", "Only list vlogs matching this text, across all filters")
	cmd.MarkFlagsMutuallyExclusive("filter", "search")
	return cmd
}

// listVlogs displays the vlogs of view and their totals
func listVlogs(w io.Writer, svc *services.Service, view gallery.ViewState) {
	fmt.Fprintln(w, "Travel Vlogs:")
	fmt.Fprintln(w, "=============")

	for i, e := range view.Entries {
		fmt.Fprintf(w, "%d. %s [%s]\n", i+1, e.Title, e.ID)
		fmt.Fprintf(w, "   By %s, %s (%s)\n", e.Author.Name, e.Author.Location, e.Author.Kind)
		fmt.Fprintf(w, "   %s views · %s likes · %s\n",
			gallery.FormatCount(e.Views), gallery.FormatCount(e.Likes), svc.FormatRelativeDate(e.UploadedAt))
	}
	if len(view.Entries) == 0 {
		fmt.Fprintln(w, "No vlogs match.")
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %s vlogs, %s views, %s likes\n",
		humanize.Comma(int64(view.Stats.Count)),
		gallery.FormatCount(view.Stats.TotalViews),
		gallery.FormatCount(view.Stats.TotalLikes))
}
