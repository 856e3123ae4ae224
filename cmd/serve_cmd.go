package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"travel-vlogs/pkg/handlers"
)

// newServeCmd creates a new command for serving the web application
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  `Start the web server to serve the vlog gallery and its JSON API via HTTP.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := loadService()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return handlers.Run(ctx, cfg, svc)
		},
	}
}

