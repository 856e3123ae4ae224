package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"travel-vlogs/pkg/chat"
)

// newChatCmd creates a new command for asking the travel assistant
func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat [message]",
		Short: "Ask the travel assistant a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := loadService()
			if err != nil {
				return err
			}

			select {
			case <-time.After(cfg.ChatDelay):
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", chat.BotName, svc.Reply(strings.Join(args, " ")))
			return nil
		},
	}
}
