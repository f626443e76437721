package bot

import (
	"github.com/spf13/cobra"

	"github.com/ag0n1k/tg-fsyn/cmd/tg-fsyn/root/bot/run"
)

func NewBotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bot <command>",
		Short: "Telegram bot commands",
		Long:  `Commands for the Telegram bot that feeds the Download Station watch folder.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(run.NewBotRunCmd())

	return cmd
}
