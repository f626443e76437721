package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ag0n1k/tg-fsyn/cmd/tg-fsyn/root/bot"
	configcmd "github.com/ag0n1k/tg-fsyn/cmd/tg-fsyn/root/config"
	"github.com/ag0n1k/tg-fsyn/cmd/tg-fsyn/root/status"
	"github.com/ag0n1k/tg-fsyn/cmd/tg-fsyn/root/version"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tg-fsyn <command>",
		Short: "Telegram file inbox and task monitor for Synology Download Station",
		Example: heredoc.Doc(`
			$ tg-fsyn status
			$ tg-fsyn status --format json
			$ tg-fsyn bot run
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))

	cmd.AddCommand(version.NewVersionCmd())
	cmd.AddCommand(AddIntervalSupport(status.NewStatusCmd()))
	cmd.AddCommand(bot.NewBotCmd())
	cmd.AddCommand(configcmd.NewConfigCmd())

	return cmd
}
