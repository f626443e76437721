package run

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ag0n1k/tg-fsyn/internal/bot"
	"github.com/ag0n1k/tg-fsyn/internal/cliutil"
	"github.com/ag0n1k/tg-fsyn/internal/config"
	"github.com/ag0n1k/tg-fsyn/internal/report"
	"github.com/ag0n1k/tg-fsyn/internal/storage"
	"github.com/ag0n1k/tg-fsyn/internal/synology"
)

func NewBotRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the Telegram bot",
		Long:  `Run the bot that stores incoming Telegram files into the watch folder and answers status queries until interrupted.`,
		Example: heredoc.Doc(`
			$ tg-fsyn bot run
			$ tg-fsyn bot run --storage-path /volume1/watch
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.C()
			tg := cfg.Telegram
			tg.Token = cliutil.GetString(cmd, "token", "telegram.token")
			if path := cliutil.GetString(cmd, "storage-path", "telegram.storage_path"); path != "" {
				tg.StoragePath = path
			}

			if err := tg.Validate(); err != nil {
				return err
			}

			store, err := storage.NewLocal(tg.StoragePath)
			if err != nil {
				return err
			}

			access := bot.NewAccess(
				bot.ParseUserIDs(tg.AllowedUsers),
				bot.ParseUserIDs(tg.AdminUsers),
			)

			opts := []func(*bot.Bot){
				bot.WithStorage(store),
				bot.WithAccess(access),
				bot.WithMaxFileSize(tg.MaxFileSize),
			}

			// The status command only works with a complete NAS connection.
			// The bot still accepts files without one.
			if err := cfg.Synology.Validate(); err != nil {
				log.Warn("Status queries disabled", "error", err)
			} else {
				syn := cfg.Synology
				opts = append(opts, bot.WithStation(func() report.Station {
					clientOpts := []synology.Option{
						synology.WithTimeout(time.Duration(syn.Timeout) * time.Second),
					}
					if syn.HTTPS {
						clientOpts = append(clientOpts, synology.WithHTTPS())
					}
					return synology.New(syn.Host, syn.Port, syn.Username, syn.Password, clientOpts...)
				}))
			}

			b, err := bot.New(tg.Token, opts...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info("Starting bot", "storage", store.Dir())
			return b.Run(ctx)
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("token", "", "Telegram bot token")
	cmd.Flags().String("storage-path", "", "Directory incoming files are stored into")

	return cmd
}
