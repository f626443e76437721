package status

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ag0n1k/tg-fsyn/internal/cliutil"
	"github.com/ag0n1k/tg-fsyn/internal/config"
	"github.com/ag0n1k/tg-fsyn/internal/report"
	"github.com/ag0n1k/tg-fsyn/internal/synology"
)

func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report the current Download Station tasks",
		Long:  `Log in to Download Station, list every download task, and print a per-task progress report. Each run opens and closes its own session.`,
		Example: heredoc.Doc(`
			# Text report using the configured connection
			$ tg-fsyn status

			# Ask another NAS
			$ tg-fsyn status --host 192.168.1.34 --port 5000

			# Re-check every five minutes
			$ tg-fsyn status --interval 5m

			# Structured output
			$ tg-fsyn status --format json
			$ tg-fsyn status --template '{{range .}}{{.title}}: {{.status}}{{"\n"}}{{end}}'
		`),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			switch format {
			case "text", "json", "yaml":
			default:
				return fmt.Errorf("invalid format: %s. Valid formats are: text, json, yaml", format)
			}

			template, _ := cmd.Flags().GetString("template")
			if template != "" && format != "text" {
				return fmt.Errorf("--template and --format flags cannot be used together")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.C().Synology
			cfg.Host = cliutil.GetString(cmd, "host", "synology.host")
			cfg.Port = cliutil.GetInt(cmd, "port", "synology.port")
			cfg.Username = cliutil.GetString(cmd, "username", "synology.username")
			cfg.Password = cliutil.GetString(cmd, "password", "synology.password")
			if cmd.Flags().Changed("https") {
				cfg.HTTPS, _ = cmd.Flags().GetBool("https")
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			opts := []synology.Option{
				synology.WithTimeout(time.Duration(cfg.Timeout) * time.Second),
			}
			if cfg.HTTPS {
				opts = append(opts, synology.WithHTTPS())
			}
			client := synology.New(cfg.Host, cfg.Port, cfg.Username, cfg.Password, opts...)

			log.Debug("Checking download status", "host", client.Addr(), "username", cfg.Username)

			ctx := cmd.Context()
			format, _ := cmd.Flags().GetString("format")
			template, _ := cmd.Flags().GetString("template")

			if format == "text" && template == "" {
				return report.Run(ctx, client, cmd.OutOrStdout())
			}

			tasks, err := report.Collect(ctx, client)
			if err != nil {
				return err
			}
			return cliutil.HandleOutput(cmd, report.Summaries(tasks))
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("host", "", "Synology host name or address")
	cmd.Flags().Int("port", 0, "Synology DSM port")
	cmd.Flags().StringP("username", "u", "", "DSM account name")
	cmd.Flags().StringP("password", "p", "", "DSM account password")
	cmd.Flags().Bool("https", false, "Talk to DSM over https")
	cmd.Flags().String("template", "", "Template for output format. Accepts Go template format (e.g. --template='{{range .}}{{.title}}{{end}}')")
	cmd.Flags().String("format", "text", "Output format. Accepts 'text', 'json', or 'yaml'")

	return cmd
}
