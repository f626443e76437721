package set

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ValidConfigKeys defines the allowed configuration keys
var ValidConfigKeys = []string{
	"synology.host",
	"synology.port",
	"synology.username",
	"synology.password",
	"synology.https",
	"synology.timeout",
	"telegram.token",
	"telegram.storage_path",
	"telegram.allowed_users",
	"telegram.admin_users",
	"telegram.max_file_size",
}

func NewSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  `Set a configuration value that will be persisted in the config file.`,
		Example: heredoc.Doc(`
			# Point the CLI at the NAS
			$ tg-fsyn config set synology.host 192.168.1.34

			# Set the DSM account
			$ tg-fsyn config set synology.username admin

			# Set the Telegram bot token
			$ tg-fsyn config set telegram.token YOUR_BOT_TOKEN
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			// Validate key is in allowed list
			valid := false
			for _, validKey := range ValidConfigKeys {
				if key == validKey {
					valid = true
					break
				}
			}
			if !valid {
				return fmt.Errorf("invalid config key: %s. Valid keys are: %v", key, ValidConfigKeys)
			}

			viper.Set(key, value)

			if err := viper.WriteConfig(); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			fmt.Printf("Successfully set %s = %s\n", key, value)
			return nil
		},
	}

	return cmd
}
