package cliutil

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// GetString returns the flag value when one was given, falling back to the
// named viper key. Flags always win over config file and environment.
func GetString(cmd *cobra.Command, flag string, key string) string {
	value, _ := cmd.Flags().GetString(flag)
	if value != "" {
		return value
	}

	return viper.GetString(key)
}

// GetInt is GetString for integer flags. The fallback triggers on an unset
// flag rather than a zero value; an explicit 0 wins.
func GetInt(cmd *cobra.Command, flag string, key string) int {
	if cmd.Flags().Changed(flag) {
		value, _ := cmd.Flags().GetInt(flag)
		return value
	}

	return viper.GetInt(key)
}
