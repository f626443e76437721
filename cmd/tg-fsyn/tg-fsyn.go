package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ag0n1k/tg-fsyn/cmd/tg-fsyn/root"
	"github.com/ag0n1k/tg-fsyn/internal/config"
)

var (
	cfgFile string
	cmd     = root.NewRootCmd()
)

func init() {
	cobra.OnInitialize(initConfig)
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.tg-fsyn.yaml)")
}

func main() {
	cmd.Execute()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".tg-fsyn")
		viper.SetConfigType("yaml")
		viper.SafeWriteConfig()
	}

	// Running without a config file is fine, everything can come from the
	// environment. Only a file the user explicitly asked for is required.
	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Println("Can't read config:", err)
		os.Exit(1)
	}

	if err := config.Load(); err != nil {
		fmt.Println("Can't load configuration:", err)
		os.Exit(1)
	}

	if config.C().Verbose {
		log.SetLevel(log.DebugLevel)
	}
}
