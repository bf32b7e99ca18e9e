package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:   "txtlocal",
		Short: "Send sms through the Textlocal API",
		Long: `Send sms through the Textlocal API.

Credentials come from TXTLOCAL_APIKEY, or TXTLOCAL_USERNAME with
TXTLOCAL_HASH or TXTLOCAL_PASSWORD, or the same keys in a config file.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (toml, yaml or json)")
	root.PersistentFlags().Bool("debug", false, "development logging")
	root.PersistentFlags().String("log-level", "", "log level: error, warn, info, debug")

	root.AddCommand(newSendCmd(&cfgPath))

	return root
}
