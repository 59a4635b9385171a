package clawbridge

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	// windows only
	cobra.MousetrapHelpText = ""

	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "debug")
	rootCmd.PersistentPreRun = initLog
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Err(err).Msg("command execution failed")
	}
}

var rootCmd = &cobra.Command{
	Use:     "clawbridge",
	Short:   "HTTP to IPC bridge for the nanoclaw WhatsApp bot",
	Long:    `clawbridge accepts POST /send requests and writes nanoclaw IPC message files so the running bot container delivers them to WhatsApp.`,
	Example: `clawbridge server -a 0.0.0.0:8080 -d /data`,
	Args:    cobra.MinimumNArgs(0),
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Run: Root,
}

func Root(cmd *cobra.Command, args []string) {
	serverCmd.Run(cmd, args)
}
