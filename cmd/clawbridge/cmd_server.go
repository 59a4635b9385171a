package clawbridge

import (
	"github.com/sjzar/clawbridge/internal/clawbridge"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().StringVarP(&serverAddr, "addr", "a", "", "server address")
	serverCmd.Flags().StringVarP(&serverDataDir, "data-dir", "d", "", "nanoclaw data dir (shared volume)")
	serverCmd.Flags().StringVarP(&serverGroupsConfig, "groups-config", "g", "", "path to groups.json")
	serverCmd.Flags().StringVar(&serverDefaultGroup, "default-group", "", "group used when the request omits one")
	serverCmd.Flags().StringVarP(&serverConfigPath, "config", "c", "", "config dir")
}

var (
	serverAddr         string
	serverDataDir      string
	serverGroupsConfig string
	serverDefaultGroup string
	serverConfigPath   string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		m := clawbridge.New()

		cmdConf := make(map[string]any)
		if serverAddr != "" {
			cmdConf["http_addr"] = serverAddr
		}
		if serverDataDir != "" {
			cmdConf["data_dir"] = serverDataDir
		}
		if serverGroupsConfig != "" {
			cmdConf["groups_config"] = serverGroupsConfig
		}
		if serverDefaultGroup != "" {
			cmdConf["default_group"] = serverDefaultGroup
		}

		if err := m.CommandHTTPServer(serverConfigPath, cmdConf); err != nil {
			log.Err(err).Msg("failed to start server")
			return
		}
	},
}
