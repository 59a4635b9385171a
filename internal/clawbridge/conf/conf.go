package conf

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/sjzar/clawbridge/pkg/config"
)

const (
	AppName          = "clawbridge"
	ServerConfigName = "clawbridge-server"
	EnvPrefix        = "CLAWBRIDGE"
	EnvConfigDir     = "CLAWBRIDGE_DIR"
)

// Env vars shared with the original sidecar deployment. They are bound in
// addition to the CLAWBRIDGE_* automatic bindings.
const (
	EnvDataDir      = "NANOCLAW_DATA_DIR"
	EnvGroupsConfig = "GROUPS_CONFIG"
	EnvDefaultGroup = "DEFAULT_GROUP"
)

// LoadServiceConfig builds the server configuration from defaults, the
// optional clawbridge-server.json config file, environment variables and
// command line overrides, in ascending precedence.
func LoadServiceConfig(configPath string, cmdConf map[string]any) (*ServerConfig, *config.Manager, error) {

	if configPath == "" {
		configPath = os.Getenv(EnvConfigDir)
	}

	scm, err := config.New(AppName, configPath, ServerConfigName, EnvPrefix, false)
	if err != nil {
		log.Error().Err(err).Msg("load server config failed")
		return nil, nil, err
	}

	config.SetDefaults(scm.Viper, ServerDefaults)

	scm.Viper.BindEnv("data_dir", EnvDataDir)
	scm.Viper.BindEnv("groups_config", EnvGroupsConfig)
	scm.Viper.BindEnv("default_group", EnvDefaultGroup)

	// Load cmd Conf
	for key, value := range cmdConf {
		scm.SetConfig(key, value)
	}

	conf := &ServerConfig{}
	if err := scm.Load(conf); err != nil {
		log.Error().Err(err).Msg("load server config failed")
		return nil, nil, err
	}

	b, _ := json.Marshal(conf)
	log.Info().Msgf("server config: %s", string(b))

	return conf, scm, nil
}
