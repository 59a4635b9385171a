package conf

const (
	DefaultHTTPAddr     = "0.0.0.0:8080"
	DefaultDataDir      = "/data"
	DefaultGroupsConfig = "/config/groups.json"
)

type ServerConfig struct {
	HTTPAddr     string            `mapstructure:"http_addr"`
	DataDir      string            `mapstructure:"data_dir"`
	GroupsConfig string            `mapstructure:"groups_config"`
	DefaultGroup string            `mapstructure:"default_group"`
	Groups       map[string]string `mapstructure:"groups"`
}

var ServerDefaults = map[string]any{
	"http_addr":     DefaultHTTPAddr,
	"data_dir":      DefaultDataDir,
	"groups_config": DefaultGroupsConfig,
	"default_group": "",
}

func (c *ServerConfig) GetHTTPAddr() string {
	if c.HTTPAddr == "" {
		c.HTTPAddr = DefaultHTTPAddr
	}
	return c.HTTPAddr
}

func (c *ServerConfig) GetDataDir() string {
	return c.DataDir
}

func (c *ServerConfig) GetGroupsConfig() string {
	return c.GroupsConfig
}

func (c *ServerConfig) GetDefaultGroup() string {
	return c.DefaultGroup
}

func (c *ServerConfig) GetGroups() map[string]string {
	return c.Groups
}
