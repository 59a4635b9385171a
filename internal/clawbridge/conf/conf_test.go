package conf

import (
	"testing"
)

func TestLoadServiceConfigDefaults(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvGroupsConfig, "")
	t.Setenv(EnvDefaultGroup, "")

	sc, _, err := LoadServiceConfig(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("LoadServiceConfig() error: %v", err)
	}

	if sc.GetHTTPAddr() != DefaultHTTPAddr {
		t.Errorf("HTTPAddr = %s, want %s", sc.GetHTTPAddr(), DefaultHTTPAddr)
	}
	if sc.GetDataDir() != DefaultDataDir {
		t.Errorf("DataDir = %s, want %s", sc.GetDataDir(), DefaultDataDir)
	}
	if sc.GetGroupsConfig() != DefaultGroupsConfig {
		t.Errorf("GroupsConfig = %s, want %s", sc.GetGroupsConfig(), DefaultGroupsConfig)
	}
	if sc.GetDefaultGroup() != "" {
		t.Errorf("DefaultGroup = %s, want empty", sc.GetDefaultGroup())
	}
}

func TestLoadServiceConfigEnv(t *testing.T) {
	t.Setenv(EnvDataDir, "/srv/nanoclaw")
	t.Setenv(EnvGroupsConfig, "/etc/clawbridge/groups.json")
	t.Setenv(EnvDefaultGroup, "dev")

	sc, _, err := LoadServiceConfig(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("LoadServiceConfig() error: %v", err)
	}

	if sc.GetDataDir() != "/srv/nanoclaw" {
		t.Errorf("DataDir = %s, want /srv/nanoclaw", sc.GetDataDir())
	}
	if sc.GetGroupsConfig() != "/etc/clawbridge/groups.json" {
		t.Errorf("GroupsConfig = %s", sc.GetGroupsConfig())
	}
	if sc.GetDefaultGroup() != "dev" {
		t.Errorf("DefaultGroup = %s, want dev", sc.GetDefaultGroup())
	}
}

func TestLoadServiceConfigCmdOverrides(t *testing.T) {
	t.Setenv(EnvDataDir, "/srv/nanoclaw")

	cmdConf := map[string]any{
		"http_addr": "127.0.0.1:9999",
		"data_dir":  "/override",
	}

	sc, _, err := LoadServiceConfig(t.TempDir(), cmdConf)
	if err != nil {
		t.Fatalf("LoadServiceConfig() error: %v", err)
	}

	// command line flags beat environment variables
	if sc.GetHTTPAddr() != "127.0.0.1:9999" {
		t.Errorf("HTTPAddr = %s, want 127.0.0.1:9999", sc.GetHTTPAddr())
	}
	if sc.GetDataDir() != "/override" {
		t.Errorf("DataDir = %s, want /override", sc.GetDataDir())
	}
}
