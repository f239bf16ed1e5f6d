package constants

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	IndexDir       string `toml:"index_dir,omitempty"`
	ListenAddr     string `toml:"listen_addr,omitempty"`
	DynamoEndpoint string `toml:"dynamo_endpoint,omitempty"`
	DynamoRegion   string `toml:"dynamo_region,omitempty"`
	Table          string `toml:"table,omitempty"`
	AllowOpen      bool   `toml:"allow_open,omitempty"`
	Stretch        bool   `toml:"stretch,omitempty"`
	BPM            int    `toml:"bpm,omitempty"`
}

func FromEnv() Config {
	return Config{
		IndexDir:       GetIndexDir(),
		ListenAddr:     GetListenAddr(),
		DynamoEndpoint: GetDynamoEndpoint(),
		DynamoRegion:   GetDynamoRegion(),
		Table:          GetTableName(),
		BPM:            60,
	}
}

// Load overlays the TOML file at path on top of the environment defaults.
// An empty path returns the environment config.
func Load(path string) (Config, error) {
	cfg := FromEnv()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.IndexDir = pick(file.IndexDir, cfg.IndexDir)
	cfg.ListenAddr = pick(file.ListenAddr, cfg.ListenAddr)
	cfg.DynamoEndpoint = pick(file.DynamoEndpoint, cfg.DynamoEndpoint)
	cfg.DynamoRegion = pick(file.DynamoRegion, cfg.DynamoRegion)
	cfg.Table = pick(file.Table, cfg.Table)
	cfg.AllowOpen = file.AllowOpen
	cfg.Stretch = file.Stretch
	if file.BPM > 0 {
		cfg.BPM = file.BPM
	}
	return cfg, nil
}

func pick(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
