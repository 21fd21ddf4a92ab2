package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFilePrefix is the historical digest file prefix; downstream
// pipelines glob for it, so it stays the default.
const DefaultFilePrefix = "FDB_DP_v11"

// EngineConfig holds the configuration for a batch aggregation run.
type EngineConfig struct {
	InputDir   string `yaml:"input_dir"`
	OutputDir  string `yaml:"output_dir"`
	FilePrefix string `yaml:"file_prefix"`
}

// ClickHouseConfig holds the connection settings for the ClickHouse writer.
type ClickHouseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// WriterDef defines a single supplemental digest sink from the config file.
type WriterDef struct {
	Type       string           `yaml:"type"`
	Enabled    bool             `yaml:"enabled"`
	ClickHouse ClickHouseConfig `yaml:"clickhouse"`
}

// RelayConfig holds the NATS settings shared by the line relay and the
// stream engine.
type RelayConfig struct {
	NATSURL string `yaml:"nats_url"`
	Subject string `yaml:"subject"`
}

// StreamConfig holds the configuration for the windowed stream engine.
type StreamConfig struct {
	DigestInterval string `yaml:"digest_interval"`
	MetricsAddr    string `yaml:"metrics_addr"`
}

// APIConfig holds the configuration for the digest HTTP API.
type APIConfig struct {
	ListenAddr string `yaml:"listen_addr"`
	DigestDir  string `yaml:"digest_dir"`
	CacheSize  int    `yaml:"cache_size"`
}

// Config is the top-level configuration struct for the entire application.
type Config struct {
	Engine  EngineConfig `yaml:"engine"`
	Writers []WriterDef  `yaml:"writers"`
	Relay   RelayConfig  `yaml:"relay"`
	Stream  StreamConfig `yaml:"stream"`
	API     APIConfig    `yaml:"api"`
}

// LoadConfig reads the configuration from a YAML file and returns a Config
// struct. A .env file (if present) and FD_* environment variables override
// the file so deployments can retarget a run without editing YAML.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()

	return &cfg, nil
}

// applyEnvOverrides loads an optional .env file and applies the recognized
// FD_* variables on top of the file values.
func (c *Config) applyEnvOverrides() {
	_ = godotenv.Load() // optional; ignore a missing .env

	if v := os.Getenv("FD_INPUT_DIR"); v != "" {
		c.Engine.InputDir = v
	}
	if v := os.Getenv("FD_OUTPUT_DIR"); v != "" {
		c.Engine.OutputDir = v
	}
	if v := os.Getenv("FD_NATS_URL"); v != "" {
		c.Relay.NATSURL = v
	}
}

func (c *Config) applyDefaults() {
	if c.Engine.FilePrefix == "" {
		c.Engine.FilePrefix = DefaultFilePrefix
	}
	if c.Stream.DigestInterval == "" {
		c.Stream.DigestInterval = "1m"
	}
	if c.API.DigestDir == "" {
		c.API.DigestDir = c.Engine.OutputDir
	}
	if c.API.CacheSize <= 0 {
		c.API.CacheSize = 16
	}
}
