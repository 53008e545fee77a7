package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the full server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Redis   RedisConfig   `yaml:"redis"`
	Game    GameConfig    `yaml:"game"`
	Catalog CatalogConfig `yaml:"catalog"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// PublicURL is the externally reachable base URL, used to build
	// join links and QR codes.
	PublicURL string `yaml:"public_url"`
}

// RedisConfig configures the room store connection.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig configures room lifecycle rules.
type GameConfig struct {
	RoomTTL      int `yaml:"room_ttl"`      // idle room expiry (minutes)
	MaxPlayers   int `yaml:"max_players"`   // room capacity
	MinPlayers   int `yaml:"min_players"`   // required to start a game
	CodeAttempts int `yaml:"code_attempts"` // room code collision retries
}

// CatalogConfig configures the external player-data source.
type CatalogConfig struct {
	APIBaseURL     string `yaml:"api_base_url"`
	CacheTTL       int    `yaml:"cache_ttl"`       // roster cache lifetime (hours)
	RequestTimeout int    `yaml:"request_timeout"` // per-request timeout (seconds)
}

// RoomTTLDuration returns the room expiry duration.
func (c *GameConfig) RoomTTLDuration() time.Duration {
	return time.Duration(c.RoomTTL) * time.Minute
}

// CacheTTLDuration returns the roster cache lifetime.
func (c *CatalogConfig) CacheTTLDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Hour
}

// RequestTimeoutDuration returns the per-request timeout.
func (c *CatalogConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// Load reads the configuration file and fills in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	applyEnv(&cfg)

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	applyEnv(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8090
	}
	if cfg.Server.PublicURL == "" {
		cfg.Server.PublicURL = "http://localhost:8090"
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Game.RoomTTL == 0 {
		cfg.Game.RoomTTL = 120
	}
	if cfg.Game.MaxPlayers == 0 {
		cfg.Game.MaxPlayers = 10
	}
	if cfg.Game.MinPlayers == 0 {
		cfg.Game.MinPlayers = 3
	}
	if cfg.Game.CodeAttempts == 0 {
		cfg.Game.CodeAttempts = 10
	}
	if cfg.Catalog.APIBaseURL == "" {
		cfg.Catalog.APIBaseURL = "https://www.thesportsdb.com/api/v1/json/3"
	}
	if cfg.Catalog.CacheTTL == 0 {
		cfg.Catalog.CacheTTL = 24
	}
	if cfg.Catalog.RequestTimeout == 0 {
		cfg.Catalog.RequestTimeout = 10
	}
}

// applyEnv lets deployments override the Redis connection without
// editing the yaml file.
func applyEnv(cfg *Config) {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if pass := os.Getenv("REDIS_PASSWORD"); pass != "" {
		cfg.Redis.Password = pass
	}
}
