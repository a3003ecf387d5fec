package config

import (
	yamlenv "github.com/ifuryst/go-yaml-env"

	"github.com/svw-wertheim/spielbericht/pkg/logger"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Logger     logger.Config    `yaml:"logger"`
	Club       ClubConfig       `yaml:"club"`
	LeagueAPI  LeagueAPIConfig  `yaml:"league_api"`
	Generation GenerationConfig `yaml:"generation"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
}

type ServerConfig struct {
	Port     int    `yaml:"port"`
	Host     string `yaml:"host"`
	Mode     string `yaml:"mode"`
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

type DatabaseConfig struct {
	Type     string `yaml:"type"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
	TimeZone string `yaml:"timezone"`
}

type ClubConfig struct {
	// Name is the club's full display name used in generated tags.
	Name string `yaml:"name"`
	// NameKeyword identifies the own team by case-insensitive substring
	// match; the league feed carries no stable team ids.
	NameKeyword string `yaml:"name_keyword"`
}

type LeagueAPIConfig struct {
	BaseURL  string `yaml:"base_url"`
	APIKey   string `yaml:"api_key"`
	SeasonID string `yaml:"season_id"`
}

type GenerationConfig struct {
	// BatchSize caps how many pending log entries one run processes.
	BatchSize int `yaml:"batch_size"`
	// EntryTimeout bounds the processing of a single entry; exceeding it
	// marks the entry failed.
	EntryTimeout string `yaml:"entry_timeout"`
}

type SchedulerConfig struct {
	SyncInterval string `yaml:"sync_interval"`
	// Enabled should be false when an external cron drives the pipeline
	// via the HTTP API; the queue assumes a single invoker at a time.
	Enabled bool `yaml:"enabled"`
}

func LoadConfig(configPath string) (*Config, error) {
	cfg, err := yamlenv.LoadConfig[Config](configPath)
	if err != nil {
		return nil, err
	}

	// Set default values
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5335
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "debug"
	}
	if cfg.Database.Type == "" {
		cfg.Database.Type = "postgres"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.TimeZone == "" {
		cfg.Database.TimeZone = "Europe/Berlin"
	}
	if cfg.Club.Name == "" {
		cfg.Club.Name = "SV Viktoria Wertheim"
	}
	if cfg.Club.NameKeyword == "" {
		cfg.Club.NameKeyword = "viktoria"
	}
	if cfg.Generation.BatchSize == 0 {
		cfg.Generation.BatchSize = 10
	}
	if cfg.Generation.EntryTimeout == "" {
		cfg.Generation.EntryTimeout = "30s"
	}
	if cfg.Scheduler.SyncInterval == "" {
		cfg.Scheduler.SyncInterval = "30m"
	}

	return cfg, nil
}
