package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig        `mapstructure:"api"`
	CAS      *CASConfig        `mapstructure:"cas"`
	Postgres *PostgresConfig   `mapstructure:"postgres"`
	Redis    *RedisConfig      `mapstructure:"redis"`
	Upload   *UploadConfig     `mapstructure:"upload"`
	Colleges map[string]string `mapstructure:"colleges"`

	mu sync.RWMutex
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	GinMode            string   `mapstructure:"gin_mode"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type CASConfig struct {
	ServerURL  string `mapstructure:"server_url"`
	ServiceURL string `mapstructure:"service_url"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
}

type RedisConfig struct {
	Addr       string        `mapstructure:"addr"`
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

type UploadConfig struct {
	Dir               string   `mapstructure:"dir"`
	MaxSizeBytes      int64    `mapstructure:"max_size_bytes"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
}

func Load(configPath string) (*AppConfig, error) {
	conf := &AppConfig{}

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	// Upload limits can be tuned without a restart. Only that section is
	// re-read on change; everything else requires a new process.
	viper.OnConfigChange(func(e fsnotify.Event) {
		if err := viper.ReadInConfig(); err != nil {
			zap.L().Warn("config changed but could not be re-read", zap.Error(err))
			return
		}

		updated := &UploadConfig{}
		if err := viper.UnmarshalKey("upload", updated); err != nil {
			zap.L().Warn("config changed but upload section is invalid", zap.Error(err))
			return
		}

		conf.mu.Lock()
		conf.Upload = updated
		conf.mu.Unlock()

		zap.L().Info("upload config reloaded", zap.String("file", e.Name))
	})
	viper.WatchConfig()

	return conf, nil
}

// UploadLimits returns the current upload section, safe against hot reloads.
func (c *AppConfig) UploadLimits() *UploadConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.Upload
}
