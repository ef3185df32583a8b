// Package config はアプリケーション設定を管理します。
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix は環境変数の接頭辞です（例: NEO_PORT）。
const EnvPrefix = "NEO"

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	// 地球近傍天体CSVのパス
	NEOFile string `mapstructure:"neofile"`

	// 接近記録JSONのパス
	CADFile string `mapstructure:"cadfile"`

	// HTTPサーバーのポート
	Port string `mapstructure:"port"`

	// API認証キー（空の場合は/api/以下を提供しない）
	APIKey string `mapstructure:"api_key"`

	// 1秒あたりのリクエスト上限（0以下で無効）
	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`

	LogJSON bool `mapstructure:"log_json"`
	Debug   bool `mapstructure:"debug"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("neofile", "data/neos.csv")
	v.SetDefault("cadfile", "data/cad.json")
	v.SetDefault("port", "8080")
	v.SetDefault("api_key", "")
	v.SetDefault("rate_limit", 0.0)
	v.SetDefault("rate_burst", 10)
	v.SetDefault("log_json", false)
	v.SetDefault("debug", false)
}

// NewViper returns a viper instance with defaults and NEO_ environment
// variables bound. Flags bound later take precedence over both.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load reads the optional YAML file at path into v and decodes the result.
// An empty path skips the file.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate は設定値の整合性を検証します。
func (c *Config) Validate() error {
	if c.NEOFile == "" {
		return errors.New("neofile must not be empty")
	}
	if c.CADFile == "" {
		return errors.New("cadfile must not be empty")
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		return errors.Newf("rate_burst must be at least 1 when rate_limit is set, got %d", c.RateBurst)
	}
	return nil
}

// RateLimited reports whether request rate limiting is enabled.
func (c *Config) RateLimited() bool {
	return c.RateLimit > 0
}
