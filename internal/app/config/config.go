// Package config はYAMLファイルと環境変数からアプリケーション設定を読み込みます。
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath は CONFIG_PATH が未設定のときに読む設定ファイルです。
const DefaultPath = "configs/config.yaml"

// DefaultCommissionRate は backtest.commission_rate が未指定のときの売買手数料率です。
const DefaultCommissionRate = 0.0003

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	Server struct {
		Port           string        `yaml:"port"`
		RequestTimeout time.Duration `yaml:"request_timeout"`
		AllowedOrigins []string      `yaml:"allowed_origins"`
	} `yaml:"server"`
	Upstream struct {
		BaseURL string        `yaml:"base_url"` // API_BASE
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"upstream"`
	Database struct {
		Driver     string `yaml:"driver"` // sqlite | postgres
		SQLitePath string `yaml:"sqlite_path"`
		Host       string `yaml:"host"`
		Port       string `yaml:"port"`
		User       string `yaml:"user"`
		Password   string `yaml:"password"`
		Name       string `yaml:"name"`
	} `yaml:"database"`
	Redis struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		Password string `yaml:"password"`
	} `yaml:"redis"`
	Backtest struct {
		SweepCron      string  `yaml:"sweep_cron"`
		RateLimit      int     `yaml:"rate_limit"` // 1分あたりのバックテスト実行数
		InitialCapital float64 `yaml:"initial_capital"`
		CommissionRate float64 `yaml:"commission_rate"`
	} `yaml:"backtest"`
}

// Load は .env を読み込んだ後、YAMLファイル、環境変数、デフォルト値の順に設定を適用します。
// ファイルが存在しない場合はエラーにせず、環境変数とデフォルト値だけで構成します。
func Load(path string) (*Config, error) {
	// .env は任意
	_ = godotenv.Load()

	cfg := &Config{}
	// 0 は手数料なしとして有効なので、ファイルに無い場合だけこの値が残るよう先に入れておく
	cfg.Backtest.CommissionRate = DefaultCommissionRate

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Server.RequestTimeout = d
		}
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("API_BASE"); v != "" {
		c.Upstream.BaseURL = v
	}
	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Upstream.Timeout = d
		}
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		c.Database.SQLitePath = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		c.Database.Port = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Database.Name = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		c.Redis.Port = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("BACKTEST_SWEEP_CRON"); v != "" {
		c.Backtest.SweepCron = v
	}
	if v := os.Getenv("BACKTEST_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Backtest.RateLimit = n
		}
	}
	if v := os.Getenv("BACKTEST_COMMISSION_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Backtest.CommissionRate = f
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = 15 * time.Second
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"*"}
	}
	if c.Upstream.Timeout <= 0 {
		c.Upstream.Timeout = 10 * time.Second
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.SQLitePath == "" {
		c.Database.SQLitePath = "data/kline_viewer.db"
	}
	if c.Database.Port == "" {
		c.Database.Port = "5432"
	}
	if c.Backtest.RateLimit == 0 {
		c.Backtest.RateLimit = 30
	}
	if c.Backtest.InitialCapital == 0 {
		c.Backtest.InitialCapital = 100000
	}
}

// Validate は必須項目と値の範囲を検証します。
func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream.base_url (API_BASE) is required")
	}
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("database.driver must be sqlite or postgres, got %q", c.Database.Driver)
	}
	if c.Backtest.RateLimit <= 0 {
		return fmt.Errorf("backtest.rate_limit must be positive")
	}
	if c.Backtest.InitialCapital <= 0 {
		return fmt.Errorf("backtest.initial_capital must be positive")
	}
	if c.Backtest.CommissionRate < 0 {
		return fmt.Errorf("backtest.commission_rate must not be negative")
	}
	return nil
}

// RedisEnabled はRedisの接続先が設定されているかを返します。
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
