package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration for the patrol verification server.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Patrol   PatrolConfig   `mapstructure:"patrol"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig HTTP server settings.
type ServerConfig struct {
	Port    int        `mapstructure:"port"`
	BaseURL string     `mapstructure:"base_url"`
	CORS    CORSConfig `mapstructure:"cors"`
}

// CORSConfig cross-origin settings.
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig PostgreSQL settings.
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"sslmode"`
	Timezone        string `mapstructure:"timezone"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`  // minutes
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time"` // minutes
}

// DSN builds the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig Redis settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig JWT settings.
type AuthConfig struct {
	JWTSecret               string        `mapstructure:"jwt_secret"`
	AccessTokenTTL          time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTLDefault  time.Duration `mapstructure:"refresh_token_ttl_default"`
	RefreshTokenTTLRemember time.Duration `mapstructure:"refresh_token_ttl_remember_me"`
}

// PatrolConfig tuning knobs for the patrol compliance engine.
//
// The whole deployment runs at a single site timezone (+05:30). SiteTimezone
// is resolved via time.LoadLocation; when the tzdata lookup fails we fall back
// to a fixed +05:30 zone so report day boundaries stay correct on minimal
// containers without a tz database.
type PatrolConfig struct {
	SiteTimezone string        `mapstructure:"site_timezone"`
	GracePeriod  time.Duration `mapstructure:"grace_period"`
	RoundGap     time.Duration `mapstructure:"round_gap"`
	ReportTTL    time.Duration `mapstructure:"report_cache_ttl"`
}

// Location resolves the configured site timezone.
func (c *PatrolConfig) Location() *time.Location {
	if loc, err := time.LoadLocation(c.SiteTimezone); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+30*60)
}

// LogConfig logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment.
// Precedence: environment variables > config file > defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── defaults ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:3000"})

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "security_verifier")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "Asia/Kolkata")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", 60)
	v.SetDefault("db.conn_max_idle_time", 30)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.access_token_ttl", "15m")
	v.SetDefault("auth.refresh_token_ttl_default", "24h")
	v.SetDefault("auth.refresh_token_ttl_remember_me", "168h")

	v.SetDefault("patrol.site_timezone", "Asia/Kolkata")
	v.SetDefault("patrol.grace_period", "10m")
	v.SetDefault("patrol.round_gap", "30m")
	v.SetDefault("patrol.report_cache_ttl", "5m")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── config file ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── environment variables ──
	v.SetEnvPrefix("SVS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// missing file is fine: defaults + env only
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the critical configuration values.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config validation: auth.jwt_secret must not be empty")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("config validation: auth.jwt_secret must be at least 16 characters")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config validation: server.port must be within 1-65535")
	}
	if c.Patrol.GracePeriod <= 0 {
		return fmt.Errorf("config validation: patrol.grace_period must be positive")
	}
	if c.Patrol.RoundGap <= 0 {
		return fmt.Errorf("config validation: patrol.round_gap must be positive")
	}
	return nil
}
