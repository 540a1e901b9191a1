package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/database"
)

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Flutterwave FlutterwaveConfig `mapstructure:"flutterwave"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Rewards     RewardsConfig     `mapstructure:"rewards"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// FlutterwaveConfig contains payment gateway settings
type FlutterwaveConfig struct {
	SecretKey string `mapstructure:"secretKey"`
	BaseURL   string `mapstructure:"baseURL"`
	// TestMode skips the customer email binding check during deposit
	// verification. Never enable outside sandbox environments.
	TestMode bool `mapstructure:"testMode"`
}

// RedisConfig contains leaderboard cache settings
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RewardsConfig contains earn and claim settings
type RewardsConfig struct {
	DefaultClaimCooldown int    `mapstructure:"defaultClaimCooldown"`
	AdminEmail           string `mapstructure:"adminEmail"`
	APIToken             string `mapstructure:"apiToken"`
}

// Validate checks the settings that cannot be defaulted
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return errors.New("database host is required")
	}
	if c.Database.Username == "" {
		return errors.New("database username is required")
	}
	if c.Database.Password == "" {
		return errors.New("database password is required")
	}
	if c.Database.Database == "" {
		return errors.New("database name is required")
	}
	if c.Flutterwave.SecretKey == "" {
		return errors.New("flutterwave secret key is required")
	}
	if c.Environment == Production && c.Flutterwave.TestMode {
		return errors.New("flutterwave test mode is not allowed in production")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return errors.New("redis address is required when redis is enabled")
	}
	return nil
}

// ToDatabaseConfig converts the raw settings into the database adapter config
func (c *Config) ToDatabaseConfig() (*database.Config, error) {
	port, err := strconv.Atoi(c.Database.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid database port %q: %w", c.Database.Port, err)
	}

	return &database.Config{
		Host:            c.Database.Host,
		Port:            port,
		Username:        c.Database.Username,
		Password:        c.Database.Password,
		Database:        c.Database.Database,
		SSLMode:         c.Database.SSLMode,
		MaxOpenConns:    c.Database.MaxOpenConns,
		MaxIdleConns:    c.Database.MaxIdleConns,
		ConnMaxLifetime: c.Database.ConnMaxLifetime,
		ConnMaxIdleTime: c.Database.ConnMaxIdleTime,
		QueryTimeout:    c.Database.QueryTimeout,
		LogLevel:        c.Logger.Level,
		RetryAttempts:   c.Database.RetryAttempts,
		RetryDelay:      c.Database.RetryDelay,
	}, nil
}

// IsProduction reports whether the app runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
