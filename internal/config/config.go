package config

import (
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	API    APIConfig
	Watch  WatchConfig
	Logger LoggerConfig
}

// APIConfig holds configuration for the remote users endpoint
type APIConfig struct {
	BaseURL               string `mapstructure:"API_BASE_URL"`
	ConnectTimeoutSeconds int    `mapstructure:"API_CONNECT_TIMEOUT_SECONDS"`
	RequestTimeoutSeconds int    `mapstructure:"API_REQUEST_TIMEOUT_SECONDS"`
	SocketTimeoutSeconds  int    `mapstructure:"API_SOCKET_TIMEOUT_SECONDS"`
}

// WatchConfig holds configuration for the watch command
type WatchConfig struct {
	IntervalSeconds int `mapstructure:"WATCH_INTERVAL_SECONDS"`
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level          string `mapstructure:"LOG_LEVEL"`
	Format         string `mapstructure:"LOG_FORMAT"`
	OutputPath     string `mapstructure:"LOG_OUTPUT_PATH"`
	EnableSampling bool   `mapstructure:"LOG_ENABLE_SAMPLING"`
	ServiceName    string `mapstructure:"SERVICE_NAME"`
	ServiceVersion string `mapstructure:"SERVICE_VERSION"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (*Config, error) {
	// Set defaults first
	setDefaults()

	viper.AddConfigPath(path)
	viper.SetConfigName("app") // Look for app.env
	viper.SetConfigType("env")

	viper.AutomaticEnv() // Read from environment variables

	// Try to read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is okay if we have env vars
	}

	var config Config

	// Manually populate config from viper
	config.API.BaseURL = viper.GetString("API_BASE_URL")
	config.API.ConnectTimeoutSeconds = viper.GetInt("API_CONNECT_TIMEOUT_SECONDS")
	config.API.RequestTimeoutSeconds = viper.GetInt("API_REQUEST_TIMEOUT_SECONDS")
	config.API.SocketTimeoutSeconds = viper.GetInt("API_SOCKET_TIMEOUT_SECONDS")

	config.Watch.IntervalSeconds = viper.GetInt("WATCH_INTERVAL_SECONDS")

	config.Logger.Level = viper.GetString("LOG_LEVEL")
	config.Logger.Format = viper.GetString("LOG_FORMAT")
	config.Logger.OutputPath = viper.GetString("LOG_OUTPUT_PATH")
	config.Logger.EnableSampling = viper.GetBool("LOG_ENABLE_SAMPLING")
	config.Logger.ServiceName = viper.GetString("SERVICE_NAME")
	config.Logger.ServiceVersion = viper.GetString("SERVICE_VERSION")

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("API_BASE_URL", "http://localhost:8080/api/v1")
	viper.SetDefault("API_CONNECT_TIMEOUT_SECONDS", 10)
	viper.SetDefault("API_REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("API_SOCKET_TIMEOUT_SECONDS", 30)

	viper.SetDefault("WATCH_INTERVAL_SECONDS", 30)

	// Logger defaults
	env := viper.GetString("APP_ENV")
	if env == "production" {
		viper.SetDefault("LOG_LEVEL", "info")
		viper.SetDefault("LOG_FORMAT", "json")
		viper.SetDefault("LOG_ENABLE_SAMPLING", true)
	} else {
		viper.SetDefault("LOG_LEVEL", "debug")
		viper.SetDefault("LOG_FORMAT", "console")
		viper.SetDefault("LOG_ENABLE_SAMPLING", false)
	}
	viper.SetDefault("LOG_OUTPUT_PATH", "stdout")
	viper.SetDefault("SERVICE_NAME", "userfeed")
	viper.SetDefault("SERVICE_VERSION", "1.0.0")
}

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid API_BASE_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid API_BASE_URL: unsupported scheme %q", u.Scheme)
	}
	if c.API.ConnectTimeoutSeconds <= 0 {
		return fmt.Errorf("API_CONNECT_TIMEOUT_SECONDS must be positive, got %d", c.API.ConnectTimeoutSeconds)
	}
	if c.API.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("API_REQUEST_TIMEOUT_SECONDS must be positive, got %d", c.API.RequestTimeoutSeconds)
	}
	if c.API.SocketTimeoutSeconds <= 0 {
		return fmt.Errorf("API_SOCKET_TIMEOUT_SECONDS must be positive, got %d", c.API.SocketTimeoutSeconds)
	}
	if c.Watch.IntervalSeconds <= 0 {
		return fmt.Errorf("WATCH_INTERVAL_SECONDS must be positive, got %d", c.Watch.IntervalSeconds)
	}
	return nil
}
