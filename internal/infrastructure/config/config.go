// Package config provides configuration management for the application.
// It follows the 12-Factor App methodology by loading configuration
// from environment variables and supporting external configuration files.
//
// 12-Factor App Compilance:
// 	 - III. Config: Store config in the environment
// 	 - Configuration is loaded from environment variables
// 	 - Thresholds and bounds live here, never as literals in the core
// 	 - No config files checked into version control

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/hapkiduki/bmi-go/internal/domain/bmi"
)

// Config holds all application configuration.
// All fields are populated from environment variables or config files.
type Config struct {
	// App contains application-level configuration
	App AppConfig `mapstructure:"app"`

	// Server contains HTTP server configuration
	Server ServerConfig `mapstructure:"server"`

	// Log contains logging configuration
	Log LogConfig `mapstructure:"log"`

	// BMI contains the calculation thresholds and input bounds
	BMI ThresholdConfig `mapstructure:"bmi"`
}

// AppConfig contains application-level configuration.
type AppConfig struct {
	// Name of the application
	Name string `mapstructure:"name"`

	// Environment the application is running in (e.g., development, staging, production)
	Environment string `mapstructure:"environment"`

	// Version of the application
	Version string `mapstructure:"version"`

	// Debug mode flag
	Debug bool `mapstructure:"debug"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	// Host is the server bind address
	Host string `mapstructure:"host"`

	// Port is the server port
	Port int `mapstructure:"port"`

	// ReadTimeout is the maximum duration for reading the entire request, including the body
	ReadTimeout time.Duration `mapstructure:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`

	// ShutdownTimeout is the maximum duration for graceful server shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// CORSAllowedOrigins is a list of allowed origins for CORS
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `mapstructure:"level"`

	// Format is the output format (json, console)
	Format string `mapstructure:"format"`

	// File is an optional audit log file path; empty disables the file sink
	File string `mapstructure:"file"`
}

// ThresholdConfig contains the input bounds, category cutoffs, and form
// defaults for the BMI core. Loaded once per process and treated as
// immutable; the Validator and Calculator receive it by injection.
type ThresholdConfig struct {
	// HeightMinCm is the lower admissible bound for height input
	HeightMinCm float64 `mapstructure:"height_min_cm"`

	// HeightMaxCm is the upper admissible bound for height input
	HeightMaxCm float64 `mapstructure:"height_max_cm"`

	// WeightMinKg is the lower admissible bound for weight input
	WeightMinKg float64 `mapstructure:"weight_min_kg"`

	// WeightMaxKg is the upper admissible bound for weight input
	WeightMaxKg float64 `mapstructure:"weight_max_kg"`

	// UnderweightThreshold is the BMI cutoff below which a result is Underweight
	UnderweightThreshold float64 `mapstructure:"underweight_threshold"`

	// NormalThreshold is the BMI cutoff below which a result is Normal weight
	NormalThreshold float64 `mapstructure:"normal_threshold"`

	// OverweightThreshold is the BMI cutoff below which a result is Overweight
	OverweightThreshold float64 `mapstructure:"overweight_threshold"`

	// GaugeMax is the upper end of the gauge scale sent to the client
	GaugeMax float64 `mapstructure:"gauge_max"`

	// HeightDefaultCm prefills the height form control
	HeightDefaultCm float64 `mapstructure:"height_default_cm"`

	// WeightDefaultKg prefills the weight form control
	WeightDefaultKg float64 `mapstructure:"weight_default_kg"`
}

// Thresholds converts the configuration section into the domain
// Thresholds value consumed by the Validator and Calculator.
//
// Returns:
//   - bmi.Thresholds: the domain thresholds value
func (t ThresholdConfig) Thresholds() bmi.Thresholds {
	return bmi.Thresholds{
		HeightMinCm: t.HeightMinCm,
		HeightMaxCm: t.HeightMaxCm,
		WeightMinKg: t.WeightMinKg,
		WeightMaxKg: t.WeightMaxKg,
		Underweight: t.UnderweightThreshold,
		Normal:      t.NormalThreshold,
		Overweight:  t.OverweightThreshold,
		GaugeMax:    t.GaugeMax,
	}
}

// Load loads the configuration from environment variables and config files.
// It follows this precedence (higest to lowest):
//  1. Environment variables
//  2. Config file (if provided)
//  3. Default values
//
// Returns:
//   - *Config: The loaded configuration
//   - error: Any error encountered during loading
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Set config file settings
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("/etc/bmi-go")

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		// If the error is not "file not found", return the error
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use env vars and defaults
	}

	// Read environment variables
	v.SetEnvPrefix("BMI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific environment variables
	bindEnvVars(v)

	// Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Reject incoherent thresholds at startup rather than per request
	if err := cfg.BMI.Thresholds().Validate(); err != nil {
		return nil, fmt.Errorf("invalid threshold configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "bmi-go")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.debug", false)

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("server.cors_allowed_origins", []string{"*"}) // Allow all origins by default

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")

	// BMI defaults: realistic input bounds and the WHO category cutoffs
	v.SetDefault("bmi.height_min_cm", 100.0)
	v.SetDefault("bmi.height_max_cm", 300.0)
	v.SetDefault("bmi.weight_min_kg", 10.0)
	v.SetDefault("bmi.weight_max_kg", 500.0)
	v.SetDefault("bmi.underweight_threshold", 18.5)
	v.SetDefault("bmi.normal_threshold", 25.0)
	v.SetDefault("bmi.overweight_threshold", 30.0)
	v.SetDefault("bmi.gauge_max", 40.0)
	v.SetDefault("bmi.height_default_cm", 170.0)
	v.SetDefault("bmi.weight_default_kg", 70.0)
}

// bindEnvVars binds specific environment variables to configuration keys.
func bindEnvVars(v *viper.Viper) {
	// These are explicity bound for clarity
	v.BindEnv("app.environment", "BMI_ENVIRONMENT")
	v.BindEnv("server.port", "PORT") // Common convention
}

// MustLoad loads the configuration and panics on error.
// Use this in application entry points where configuration is required.
//
// Returns:
//   - *Config: The loaded configuration
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// GetEnv gets an environment variable with a default value.
//
// Parameters:
//   - key: Environment variable name
//   - defaultValue: Default value if not set
//
// Returns:
//   - string: The environment variable value or default
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvInt gets an integer environment variable with a default value.
//
// Parameters:
//   - key: Environment variable name
//   - defaultValue: Default value if not set or invalid
//
// Returns:
//   - int: The environment variable value or default
func GetEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvBool gets a boolean environment variable with a default value.
//
// Parameters:
//   - key: Environment variable name
//   - defaultValue: Default value if not set or invalid
//
// Returns:
//   - bool: The environment variable value or default
func GetEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
