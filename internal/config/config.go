package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Staffing policy knobs
	RestPeriodHours     float64 `mapstructure:"REST_PERIOD_HOURS"`
	MaxWeeklyHours      float64 `mapstructure:"MAX_WEEKLY_HOURS"`
	AutoFillMinScore    float64 `mapstructure:"AUTO_FILL_MIN_SCORE"`
	ConflictWindowHours int     `mapstructure:"CONFLICT_WINDOW_HOURS"`
	ScoringWeightsFile  string  `mapstructure:"SCORING_WEIGHTS_FILE"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "guard_roster")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// Staffing policy defaults. Rest period and weekly cap follow the
	// working-time rules the conflict analyzer enforces.
	viper.SetDefault("REST_PERIOD_HOURS", 11.0)
	viper.SetDefault("MAX_WEEKLY_HOURS", 48.0)
	viper.SetDefault("AUTO_FILL_MIN_SCORE", 60.0)
	viper.SetDefault("CONFLICT_WINDOW_HOURS", 48)
	viper.SetDefault("SCORING_WEIGHTS_FILE", "config/scoring.yaml")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.RestPeriodHours <= 0 {
		return fmt.Errorf("rest period must be positive")
	}

	if config.AutoFillMinScore < 0 || config.AutoFillMinScore > 100 {
		return fmt.Errorf("auto-fill minimum score must be between 0 and 100")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
