package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Appwrite configuration
	AppwriteEndpoint   string `mapstructure:"APPWRITE_ENDPOINT"`
	AppwriteProjectID  string `mapstructure:"APPWRITE_PROJECT_ID"`
	AppwriteAPIKey     string `mapstructure:"APPWRITE_API_KEY"`
	AppwriteDatabaseID string `mapstructure:"APPWRITE_DATABASE_ID"`

	// Collection IDs
	CollectionHackathons    string `mapstructure:"COLLECTION_HACKATHONS"`
	CollectionUsers         string `mapstructure:"COLLECTION_USERS"`
	CollectionTeams         string `mapstructure:"COLLECTION_TEAMS"`
	CollectionAnnouncements string `mapstructure:"COLLECTION_ANNOUNCEMENTS"`
	CollectionSubmissions   string `mapstructure:"COLLECTION_SUBMISSIONS"`
	CollectionScores        string `mapstructure:"COLLECTION_SCORES"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
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

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Appwrite defaults
	viper.SetDefault("APPWRITE_ENDPOINT", "https://cloud.appwrite.io/v1")

	// Collection defaults match the collection IDs set up in the Appwrite console
	viper.SetDefault("COLLECTION_HACKATHONS", "hackathons")
	viper.SetDefault("COLLECTION_USERS", "users")
	viper.SetDefault("COLLECTION_TEAMS", "teams")
	viper.SetDefault("COLLECTION_ANNOUNCEMENTS", "announcements")
	viper.SetDefault("COLLECTION_SUBMISSIONS", "submissions")
	viper.SetDefault("COLLECTION_SCORES", "scores")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"})
}

func validate(config *Config) error {
	var missing []string

	if config.AppwriteProjectID == "" {
		missing = append(missing, "APPWRITE_PROJECT_ID")
	}
	if config.AppwriteAPIKey == "" {
		missing = append(missing, "APPWRITE_API_KEY")
	}
	if config.AppwriteDatabaseID == "" {
		missing = append(missing, "APPWRITE_DATABASE_ID")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return nil
}
