package config

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Port                 string `mapstructure:"PORT"`
	GinMode              string `mapstructure:"GIN_MODE"`
	MongoURI             string `mapstructure:"MONGO_URI"`
	MongoDatabase        string `mapstructure:"MONGO_DB"`
	ClientURL            string `mapstructure:"CLIENT_URL"`
	UploadEndpoint       string `mapstructure:"UPLOAD_ENDPOINT"`
	UploadBaseURL        string `mapstructure:"UPLOAD_BASE_URL"`
	UploadTimeoutSeconds int    `mapstructure:"UPLOAD_TIMEOUT_SECONDS"`
}

// LoadConfig loads configuration from the environment using Viper. A local
// .env file is loaded first if present, so development matches deployments
// that inject real environment variables.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "5000")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("MONGO_DB", "NutriTrack_db")
	viper.SetDefault("UPLOAD_ENDPOINT", "https://catbox.moe/user/api.php")
	viper.SetDefault("UPLOAD_BASE_URL", "https://files.catbox.moe/")
	viper.SetDefault("UPLOAD_TIMEOUT_SECONDS", 30)

	viper.BindEnv("PORT")
	viper.BindEnv("GIN_MODE")
	viper.BindEnv("MONGO_URI")
	viper.BindEnv("MONGO_DB")
	viper.BindEnv("CLIENT_URL")
	viper.BindEnv("UPLOAD_ENDPOINT")
	viper.BindEnv("UPLOAD_BASE_URL")
	viper.BindEnv("UPLOAD_TIMEOUT_SECONDS")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is required")
	}

	return &cfg, nil
}
