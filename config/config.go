package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	API     APIConfig
	Storage StorageConfig
	Export  ExportConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// APIConfig describes the remote recortes API this application fronts.
type APIConfig struct {
	BaseURL      string
	Timeout      time.Duration
	ImageTimeout time.Duration // per-image deadline for composite layer loads
}

type StorageConfig struct {
	// Dir is where the badger token store lives. The bearer token is the
	// only durable client-side state this application keeps.
	Dir string
}

type ExportConfig struct {
	// ChromePath overrides Chrome/Chromium auto-detection for catalog export.
	ChromePath string
	// BaseURL is the address chromedp navigates to when rendering the
	// catalog sheet (usually this server's own address).
	BaseURL string
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("API_BASE_URL", "http://localhost:3000/api")
	viper.SetDefault("API_TIMEOUT_SECONDS", 10)
	viper.SetDefault("API_IMAGE_TIMEOUT_SECONDS", 15)
	viper.SetDefault("STORAGE_DIR", "data/session")
	viper.SetDefault("EXPORT_BASE_URL", "http://localhost:8080")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		API: APIConfig{
			BaseURL:      viper.GetString("API_BASE_URL"),
			Timeout:      time.Duration(viper.GetInt("API_TIMEOUT_SECONDS")) * time.Second,
			ImageTimeout: time.Duration(viper.GetInt("API_IMAGE_TIMEOUT_SECONDS")) * time.Second,
		},
		Storage: StorageConfig{
			Dir: viper.GetString("STORAGE_DIR"),
		},
		Export: ExportConfig{
			ChromePath: viper.GetString("CHROME_PATH"),
			BaseURL:    viper.GetString("EXPORT_BASE_URL"),
		},
	}
}
