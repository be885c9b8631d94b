package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort string `yaml:"APP_PORT"`
	LogDir  string `yaml:"LOG_DIR"`

	// Recipe dataset
	DatasetSource string `yaml:"DATASET_SOURCE"`
	WatchDataset  bool   `yaml:"WATCH_DATASET"`
	TimeZone      string `yaml:"TIMEZONE"`

	// Record store: memory or postgres
	StoreDriver string `yaml:"STORE_DRIVER"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT key, empty disables token checks
	JWTSecret string `yaml:"JWT_SECRET"`

	// AWS S3 configuration
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

const DefaultConfigPath = "config.yaml"

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:       "8080",
		LogDir:        "./logs",
		DatasetSource: "./data/recipes.json",
		TimeZone:      "Local",
		StoreDriver:   "memory",
		DBHost:        "localhost",
		DBPort:        "5432",
		AWSS3Region:   "ap-southeast-1",
	}
}

// LoadConfig reads path over the defaults. A missing file keeps the
// defaults; environment variables with the same key names win over both.
func LoadConfig(path string) error {
	cfg := defaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	config = cfg
	return nil
}

func applyEnv(cfg *Config) {
	fields := map[string]*string{
		"APP_PORT":       &cfg.AppPort,
		"LOG_DIR":        &cfg.LogDir,
		"DATASET_SOURCE": &cfg.DatasetSource,
		"TIMEZONE":       &cfg.TimeZone,
		"STORE_DRIVER":   &cfg.StoreDriver,
		"DB_USER":        &cfg.DBUser,
		"DB_NAME":        &cfg.DBName,
		"DB_PASSWORD":    &cfg.DBPassword,
		"DB_PORT":        &cfg.DBPort,
		"DB_HOST":        &cfg.DBHost,
		"JWT_SECRET":     &cfg.JWTSecret,
		"AWS_S3_REGION":  &cfg.AWSS3Region,
		"AWS_ACCESS_KEY": &cfg.AWSAccessKey,
		"AWS_SECRET_KEY": &cfg.AWSSecretKey,
	}
	for key, field := range fields {
		if v, ok := os.LookupEnv(key); ok {
			*field = v
		}
	}
	if v, ok := os.LookupEnv("WATCH_DATASET"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.WatchDataset = b
		}
	}
}

// SetConfig overrides a single key, used for command line flags.
func SetConfig(key, value string) {
	switch key {
	case "APP_PORT":
		config.AppPort = value
	case "DATASET_SOURCE":
		config.DatasetSource = value
	case "STORE_DRIVER":
		config.StoreDriver = value
	case "TIMEZONE":
		config.TimeZone = value
	case "WATCH_DATASET":
		config.WatchDataset = value == "true"
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "LOG_DIR":
		return config.LogDir
	case "DATASET_SOURCE":
		return config.DatasetSource
	case "WATCH_DATASET":
		return strconv.FormatBool(config.WatchDataset)
	case "TIMEZONE":
		return config.TimeZone
	case "STORE_DRIVER":
		return config.StoreDriver
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}
