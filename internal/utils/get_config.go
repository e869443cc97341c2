package utils

import (
	"os"
	"strconv"
	"sync"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort        string `yaml:"APP_PORT"`
	AppURL         string `yaml:"APP_URL"`
	PlantTimezone  string `yaml:"PLANT_TIMEZONE"`
	AllowedOrigins string `yaml:"ALLOWED_ORIGINS"`
	RateLimit      int    `yaml:"RATE_LIMIT"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`
	JWTIssuer string `yaml:"JWT_ISSUER"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
	NotifyEmail      string `yaml:"NOTIFY_EMAIL"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var (
	config   Config
	configMu sync.RWMutex
)

// LoadConfig reads the yaml file at path. A missing file is not an error:
// every key can also come from the environment.
func LoadConfig(path string) error {
	var c Config
	file, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if err == nil {
		if err := yaml.Unmarshal(file, &c); err != nil {
			return err
		}
	}

	configMu.Lock()
	config = c
	configMu.Unlock()
	return nil
}

// SetConfig replaces the loaded configuration.
func SetConfig(c Config) {
	configMu.Lock()
	config = c
	configMu.Unlock()
}

// GetConfig returns the value for key, with the environment taking precedence
// over the yaml file.
func GetConfig(key string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	configMu.RLock()
	defer configMu.RUnlock()

	switch key {
	case "APP_PORT":
		return orDefault(config.AppPort, "8080")
	case "APP_URL":
		return config.AppURL
	case "PLANT_TIMEZONE":
		return orDefault(config.PlantTimezone, "America/Mexico_City")
	case "ALLOWED_ORIGINS":
		return orDefault(config.AllowedOrigins, "*")
	case "RATE_LIMIT":
		if config.RateLimit <= 0 {
			return "20"
		}
		return strconv.Itoa(config.RateLimit)
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return orDefault(config.DBPort, "5432")
	case "DB_HOST":
		return orDefault(config.DBHost, "localhost")
	case "DB_SSLMODE":
		return orDefault(config.DBSSLMode, "disable")
	case "JWT_SECRET":
		return config.JWTSecret
	case "JWT_ISSUER":
		return orDefault(config.JWTIssuer, "GALEANA")
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "NOTIFY_EMAIL":
		return config.NotifyEmail
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
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

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
