package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment    string
	Port           string
	LogLevel       string
	AllowedOrigins []string
	Datastore      DatastoreConfig
	Email          EmailConfig
	Notify         NotifyConfig
}

// DatastoreConfig locates the registration datastore. URL is a postgres
// connection URL; Key is the access key used as the connection password.
type DatastoreConfig struct {
	URL string
	Key string
}

// EmailConfig holds outbound email settings.
type EmailConfig struct {
	Provider    string
	User        string
	Password    string
	FromAddress string
	FromName    string
	SMTPHost    string
	SMTPPort    int

	SESRegion             string
	SESAccessKeyID        string
	SESSecretAccessKey    string
	SESInsecureSkipVerify bool
}

// NotifyConfig sizes the confirmation email worker pool.
type NotifyConfig struct {
	Workers     int
	QueueSize   int
	SendTimeout time.Duration
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production .env might not exist and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:    env,
		Port:           os.Getenv("PORT"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		Datastore: DatastoreConfig{
			URL: strings.TrimSpace(os.Getenv("DATASTORE_URL")),
			Key: strings.TrimSpace(os.Getenv("DATASTORE_KEY")),
		},
		Email: EmailConfig{
			Provider:              strings.ToLower(os.Getenv("EMAIL_PROVIDER")),
			User:                  os.Getenv("EMAIL_USER"),
			Password:              os.Getenv("EMAIL_PASS"),
			FromAddress:           os.Getenv("EMAIL_FROM"),
			FromName:              os.Getenv("EMAIL_FROM_NAME"),
			SMTPHost:              os.Getenv("SMTP_HOST"),
			SESRegion:             os.Getenv("AWS_REGION"),
			SESAccessKeyID:        os.Getenv("AWS_ACCESS_KEY_ID"),
			SESSecretAccessKey:    os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SESInsecureSkipVerify: os.Getenv("SES_INSECURE_SKIP_VERIFY") == "true",
		},
	}

	var err error
	if cfg.Email.SMTPPort, err = intFromEnv("SMTP_PORT", 587); err != nil {
		return nil, err
	}
	if cfg.Notify.Workers, err = intFromEnv("NOTIFY_WORKERS", 2); err != nil {
		return nil, err
	}
	if cfg.Notify.QueueSize, err = intFromEnv("NOTIFY_QUEUE_SIZE", 100); err != nil {
		return nil, err
	}
	if cfg.Notify.SendTimeout, err = durationFromEnv("NOTIFY_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	if cfg.Email.SMTPHost == "" {
		cfg.Email.SMTPHost = "smtp.gmail.com"
	}
	if cfg.Email.FromAddress == "" {
		cfg.Email.FromAddress = cfg.Email.User
	}
	if cfg.Email.FromName == "" {
		cfg.Email.FromName = "Altranz Team"
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = "noop"
		if cfg.Email.User != "" && cfg.Email.Password != "" {
			cfg.Email.Provider = "smtp"
		}
	}

	return cfg, nil
}

// Configured reports whether real datastore credentials are present.
// Missing values and the sample placeholders from .env.example select mock mode.
func (d DatastoreConfig) Configured() bool {
	if d.URL == "" || d.Key == "" {
		return false
	}
	return !isPlaceholder(d.URL) && !isPlaceholder(d.Key)
}

// DSN returns the connection string with Key set as the password.
func (d DatastoreConfig) DSN() (string, error) {
	u, err := url.Parse(d.URL)
	if err != nil {
		return "", fmt.Errorf("parse datastore url: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("unsupported datastore scheme %q", u.Scheme)
	}
	if d.Key != "" {
		user := "postgres"
		if u.User != nil && u.User.Username() != "" {
			user = u.User.Username()
		}
		u.User = url.UserPassword(user, d.Key)
	}
	return u.String(), nil
}

func isPlaceholder(v string) bool {
	v = strings.ToLower(v)
	return strings.Contains(v, "your_") ||
		strings.Contains(v, "your-") ||
		strings.Contains(v, "changeme") ||
		strings.HasPrefix(v, "<")
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func intFromEnv(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s %q", key, s)
	}
	return v, nil
}

func durationFromEnv(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return v, nil
}
