package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Бэкенды хранилища бронирований
const (
	ReservationStoreMemory   = "memory"
	ReservationStorePostgres = "postgres"
)

const defaultAuthorizeURL = "https://api.intra.42.fr/oauth/authorize"

type Config struct {
	TelegramToken    string `mapstructure:"TELEGRAM_TOKEN"`
	DBDSN            string `mapstructure:"DB_DSN"`
	Environment      string `mapstructure:"ENV"`
	ReservationStore string `mapstructure:"RESERVATION_STORE"`
	TimeZone         string `mapstructure:"TZ_NAME"`
	HealthAddr       string `mapstructure:"HEALTH_ADDR"`

	OAuthClientID     string `mapstructure:"OAUTH_CLIENT_ID"`
	OAuthRedirectURI  string `mapstructure:"OAUTH_REDIRECT_URI"`
	OAuthAuthorizeURL string `mapstructure:"OAUTH_AUTHORIZE_URL"`
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := FromEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Printf("Config loaded\n")

	return cfg, nil
}

// FromEnv собирает конфиг из функции чтения переменных и проставляет дефолты
func FromEnv(getenv func(string) string) *Config {
	cfg := &Config{
		TelegramToken:     getenv("TELEGRAM_TOKEN"),
		DBDSN:             getenv("DB_DSN"),
		Environment:       getenv("ENV"),
		ReservationStore:  getenv("RESERVATION_STORE"),
		TimeZone:          getenv("TZ_NAME"),
		HealthAddr:        getenv("HEALTH_ADDR"),
		OAuthClientID:     getenv("OAUTH_CLIENT_ID"),
		OAuthRedirectURI:  getenv("OAUTH_REDIRECT_URI"),
		OAuthAuthorizeURL: getenv("OAUTH_AUTHORIZE_URL"),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.ReservationStore == "" {
		cfg.ReservationStore = ReservationStoreMemory
	}
	if cfg.TimeZone == "" {
		cfg.TimeZone = "Local"
	}
	if cfg.OAuthAuthorizeURL == "" {
		cfg.OAuthAuthorizeURL = defaultAuthorizeURL
	}

	return cfg
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	if c.DBDSN == "" {
		return fmt.Errorf("DB_DSN is required but not set")
	}
	switch c.ReservationStore {
	case ReservationStoreMemory, ReservationStorePostgres:
	default:
		return fmt.Errorf("unknown RESERVATION_STORE %q", c.ReservationStore)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location возвращает часовой пояс, в котором считается "сегодня"
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load TZ_NAME %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}
