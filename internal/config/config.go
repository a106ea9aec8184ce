package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port        int    `yaml:"port"`
	GinMode     string `yaml:"gin_mode"`
	Environment string `yaml:"environment"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	AccessTTL  string `yaml:"access_ttl"`
	SessionTTL string `yaml:"session_ttl"`
}

type MessagingConfig struct {
	AccountSID  string `yaml:"account_sid"`
	AuthToken   string `yaml:"auth_token"`
	FromNumber  string `yaml:"from_number"`
	CountryCode string `yaml:"country_code"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	JWT       JWTConfig       `yaml:"jwt"`
	Messaging MessagingConfig `yaml:"messaging"`
}

type Config struct {
	Port        string
	GinMode     string
	Development bool

	DSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret  string
	JWTIssuer  string
	AccessTTL  time.Duration
	SessionTTL time.Duration

	MessagingSID   string
	MessagingToken string
	MessagingFrom  string
	CountryCode    string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml, then lets environment variables override
// individual values. A .env file is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accessTTL, err := time.ParseDuration(configFile.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	sessionTTL, err := time.ParseDuration(configFile.JWT.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	redisDB := configFile.Redis.DB
	if v := os.Getenv("REDIS_DB"); v != "" {
		redisDB, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
	}

	environment := env("APP_ENV", configFile.App.Environment)

	return &Config{
		Port:           env("PORT", fmt.Sprintf("%d", configFile.App.Port)),
		GinMode:        env("GIN_MODE", configFile.App.GinMode),
		Development:    environment == "development",
		DSN:            env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:      env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:  env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:        redisDB,
		JWTSecret:      env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:      env("JWT_ISSUER", configFile.JWT.Issuer),
		AccessTTL:      accessTTL,
		SessionTTL:     sessionTTL,
		MessagingSID:   env("MESSAGING_ACCOUNT_SID", configFile.Messaging.AccountSID),
		MessagingToken: env("MESSAGING_AUTH_TOKEN", configFile.Messaging.AuthToken),
		MessagingFrom:  env("MESSAGING_FROM_NUMBER", configFile.Messaging.FromNumber),
		CountryCode:    env("MESSAGING_COUNTRY_CODE", configFile.Messaging.CountryCode),
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
