package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Enabled reports whether enough is configured to send mail.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Port > 0
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type BotConfig struct {
	TelegramToken string
	OwnerChatID   int64
	DatabaseURL   string
	ClosuresFile  string
	BotDebug      bool
	SMTP          SMTPConfig
	Log           LogConfig
}

var instance *BotConfig
var once sync.Once

// GetBotConfig loads the configuration once and exits when the bot cannot run.
func GetBotConfig() *BotConfig {
	once.Do(func() {
		cfg, err := Load()
		if err != nil {
			logrus.Fatalf("error loading configuration: %s", err.Error())
		}
		if cfg.TelegramToken == "" {
			logrus.Fatal("could not get bot token")
		}
		if cfg.OwnerChatID == 0 {
			logrus.Fatal("could not get owner chat id")
		}
		instance = cfg
	})

	return instance
}

// Load reads .env (when present) and the environment.
func Load() (*BotConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &BotConfig{
		TelegramToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		OwnerChatID:   getEnvAsInt("OWNER_CHAT_ID", 0),
		DatabaseURL:   getEnv("DATABASE_URL", "timesheet.db"),
		ClosuresFile:  getEnv("CLOSURES_FILE", ""),
		BotDebug:      getEnvAsBool("BOT_DEBUG", false),
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     int(getEnvAsInt("SMTP_PORT", 587)),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASS", ""),
			From:     getEnv("SMTP_FROM", ""),
		},
		Log: LogConfig{
			Level:      strings.ToLower(getEnv("LOG_LEVEL", "info")),
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  int(getEnvAsInt("LOG_MAX_SIZE_MB", 10)),
			MaxBackups: int(getEnvAsInt("LOG_MAX_BACKUPS", 3)),
			MaxAgeDays: int(getEnvAsInt("LOG_MAX_AGE_DAYS", 30)),
		},
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.User
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is empty")
	}

	return cfg, nil
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseInt(valStr, 10, 64); err == nil {
		return val
	}

	return defaultVal
}
