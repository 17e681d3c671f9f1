package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"jobdigest/internal/secrets"
)

// Environment keys for mail transport. Host and port default; user, pass and
// recipient are mandatory run preconditions.
const (
	EnvHost      = "EMAIL_HOST"
	EnvPort      = "EMAIL_PORT"
	EnvUser      = "EMAIL_USER"
	EnvPass      = "EMAIL_PASS"
	EnvRecipient = "RECIPIENT_EMAIL"
)

const (
	defaultHost = "smtp.gmail.com"
	defaultPort = 587
)

// LoadMailEnv reads mail credentials from the environment, after loading a
// .env file when one is present (missing .env is fine — CI passes secrets as
// real env vars). When EMAIL_PASS is unset the OS keychain is consulted as a
// fallback. No validation happens here; Validate reports what's missing.
func LoadMailEnv() MailConfig {
	_ = godotenv.Load()

	mc := MailConfig{
		Host:      envOr(EnvHost, defaultHost),
		Port:      envIntOr(EnvPort, defaultPort),
		Username:  strings.TrimSpace(os.Getenv(EnvUser)),
		Password:  strings.TrimSpace(os.Getenv(EnvPass)),
		Recipient: strings.TrimSpace(os.Getenv(EnvRecipient)),
	}

	if mc.Password == "" && mc.Username != "" {
		if pw, err := secrets.GetSMTPPassword(secrets.Account(mc.Username, mc.Host)); err == nil {
			mc.Password = pw
		}
	}
	return mc
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
