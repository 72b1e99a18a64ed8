package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string
	APIBaseURL  string
	ShopName    string

	SMTPServer       string
	SMTPPort         string
	SMTPUser         string
	SMTPPassword     string
	SMTPFrom         string
	SMTPAuthDisabled bool
}

// Load reads configuration from the environment, with an optional config.env
// file for local development. Every key has a workable default except
// DATABASE_URL, which the caller must validate before connecting.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("PORT", "7788")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("API_BASE_URL", "http://localhost:7788")
	v.SetDefault("SHOP_NAME", "Nadeeka Auto Service")
	v.SetDefault("SMTP_SERVER", "")
	v.SetDefault("SMTP_PORT", "587")
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASS", "")
	v.SetDefault("SMTP_FROM", "")
	v.SetDefault("SMTP_AUTH_DISABLED", false)

	if err := v.ReadInConfig(); err != nil {
		// The file is optional; only a malformed file is an error.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		Port:             v.GetString("PORT"),
		DatabaseURL:      v.GetString("DATABASE_URL"),
		RedisAddr:        v.GetString("REDIS_ADDR"),
		APIBaseURL:       v.GetString("API_BASE_URL"),
		ShopName:         v.GetString("SHOP_NAME"),
		SMTPServer:       v.GetString("SMTP_SERVER"),
		SMTPPort:         v.GetString("SMTP_PORT"),
		SMTPUser:         v.GetString("SMTP_USER"),
		SMTPPassword:     v.GetString("SMTP_PASS"),
		SMTPFrom:         v.GetString("SMTP_FROM"),
		SMTPAuthDisabled: v.GetBool("SMTP_AUTH_DISABLED"),
	}, nil
}
