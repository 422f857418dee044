package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port                  string `mapstructure:"PORT"`
	DatabasePath          string `mapstructure:"DATABASE_PATH"`
	AdminUsername         string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword         string `mapstructure:"ADMIN_PASSWORD"`
	JWTSecret             string `mapstructure:"JWT_SECRET"`
	SendGridAPIKey        string `mapstructure:"SENDGRID_API_KEY"`
	SendGridFromEmail     string `mapstructure:"SENDGRID_FROM_EMAIL"`
	RecaptchaSecretKey    string `mapstructure:"RECAPTCHA_SECRET_KEY"`
	RecaptchaSiteKey      string `mapstructure:"RECAPTCHA_SITE_KEY"`
	PublicBaseURL         string `mapstructure:"PUBLIC_BASE_URL"`
	RegistrationDeadline  string `mapstructure:"REGISTRATION_DEADLINE"`
	DiscordBotToken       string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordAlertChannelID string `mapstructure:"DISCORD_ALERT_CHANNEL_ID"`
	EnableCORS            bool   `mapstructure:"ENABLE_CORS"`

	// Deadline is RegistrationDeadline parsed at load time. The zero value
	// means registration never closes.
	Deadline time.Time `mapstructure:"-"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "registrations.db")
	viper.SetDefault("PUBLIC_BASE_URL", "http://127.0.0.1:8080")
	viper.SetDefault("REGISTRATION_DEADLINE", "2025-01-30T12:00:00+09:00")

	viper.BindEnv("ADMIN_USERNAME")
	viper.BindEnv("ADMIN_PASSWORD")
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("SENDGRID_API_KEY")
	viper.BindEnv("SENDGRID_FROM_EMAIL")
	viper.BindEnv("RECAPTCHA_SECRET_KEY")
	viper.BindEnv("RECAPTCHA_SITE_KEY")
	viper.BindEnv("PUBLIC_BASE_URL")
	viper.BindEnv("REGISTRATION_DEADLINE")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_ALERT_CHANNEL_ID")
	viper.BindEnv("ENABLE_CORS")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	if config.RegistrationDeadline != "" {
		deadline, err := time.Parse(time.RFC3339, config.RegistrationDeadline)
		if err != nil {
			log.Fatalf("Invalid REGISTRATION_DEADLINE %q: %v", config.RegistrationDeadline, err)
		}
		config.Deadline = deadline
	}

	return &config
}
