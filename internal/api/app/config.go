package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is parsed once at startup and passed by value into constructors.
// Nothing below reads the process environment after this point.
type Config struct {
	// JWTSecret signs every token the service mints. Missing secret is a
	// startup failure, not a failure at first token use.
	JWTSecret string `env:"APP_JWT_SECRET,required"`
	Issuer    string `env:"APP_ISSUER" envDefault:"certmint"`

	DatabaseFile string `env:"APP_DATABASE_FILE" envDefault:"certmint.db"`
	Port         int    `env:"PORT" envDefault:"8080"`

	// BaseURL is the public origin used in emailed links.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`
	AppName string `env:"APP_NAME" envDefault:"certmint"`

	ResendAPIKey string `env:"RESEND_API_KEY"`
	MailFrom     string `env:"MAIL_FROM" envDefault:"certmint <no-reply@certmint.dev>"`

	// RequireVerifiedEmail blocks login until the address is verified.
	RequireVerifiedEmail bool `env:"APP_REQUIRE_VERIFIED_EMAIL" envDefault:"false"`

	SessionTTL       time.Duration `env:"APP_SESSION_TTL" envDefault:"2h"`
	EmailVerifyTTL   time.Duration `env:"APP_EMAIL_VERIFY_TTL" envDefault:"24h"`
	PasswordResetTTL time.Duration `env:"APP_PASSWORD_RESET_TTL" envDefault:"1h"`

	Env                 string        `env:"ENV" envDefault:"dev"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig parses the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
