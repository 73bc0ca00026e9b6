package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	Debug    bool   `env:"DEBUG" envDefault:"false"`

	DatabaseURL    string        `env:"DATABASE_URL"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	DBConnMaxIdle  time.Duration `env:"DB_CONN_MAX_IDLE" envDefault:"5m"`
	DBConnMaxLife  time.Duration `env:"DB_CONN_MAX_LIFE" envDefault:"30m"`

	JWTSecret      string        `env:"JWT_SECRET"`
	DevTokenTTL    time.Duration `env:"DEV_TOKEN_TTL" envDefault:"30m"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	OIDCDomain       string        `env:"OIDC_DOMAIN"`
	OIDCClientID     string        `env:"OIDC_CLIENT_ID"`
	OIDCClientSecret string        `env:"OIDC_CLIENT_SECRET"`
	OIDCRedirectURI  string        `env:"OIDC_REDIRECT_URI"`
	OIDCJWKSURL      string        `env:"OIDC_JWKS_URL"`
	OIDCIssuer       string        `env:"OIDC_ISSUER"`
	JWKSRefresh      time.Duration `env:"JWKS_REFRESH" envDefault:"12h"`

	AllowedEmailDomain string `env:"ALLOWED_EMAIL_DOMAIN"`
	CookieDomain       string `env:"COOKIE_DOMAIN"`
	CookieSecure       bool   `env:"COOKIE_SECURE" envDefault:"false"`
	CORSOrigin         string `env:"CORS_ORIGIN" envDefault:"http://localhost:5173"`

	RedisURL string `env:"REDIS_URL"`
}

func Load() *Config {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if !cfg.Debug {
		if cfg.OIDCDomain == "" {
			log.Fatal("OIDC_DOMAIN is required")
		}
		if cfg.OIDCClientID == "" {
			log.Fatal("OIDC_CLIENT_ID is required")
		}
		if cfg.OIDCRedirectURI == "" {
			log.Fatal("OIDC_REDIRECT_URI is required")
		}
		if cfg.OIDCJWKSURL == "" {
			log.Fatal("OIDC_JWKS_URL is required")
		}
		if cfg.OIDCIssuer == "" {
			log.Fatal("OIDC_ISSUER is required")
		}
	}

	return cfg
}
