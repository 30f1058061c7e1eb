package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Generation  GenerationConfig  `yaml:"generation"`
	Entitlement EntitlementConfig `yaml:"entitlement"`
	RateLimit   RateLimitConfig   `yaml:"ratelimit"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,Idempotency-Key"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds settings for verifying identity-provider tokens.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	Issuer    string `yaml:"issuer"     env:"AUTH_ISSUER"`
	Audience  string `yaml:"audience"   env:"AUTH_AUDIENCE"`
}

// GenerationConfig holds text-generation provider settings.
type GenerationConfig struct {
	Provider  string        `yaml:"provider"   env:"GENERATION_PROVIDER"   env-default:"anthropic"`
	APIKey    string        `yaml:"api_key"    env:"ANTHROPIC_API_KEY"`
	Model     string        `yaml:"model"      env:"GENERATION_MODEL"      env-default:"claude-sonnet-4-5"`
	MaxTokens int           `yaml:"max_tokens" env:"GENERATION_MAX_TOKENS" env-default:"4096"`
	Timeout   time.Duration `yaml:"timeout"    env:"GENERATION_TIMEOUT"    env-default:"90s"`
}

// Supported generation providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderStub      = "stub"
)

// EntitlementConfig holds quota settings.
type EntitlementConfig struct {
	FreeLettersLimit  int    `yaml:"free_letters_limit" env:"ENTITLEMENT_FREE_LETTERS_LIMIT" env-default:"3"`
	UnlimitedTiersRaw string `yaml:"unlimited_tiers"    env:"ENTITLEMENT_UNLIMITED_TIERS"    env-default:"unlimited"`

	// UnlimitedTiers is parsed from UnlimitedTiersRaw during validation.
	UnlimitedTiers []string `yaml:"-" env:"-"`
}

// RateLimitConfig holds per-user throttling of letter generation.
type RateLimitConfig struct {
	GeneratePerMinute int `yaml:"generate_per_minute" env:"RATELIMIT_GENERATE_PER_MINUTE" env-default:"6"`
	Burst             int `yaml:"burst"               env:"RATELIMIT_BURST"               env-default:"2"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
