package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Planner   PlannerConfig   `yaml:"planner"`
	Assistant AssistantConfig `yaml:"assistant"`
	Jobs      JobsConfig      `yaml:"jobs"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
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
}

// AuthConfig holds access-token validation settings. Tokens are issued by
// the account service and share its secret.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"contentplanner"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits for the API.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"true"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"120"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"               env-default:"30"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

// PlannerConfig holds the temporal rules of the planner.
type PlannerConfig struct {
	Timezone        string        `yaml:"timezone"          env:"PLANNER_TIMEZONE"          env-default:"Europe/Paris"`
	ScheduleMinLead time.Duration `yaml:"schedule_min_lead" env:"PLANNER_SCHEDULE_MIN_LEAD" env-default:"10m"`
	MaxBatchDelete  int           `yaml:"max_batch_delete"  env:"PLANNER_MAX_BATCH_DELETE"  env-default:"200"`
	SessionIdleTTL  time.Duration `yaml:"session_idle_ttl"  env:"PLANNER_SESSION_IDLE_TTL"  env-default:"30m"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// AssistantConfig holds the settings of the external text assistant used
// for post modification and generation.
type AssistantConfig struct {
	BaseURL            string        `yaml:"base_url"             env:"ASSISTANT_BASE_URL"             env-default:"http://localhost:8090"`
	APIKey             string        `yaml:"api_key"              env:"ASSISTANT_API_KEY"`
	Timeout            time.Duration `yaml:"timeout"              env:"ASSISTANT_TIMEOUT"              env-default:"60s"`
	BreakerMaxFailures uint32        `yaml:"breaker_max_failures" env:"ASSISTANT_BREAKER_MAX_FAILURES" env-default:"5"`
	BreakerOpenTimeout time.Duration `yaml:"breaker_open_timeout" env:"ASSISTANT_BREAKER_OPEN_TIMEOUT" env-default:"30s"`
}

// JobsConfig holds the cron schedules of periodic maintenance.
type JobsConfig struct {
	Enabled           bool   `yaml:"enabled"             env:"JOBS_ENABLED"             env-default:"true"`
	PurgeNotesSpec    string `yaml:"purge_notes_spec"    env:"JOBS_PURGE_NOTES_SPEC"    env-default:"0 3 1 * *"`
	EvictSessionsSpec string `yaml:"evict_sessions_spec" env:"JOBS_EVICT_SESSIONS_SPEC" env-default:"*/5 * * * *"`
}
