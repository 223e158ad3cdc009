package config

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Planner   PlannerConfig   `yaml:"planner"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	APIPrefix       string        `yaml:"api_prefix"       env:"SERVER_API_PREFIX"       env-default:"/api"`
}

// DatabaseConfig holds document store connection settings.
// Driver selects the store: "postgres" (JSONB documents) or "mongo".
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"postgres"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	Name            string        `yaml:"name"               env:"DATABASE_NAME"               env-default:"revision_planner"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds the optional bearer token settings. With an empty
// JWTSecret every request runs as the placeholder owner.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"revision-planner"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	AllowAnonymous bool          `yaml:"allow_anonymous"  env:"AUTH_ALLOW_ANONYMOUS"  env-default:"true"`
}

// Enabled reports whether bearer tokens are validated.
func (c AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

// PlannerConfig holds subject and daily revision behaviour switches.
type PlannerConfig struct {
	DefaultOwnerID      string `yaml:"default_owner_id"      env:"PLANNER_DEFAULT_OWNER_ID"      env-default:"60d5ec49-f1b7-4c20-801c-1f5e8b000000"`
	DeleteMode          string `yaml:"delete_mode"           env:"PLANNER_DELETE_MODE"           env-default:"cascade"`
	ListScope           string `yaml:"list_scope"            env:"PLANNER_LIST_SCOPE"            env-default:"owner"`
	SyncMode            string `yaml:"sync_mode"             env:"PLANNER_SYNC_MODE"             env-default:"create"`
	SeedOnCreate        bool   `yaml:"seed_on_create"        env:"PLANNER_SEED_ON_CREATE"        env-default:"true"`
	DefaultTimerMinutes int    `yaml:"default_timer_minutes" env:"PLANNER_DEFAULT_TIMER_MINUTES" env-default:"25"`
	Timezone            string `yaml:"timezone"              env:"PLANNER_TIMEZONE"              env-default:"UTC"`
	DailySeedEnabled    bool   `yaml:"daily_seed_enabled"    env:"PLANNER_DAILY_SEED_ENABLED"    env-default:"false"`
	DailySeedAt         string `yaml:"daily_seed_at"         env:"PLANNER_DAILY_SEED_AT"         env-default:"00:05"`

	// DefaultOwner is parsed from DefaultOwnerID during validation.
	DefaultOwner uuid.UUID `yaml:"-" env:"-"`
	// Location is loaded from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"     env-default:"300"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}

// Policy returns the planner behaviour selected by this configuration.
// Validate must have run so that Location is set.
func (p PlannerConfig) Policy() domain.PlannerPolicy {
	return domain.PlannerPolicy{
		DeleteMode:          domain.DeleteMode(p.DeleteMode),
		ListScope:           domain.ListScope(p.ListScope),
		SyncMode:            domain.SyncMode(p.SyncMode),
		SeedOnCreate:        p.SeedOnCreate,
		DefaultTimerMinutes: p.DefaultTimerMinutes,
		Location:            p.Location,
	}
}
