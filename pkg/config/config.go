package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	FeatureFlags FeatureFlagsConfig
	CORS         CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.FeatureFlags.UseSQLite {
		return &cfg, nil
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CORNERSTORE_APP_ENV" required:"true"`
	Port         string `envconfig:"CORNERSTORE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"CORNERSTORE_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"CORNERSTORE_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"CORNERSTORE_LOG_WARN_STACK" default:"false"`
	// ShutdownTimeout bounds graceful drain of in-flight requests.
	ShutdownTimeout time.Duration `envconfig:"CORNERSTORE_SHUTDOWN_TIMEOUT" default:"15s"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"CORNERSTORE_DB_DSN"`

	LegacyHost     string `envconfig:"CORNERSTORE_DB_HOST"`
	LegacyPort     int    `envconfig:"CORNERSTORE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"CORNERSTORE_DB_USER"`
	LegacyPassword string `envconfig:"CORNERSTORE_DB_PASSWORD"`
	LegacyName     string `envconfig:"CORNERSTORE_DB_NAME"`
	LegacySSLMode  string `envconfig:"CORNERSTORE_DB_SSLMODE" default:"disable"`

	SQLitePath string `envconfig:"CORNERSTORE_SQLITE_PATH" default:"cornerstore.db"`

	MaxOpenConns    int           `envconfig:"CORNERSTORE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CORNERSTORE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CORNERSTORE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CORNERSTORE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"CORNERSTORE_REDIS_URL"`
	Address      string        `envconfig:"CORNERSTORE_REDIS_ADDR"`
	Password     string        `envconfig:"CORNERSTORE_REDIS_PASSWORD"`
	DB           int           `envconfig:"CORNERSTORE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CORNERSTORE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CORNERSTORE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CORNERSTORE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CORNERSTORE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CORNERSTORE_REDIS_WRITE_TIMEOUT" default:"5s"`
	// IdempotencyTTL is how long a create response stays replayable.
	IdempotencyTTL time.Duration `envconfig:"CORNERSTORE_IDEMPOTENCY_TTL" default:"24h"`
}

// Enabled reports whether a Redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"CORNERSTORE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"CORNERSTORE_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CORNERSTORE_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
