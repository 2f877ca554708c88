package config

// EnvPrefix is handed to envconfig. Fields carry their full variable name in the
// envconfig tag, which envconfig resolves as the alternate key.
const EnvPrefix = "CORNERSTORE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv      = "CORNERSTORE_APP_ENV"
	EnvPort        = "CORNERSTORE_APP_PORT"
	EnvLogLevel    = "CORNERSTORE_LOG_LEVEL"
	EnvDBDSN       = "CORNERSTORE_DB_DSN"
	EnvDBHost      = "CORNERSTORE_DB_HOST"
	EnvDBPort      = "CORNERSTORE_DB_PORT"
	EnvDBUser      = "CORNERSTORE_DB_USER"
	EnvDBPassword  = "CORNERSTORE_DB_PASSWORD"
	EnvDBName      = "CORNERSTORE_DB_NAME"
	EnvDBSSLMode   = "CORNERSTORE_DB_SSLMODE"
	EnvRedisURL    = "CORNERSTORE_REDIS_URL"
	EnvUseSQLite   = "CORNERSTORE_USE_SQLITE"
	EnvAutoMigrate = "CORNERSTORE_AUTO_MIGRATE"
	EnvCORSOrigins = "CORNERSTORE_CORS_ALLOWED_ORIGINS"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
