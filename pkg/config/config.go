package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable consumed by the app.
	EnvPrefix = "RIFTBOUND"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	Mongo         MongoConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Catalog       CatalogConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RIFTBOUND_APP_ENV" default:"dev"`
	Port         string `envconfig:"RIFTBOUND_APP_PORT" default:"3000"`
	LogLevel     string `envconfig:"RIFTBOUND_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RIFTBOUND_LOG_WARN_STACK" default:"false"`
	// ClientDist points at the built web client; when set, the API process
	// serves those static assets alongside the JSON endpoints.
	ClientDist  string   `envconfig:"RIFTBOUND_CLIENT_DIST"`
	CORSOrigins []string `envconfig:"RIFTBOUND_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type MongoConfig struct {
	URI            string        `envconfig:"RIFTBOUND_MONGODB_URI" default:"mongodb://localhost:27017/riftbound_local"`
	Database       string        `envconfig:"RIFTBOUND_MONGODB_DATABASE" default:"riftbound_local"`
	ConnectTimeout time.Duration `envconfig:"RIFTBOUND_MONGODB_CONNECT_TIMEOUT" default:"10s"`
	QueryTimeout   time.Duration `envconfig:"RIFTBOUND_MONGODB_QUERY_TIMEOUT" default:"15s"`
	MaxPoolSize    uint64        `envconfig:"RIFTBOUND_MONGODB_MAX_POOL_SIZE" default:"10"`
}

// RedisConfig is optional; auth rate limiting is disabled when URL is empty.
type RedisConfig struct {
	URL          string        `envconfig:"RIFTBOUND_REDIS_URL"`
	Address      string        `envconfig:"RIFTBOUND_REDIS_ADDR"`
	Password     string        `envconfig:"RIFTBOUND_REDIS_PASSWORD"`
	DB           int           `envconfig:"RIFTBOUND_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"RIFTBOUND_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"RIFTBOUND_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"RIFTBOUND_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"RIFTBOUND_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"RIFTBOUND_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret          string `envconfig:"RIFTBOUND_JWT_SECRET" default:"changemepls"`
	Issuer          string `envconfig:"RIFTBOUND_JWT_ISSUER" default:"riftbound-api"`
	ExpirationHours int    `envconfig:"RIFTBOUND_JWT_EXPIRATION_HOURS" default:"168"`
}

// TokenTTL returns the session token lifetime, defaulting to 7 days.
func (j JWTConfig) TokenTTL() time.Duration {
	if j.ExpirationHours <= 0 {
		return 168 * time.Hour
	}
	return time.Duration(j.ExpirationHours) * time.Hour
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"RIFTBOUND_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"RIFTBOUND_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"RIFTBOUND_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"RIFTBOUND_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"RIFTBOUND_ARGON_KEY_LEN" default:"32"`
	MinLength        int `envconfig:"RIFTBOUND_PASSWORD_MIN_LENGTH" default:"6"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"RIFTBOUND_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"RIFTBOUND_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"RIFTBOUND_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"RIFTBOUND_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"RIFTBOUND_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"RIFTBOUND_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

// CatalogConfig covers the apitcg.com source consumed by the seed job only.
type CatalogConfig struct {
	APIURL  string        `envconfig:"RIFTBOUND_API_TCG_URL" default:"https://apitcg.com/api/riftbound/cards"`
	APIKey  string        `envconfig:"RIFTBOUND_API_TCG_KEY"`
	Timeout time.Duration `envconfig:"RIFTBOUND_API_TCG_TIMEOUT" default:"30s"`
}
