package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	App       AppConfig
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Session   SessionConfig
	Redis     RedisConfig
	Billing   BillingConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	TimeZone string `envconfig:"APP_TIMEZONE" default:"Asia/Tokyo"`
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type SessionConfig struct {
	// also used as the cross-origin protection key
	Secret         string        `envconfig:"SESSION_SECRET" required:"true"`
	Lifetime       time.Duration `envconfig:"SESSION_LIFETIME" default:"2h"`
	CookieName     string        `envconfig:"SESSION_COOKIE_NAME" default:"nagoyameshi_session"`
	TrustedOrigins []string      `envconfig:"SESSION_TRUSTED_ORIGINS" default:"localhost:3000,localhost:8080"`
}

type RedisConfig struct {
	// empty URL keeps sessions in memory
	URL    string `envconfig:"REDIS_URL" default:""`
	Prefix string `envconfig:"REDIS_SESSION_PREFIX" default:"nagoyameshi:session:"`
}

type BillingConfig struct {
	// empty key selects the local gateway
	StripeSecretKey     string `envconfig:"STRIPE_SECRET_KEY" default:""`
	StripePriceID       string `envconfig:"STRIPE_PREMIUM_PRICE_ID" default:""`
	StripeWebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" default:""`
	MonthlyFee          int64  `envconfig:"PREMIUM_MONTHLY_FEE" default:"300"`
}

type RateLimitConfig struct {
	LoginPerMinute int `envconfig:"LOGIN_RATE_PER_MINUTE" default:"5"`
	LoginBurst     int `envconfig:"LOGIN_RATE_BURST" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.FixedZone("JST", 9*60*60)
	}
	return loc
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		App: AppConfig{TimeZone: "Asia/Tokyo"},
		Server: ServerConfig{
			Port:            "8889", // Test port
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-jwt-signing!",
			Duration: "1h",
		},
		Cookie: CookieConfig{SameSite: "Lax"},
		Session: SessionConfig{
			Secret:     "0123456789abcdef0123456789abcdef",
			Lifetime:   time.Hour,
			CookieName: "nagoyameshi_session",
		},
		Redis: RedisConfig{Prefix: "nagoyameshi:test:session:"},
		Billing: BillingConfig{
			MonthlyFee: 300,
		},
		RateLimit: RateLimitConfig{
			LoginPerMinute: 600,
			LoginBurst:     100,
		},
	}
}
