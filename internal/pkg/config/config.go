package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"
	_ "time/tzdata" // booking and log zones must resolve in minimal images

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets)
// - default: Values common across all environments (timezone, delays, links)
// A .env file in the working directory is loaded first when present; real
// environment variables always win over it.
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	Booking   BookingConfig
	Receipt   ReceiptConfig
	Contact   ContactConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StoreDriverMemory   = "memory"
	StoreDriverRedis    = "redis"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

type StoreConfig struct {
	Driver        string `envconfig:"STORE_DRIVER" default:"memory"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix     string `envconfig:"STORE_KEY_PREFIX" default:""`
	SQLitePath    string `envconfig:"SQLITE_PATH" default:"canchas.db"`
}

// DBConfig is only read when STORE_DRIVER=postgres.
type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"canchas"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type RateLimitConfig struct {
	Enabled           bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerSecond float64       `envconfig:"RATE_LIMIT_RPS" default:"1"`
	Burst             int           `envconfig:"RATE_LIMIT_BURST" default:"5"`
	IdleTTL           time.Duration `envconfig:"RATE_LIMIT_IDLE_TTL" default:"10m"`
}

type BookingConfig struct {
	TimeZone     string        `envconfig:"BOOKING_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	JoinDelay    time.Duration `envconfig:"WAITLIST_JOIN_DELAY" default:"1s"`
	PaymentDelay time.Duration `envconfig:"PAYMENT_DELAY" default:"2s"`
	PublishDelay time.Duration `envconfig:"RIVALS_PUBLISH_DELAY" default:"1500ms"`
}

// Location falls back to UTC when the zone database does not know the name.
func (c BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type ReceiptConfig struct {
	Secret string `envconfig:"RECEIPT_SECRET" required:"true"`
}

type ContactConfig struct {
	WhatsAppURL    string `envconfig:"CONTACT_WHATSAPP_URL" default:"https://wa.me/+543795165059"`
	FallbackNumber string `envconfig:"CONTACT_FALLBACK_NUMBER" default:"5493795165059"`
	MapsURL        string `envconfig:"CONTACT_MAPS_URL" default:"https://maps.app.goo.gl/csSJmhT7QrKzkErz6"`
	FacebookURL    string `envconfig:"CONTACT_FACEBOOK_URL" default:"https://www.facebook.com/ComplejoSarmientoF5"`
	InstagramURL   string `envconfig:"CONTACT_INSTAGRAM_URL" default:"https://www.instagram.com/sarmientof5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}

	switch cfg.Store.Driver {
	case StoreDriverMemory, StoreDriverRedis, StoreDriverSQLite, StoreDriverPostgres:
	default:
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.Store.Driver)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver:    StoreDriverMemory,
			RedisAddr: "localhost:16379",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Argentina/Buenos_Aires",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Argentina/Buenos_Aires",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
		},
		Booking: BookingConfig{
			TimeZone: "America/Argentina/Buenos_Aires",
		},
		Receipt: ReceiptConfig{
			Secret: "test-receipt-secret",
		},
		Contact: ContactConfig{
			WhatsAppURL:    "https://wa.me/+543795165059",
			FallbackNumber: "5493795165059",
			MapsURL:        "https://maps.app.goo.gl/csSJmhT7QrKzkErz6",
			FacebookURL:    "https://www.facebook.com/ComplejoSarmientoF5",
			InstagramURL:   "https://www.instagram.com/sarmientof5",
		},
	}
}
