package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/language"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, API origin, DB connection, etc.)
// - default: Values common across all environments (locales, timeout, log format, etc.)
// -----------------------------------------------------------------------------

const (
	ContentSourceFixtures = "fixtures"
	ContentSourcePostgres = "postgres"

	TyCsModeStatic = "static"
	TyCsModeSSR    = "ssr"
)

type Config struct {
	Server  ServerConfig
	API     APIConfig
	Locale  LocaleConfig
	Content ContentConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type APIConfig struct {
	// Empty means the content API served by this process (http://localhost:$PORT).
	BaseURL string        `envconfig:"API_BASE_URL"`
	Timeout time.Duration `envconfig:"API_TIMEOUT" default:"0s"`
}

type LocaleConfig struct {
	Default   string   `envconfig:"LOCALE_DEFAULT" default:"pt-BR"`
	Supported []string `envconfig:"LOCALE_SUPPORTED" default:"en-US,es-ES,pt-BR"`
}

type ContentConfig struct {
	Source   string `envconfig:"CONTENT_SOURCE" default:"fixtures"`
	TyCsMode string `envconfig:"TYCS_MODE" default:"static"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Sao_Paulo"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// APIBaseURL returns the content API origin without a trailing slash.
func (c Config) APIBaseURL() string {
	base := strings.TrimSpace(c.API.BaseURL)
	if base == "" {
		base = "http://localhost:" + c.Server.Port
	}
	return strings.TrimRight(base, "/")
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if len(c.Locale.Supported) == 0 {
		return fmt.Errorf("LOCALE_SUPPORTED must not be empty")
	}
	for _, l := range c.Locale.Supported {
		if _, err := language.Parse(l); err != nil {
			return fmt.Errorf("invalid locale %q in LOCALE_SUPPORTED: %w", l, err)
		}
	}
	if !slices.Contains(c.Locale.Supported, c.Locale.Default) {
		return fmt.Errorf("LOCALE_DEFAULT %q is not in LOCALE_SUPPORTED", c.Locale.Default)
	}

	switch c.Content.Source {
	case ContentSourceFixtures:
	case ContentSourcePostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required when CONTENT_SOURCE=%s", ContentSourcePostgres)
		}
	default:
		return fmt.Errorf("unknown CONTENT_SOURCE %q", c.Content.Source)
	}

	switch c.Content.TyCsMode {
	case TyCsModeStatic, TyCsModeSSR:
	default:
		return fmt.Errorf("unknown TYCS_MODE %q", c.Content.TyCsMode)
	}
	return nil
}

func LoadConfig() (Config, error) {
	// .env is optional; real deployments pass plain environment variables.
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Locale: LocaleConfig{
			Default:   "pt-BR",
			Supported: []string{"en-US", "es-ES", "pt-BR"},
		},
		Content: ContentConfig{
			Source:   ContentSourceFixtures,
			TyCsMode: TyCsModeStatic,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Sao_Paulo",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
	}
}
