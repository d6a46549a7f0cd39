package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	EnvProduction  = "production"
	EnvDevelopment = "development"
)

type Config struct {
	Env      string
	Server   ServerConfig
	TLS      TLSConfig
	Database DatabaseConfig
	Log      LogConfig
	// APIURL is the base URL the directory CLI talks to.
	APIURL string
}

type ServerConfig struct {
	Port             string
	AllowedOrigins   []string
	AllowCredentials bool
}

// TLSConfig holds environment-driven TLS configuration.
type TLSConfig struct {
	Enable          bool
	CertPath        string
	KeyPath         string
	AllowSelfSigned bool // allow generating self-signed in dev when files are missing
}

type DatabaseConfig struct {
	Driver          string
	URL             string
	SQLitePath      string
	MaxConns        int32
	MinConns        int32
	MaxConnIdleTime time.Duration
	ApplySchema     bool
	SchemaPath      string
}

type LogConfig struct {
	Level string
	File  string
}

// Load reads .env (when present) and the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "")
	v.SetDefault("ENV", "")
	v.SetDefault("SERVER_PORT", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("CORS_ALLOW_CREDENTIALS", false)
	v.SetDefault("ENABLE_TLS", false)
	v.SetDefault("TLS_CERT_PATH", "")
	v.SetDefault("TLS_KEY_PATH", "")
	v.SetDefault("TLS_SELF_SIGNED", true)
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SQLITE_PATH", "./companies.db")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_CONN_IDLE_TIME", "5m")
	v.SetDefault("APPLY_SCHEMA_ON_START", false)
	v.SetDefault("SCHEMA_PATH", "")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("DIRECTORY_API_URL", "http://localhost:3001")
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (Config, error) {
	env := strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV")))
	if env == "" {
		env = strings.ToLower(strings.TrimSpace(v.GetString("ENV")))
	}
	if env == "" {
		env = EnvDevelopment
	}

	enableTLS := v.GetBool("ENABLE_TLS")
	// Enforce TLS in production
	if env == EnvProduction {
		enableTLS = true
	}

	port := strings.TrimSpace(v.GetString("SERVER_PORT"))
	if port == "" {
		if enableTLS {
			port = "8443"
		} else {
			port = "3001"
		}
	}

	idle, err := time.ParseDuration(v.GetString("DB_MAX_CONN_IDLE_TIME"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_MAX_CONN_IDLE_TIME: %w", err)
	}

	driver := strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER")))
	switch driver {
	case DriverPostgres, "postgresql", "pgx":
		driver = DriverPostgres
	case DriverSQLite, "sqlite3":
		driver = DriverSQLite
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	cfg := Config{
		Env: env,
		Server: ServerConfig{
			Port:             port,
			AllowedOrigins:   ParseOrigins(v.GetString("CORS_ALLOWED_ORIGINS")),
			AllowCredentials: v.GetBool("CORS_ALLOW_CREDENTIALS"),
		},
		TLS: TLSConfig{
			Enable:          enableTLS,
			CertPath:        v.GetString("TLS_CERT_PATH"),
			KeyPath:         v.GetString("TLS_KEY_PATH"),
			AllowSelfSigned: v.GetBool("TLS_SELF_SIGNED"),
		},
		Database: DatabaseConfig{
			Driver:          driver,
			URL:             v.GetString("DATABASE_URL"),
			SQLitePath:      v.GetString("SQLITE_PATH"),
			MaxConns:        v.GetInt32("DB_MAX_CONNS"),
			MinConns:        v.GetInt32("DB_MIN_CONNS"),
			MaxConnIdleTime: idle,
			ApplySchema:     v.GetBool("APPLY_SCHEMA_ON_START"),
			SchemaPath:      v.GetString("SCHEMA_PATH"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
			File:  v.GetString("LOG_FILE"),
		},
		APIURL: strings.TrimRight(v.GetString("DIRECTORY_API_URL"), "/"),
	}

	return cfg, nil
}

// ParseOrigins splits a comma separated origin list. An empty list allows
// every origin.
func ParseOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Validate ensures TLS settings are safe for the selected environment.
func (c Config) Validate() error {
	if c.Env == EnvProduction {
		if !c.TLS.Enable {
			return fmt.Errorf("TLS must be enabled in production")
		}
		if c.TLS.CertPath == "" || c.TLS.KeyPath == "" {
			return fmt.Errorf("TLS_CERT_PATH and TLS_KEY_PATH are required in production")
		}
	}
	if c.Database.Driver == DriverPostgres && c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required when DB_DRIVER=postgres")
	}
	return nil
}
