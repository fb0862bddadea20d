package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	MySQL  MySQLConfig
	JWT    JWTConfig
	Auth   AuthConfig
}

type ServerConfig struct {
	AppEnv            string
	HTTPPort          string
	ShutdownTimeout   time.Duration
	CORSAllowedOrigin string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type MySQLConfig struct {
	DSN             string
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
}

type JWTConfig struct {
	SecretKey string
	Issuer    string
	Audience  string
	TTL       time.Duration
}

type AuthConfig struct {
	CatalogAdminEmails []string
}

// IsDevelopment reports whether the service runs with developer defaults.
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.AppEnv == "dev"
}

// DataSourceName returns the driver DSN, taken from DB_DSN when set and
// assembled from the parts otherwise. parseTime and clientFoundRows are
// always forced on: repositories scan DATETIME into time.Time and treat a
// matched UPDATE as found.
func (c MySQLConfig) DataSourceName() (string, error) {
	var dsn *mysql.Config
	if c.DSN != "" {
		parsed, err := mysql.ParseDSN(c.DSN)
		if err != nil {
			return "", fmt.Errorf("config: parse DB_DSN: %w", err)
		}
		dsn = parsed
	} else {
		dsn = mysql.NewConfig()
		dsn.User = c.User
		dsn.Passwd = c.Password
		dsn.Net = "tcp"
		dsn.Addr = net.JoinHostPort(c.Host, c.Port)
		dsn.DBName = c.DBName
	}

	dsn.ParseTime = true
	dsn.ClientFoundRows = true
	return dsn.FormatDSN(), nil
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds a Config from v, filling unset keys with defaults.
func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			AppEnv:            v.GetString("APP_ENV"),
			HTTPPort:          v.GetString("HTTP_PORT"),
			ShutdownTimeout:   time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
			CORSAllowedOrigin: v.GetString("CORS_ALLOWED_ORIGIN"),
		},
		Logger: LoggerConfig{
			Level:             v.GetString("LOGGER_LEVEL"),
			Encoding:          v.GetString("LOGGER_ENCODING"),
			DisableCaller:     v.GetBool("LOGGER_DISABLE_CALLER"),
			DisableStacktrace: v.GetBool("LOGGER_DISABLE_STACKTRACE"),
		},
		MySQL: MySQLConfig{
			DSN:             v.GetString("DB_DSN"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetString("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			AutoMigrate:     v.GetBool("DB_AUTO_MIGRATE"),
		},
		JWT: JWTConfig{
			SecretKey: v.GetString("JWT_SECRET_KEY"),
			Issuer:    v.GetString("JWT_ISSUER"),
			Audience:  v.GetString("JWT_AUDIENCE"),
			TTL:       time.Duration(v.GetInt("JWT_TTL_MINUTES")) * time.Minute,
		},
		Auth: AuthConfig{
			CatalogAdminEmails: splitList(v.GetString("CATALOG_ADMIN_EMAILS")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.HTTPPort == "" {
		return fmt.Errorf("config: HTTP_PORT must not be empty")
	}
	if c.JWT.SecretKey == "" {
		return fmt.Errorf("config: JWT_SECRET_KEY must not be empty")
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("config: JWT_TTL_MINUTES must be positive")
	}
	if c.MySQL.MaxOpenConns < 0 || c.MySQL.MaxIdleConns < 0 {
		return fmt.Errorf("config: connection pool limits must not be negative")
	}
	if _, err := c.MySQL.DataSourceName(); err != nil {
		return err
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("HTTP_PORT", ":8080")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	v.SetDefault("CORS_ALLOWED_ORIGIN", "http://localhost:5173")

	v.SetDefault("LOGGER_LEVEL", "debug")
	v.SetDefault("LOGGER_ENCODING", "console")
	v.SetDefault("LOGGER_DISABLE_CALLER", false)
	v.SetDefault("LOGGER_DISABLE_STACKTRACE", true)

	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_USER", "shopfront")
	v.SetDefault("DB_PASSWORD", "shopfront")
	v.SetDefault("DB_NAME", "shopfront")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 25)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)
	v.SetDefault("DB_AUTO_MIGRATE", false)

	v.SetDefault("JWT_SECRET_KEY", "your-secret-key-change-this-in-prod")
	v.SetDefault("JWT_ISSUER", "shopfront-api")
	v.SetDefault("JWT_AUDIENCE", "shopfront-clients")
	v.SetDefault("JWT_TTL_MINUTES", 60)

	v.SetDefault("CATALOG_ADMIN_EMAILS", "admin@admin.com")
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
