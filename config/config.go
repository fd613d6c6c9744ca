package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Think      ThinkConfig      `yaml:"think"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns host:port for http.Server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig keeps the lowercase env names the deployment .env files already use.
type DatabaseConfig struct {
	User            string        `yaml:"user"              env:"user"                env-required:"true"`
	Password        string        `yaml:"password"          env:"password"`
	Host            string        `yaml:"host"              env:"host"                env-default:"localhost"`
	Port            string        `yaml:"port"              env:"port"                env-default:"5432"`
	Name            string        `yaml:"dbname"            env:"dbname"              env-required:"true"`
	SSLMode         string        `yaml:"sslmode"           env:"sslmode"             env-default:"require"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"   env-default:"25"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"   env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"1h"`
	ConnectRetries  int           `yaml:"connect_retries"   env:"DB_CONNECT_RETRIES"  env-default:"5"`
	RetryDelay      time.Duration `yaml:"retry_delay"       env:"DB_RETRY_DELAY"      env-default:"2s"`
}

// DSN builds a postgres connection URL.
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(strings.TrimSpace(c.User), strings.TrimSpace(c.Password)),
		Host:     strings.TrimSpace(c.Host) + ":" + strings.TrimSpace(c.Port),
		Path:     "/" + strings.TrimSpace(c.Name),
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
}

// DictionaryConfig points at the Wordnik v4 API.
type DictionaryConfig struct {
	BaseURL         string        `yaml:"base_url"         env:"WORDNIK_BASE_URL"         env-default:"https://api.wordnik.com/v4"`
	APIKey          string        `yaml:"api_key"          env:"WORDNIK_API_KEY"`
	Timeout         time.Duration `yaml:"timeout"          env:"WORDNIK_TIMEOUT"          env-default:"5s"`
	DefinitionLimit int           `yaml:"definition_limit" env:"WORDNIK_DEFINITION_LIMIT" env-default:"200"`
}

type ThinkConfig struct {
	MaxPerUser      int `yaml:"max_per_user"      env:"THINK_MAX_PER_USER"      env-default:"100"`
	DefaultPageSize int `yaml:"default_page_size" env:"THINK_DEFAULT_PAGE_SIZE" env-default:"10"`
	MaxPageSize     int `yaml:"max_page_size"     env:"THINK_MAX_PAGE_SIZE"     env-default:"100"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Authorization,Content-Type"`
}
