package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Admin   AdminConfig
	Session SessionConfig
}

type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	TemplatesGlob   string        `env:"TEMPLATES_GLOB" envDefault:"web/templates/*.html"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"web/static"`
}

type StoreConfig struct {
	// DataDir holds orders.json and users.json. The working directory is
	// still checked for a legacy orders.json on first read.
	DataDir string `env:"DATA_DIR" envDefault:"data"`
}

type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME" envDefault:"admin"`
	Password string `env:"ADMIN_PASSWORD" envDefault:"password"`
}

type SessionConfig struct {
	CookieName string        `env:"SESSION_COOKIE" envDefault:"soapshop_session"`
	TTL        time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	// RedisAddr switches the session backend from in-memory to Redis when
	// set, e.g. "localhost:6379".
	RedisAddr     string `env:"SESSION_REDIS_ADDR" envDefault:""`
	RedisPassword string `env:"SESSION_REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"SESSION_REDIS_DB" envDefault:"0"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
