package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Configはアプリ全体の設定
type Config struct {
	GoEnv string `env:"GO_ENV" envDefault:"development"` // development/production

	HTTP     HTTPServer
	Log      Log
	Database Database `envPrefix:"DB_"`
	Session  Session  `envPrefix:"SESSION_"`

	// 一覧系で共通のページサイズ
	CatalogPageSize int `env:"CATALOG_PAGE_SIZE" envDefault:"5"`

	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"PORT" envDefault:"8080"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// DB接続設定。URLがあれば最優先で使う
type Database struct {
	Driver string `env:"DRIVER" envDefault:"postgres"` // postgres/mysql/sqlite
	URL    string `env:"URL"`

	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD" envDefault:"postgres"`
	Name     string `env:"NAME" envDefault:"bookstore"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`

	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"10"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"50"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"1h"`
}

// セッションCookieの設定
type Session struct {
	Secret     string        `env:"SECRET"`
	CookieName string        `env:"NAME" envDefault:"bookstore_session"`
	TTL        time.Duration `env:"TTL" envDefault:"24h"`
}

func (c Config) IsProduction() bool {
	return c.GoEnv == "production"
}

func (c Config) Addr() string {
	return c.HTTP.Host + ":" + strings.TrimPrefix(c.HTTP.Port, ":")
}

// .envがあれば読み込んでから環境変数をパースする
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// 環境変数だけから組み立てる（テストではこちら）
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	//必須チェック
	if cfg.Session.Secret == "" {
		if cfg.IsProduction() {
			return Config{}, fmt.Errorf("SESSION_SECRET is required")
		}
		cfg.Session.Secret = "dev_secret_change_me"
	}
	switch cfg.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return Config{}, fmt.Errorf("DB_DRIVER must be postgres, mysql or sqlite: %q", cfg.Database.Driver)
	}
	if cfg.CatalogPageSize < 1 {
		return Config{}, fmt.Errorf("CATALOG_PAGE_SIZE must be >= 1")
	}
	if cfg.Session.TTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive")
	}

	return cfg, nil
}
