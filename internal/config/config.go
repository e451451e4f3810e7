package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultConfigPath = "./config/local.yaml"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Storage    Storage    `yaml:"storage"`
	Database   Database   `yaml:"database"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Session    Session    `yaml:"session"`
	Scheduler  Scheduler  `yaml:"scheduler"`
}

type Storage struct {
	Driver     string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"./storage/dev.db"`
}

type Database struct {
	URL      string `yaml:"url" env:"DATABASE_URL"`
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:7878"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Session struct {
	CookieName    string        `yaml:"cookie_name" env-default:"house_session"`
	TTL           time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"720h"`
	PurgeInterval time.Duration `yaml:"purge_interval" env-default:"1m"`
	SecureCookie  bool          `yaml:"secure_cookie" env:"SESSION_SECURE_COOKIE"`
}

type Scheduler struct {
	SuggestRadiusDays int `yaml:"suggest_radius_days" env-default:"30"`
	SuggestMaxResults int `yaml:"suggest_max_results" env-default:"3"`
}

// DSN returns the postgres connection string, preferring an explicit URL.
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

func MustLoad() *Config {
	// a missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			return errors.New("storage.sqlite_path is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.Database.URL == "" && c.Database.Host == "" {
			return errors.New("no database configuration found: set database.url or database.host")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.Session.TTL <= 0 {
		return errors.New("session.ttl must be positive")
	}
	if c.Session.PurgeInterval <= 0 {
		return errors.New("session.purge_interval must be positive")
	}

	if c.Scheduler.SuggestRadiusDays < 0 {
		return errors.New("scheduler.suggest_radius_days must not be negative")
	}
	if c.Scheduler.SuggestMaxResults < 1 {
		return errors.New("scheduler.suggest_max_results must be positive")
	}

	return nil
}
