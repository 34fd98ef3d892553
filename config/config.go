package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageGorm     = "gorm"

	ProviderWordlist = "wordlist"
	ProviderHTTP     = "http"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Postgres    PostgresConfig   `yaml:"postgres"`
	HTTP        HTTPConfig       `yaml:"http"`
	StorageType string           `yaml:"storage_type" env:"STORAGE_TYPE" env-default:"memory"`
	Moderation  ModerationConfig `yaml:"moderation"`
	Redis       RedisConfig      `yaml:"redis"`
	Kafka       KafkaConfig      `yaml:"kafka"`
	Log         LogConfig        `yaml:"log"`
	Events      EventsConfig     `yaml:"events"`
}

type PostgresConfig struct {
	User     string `yaml:"user" env:"POSTGRES_USER"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	DB       string `yaml:"db" env:"POSTGRES_DB"`
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	SSLMode  string `yaml:"sslmode" env:"POSTGRES_SSLMODE" env-default:"disable"`
	MaxConns int32  `yaml:"max_conns" env:"DB_MAX_CONNS" env-default:"10"`
}

func (pc PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(pc.User),
		url.QueryEscape(pc.Password),
		pc.Host,
		pc.Port,
		pc.DB,
		pc.SSLMode,
	)
}

type HTTPConfig struct {
	Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type ModerationConfig struct {
	Provider      string        `yaml:"provider" env:"MODERATION_PROVIDER" env-default:"wordlist"`
	URL           string        `yaml:"url" env:"MODERATION_URL"`
	Token         string        `yaml:"token" env:"MODERATION_TOKEN"`
	Timeout       time.Duration `yaml:"timeout" env:"MODERATION_TIMEOUT" env-default:"3s"`
	FailurePolicy string        `yaml:"failure_policy" env:"MODERATION_FAILURE_POLICY" env-default:"fail-closed"`
	OnUpdate      bool          `yaml:"on_update" env:"MODERATION_ON_UPDATE" env-default:"true"`
	Blocklist     []string      `yaml:"blocklist" env:"MODERATION_BLOCKLIST" env-separator:","`
	CacheTTL      time.Duration `yaml:"cache_ttl" env:"MODERATION_CACHE_TTL" env-default:"1h"`
}

type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL"`
}

type KafkaConfig struct {
	Brokers       []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	CommentsTopic string   `yaml:"comments_topic" env:"KAFKA_TOPIC_COMMENTS" env-default:"comments.events"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	JSON  bool   `yaml:"json" env:"LOG_JSON" env-default:"false"`
}

type EventsConfig struct {
	BusBuffer       int           `yaml:"bus_buffer" env:"EVENTS_BUS_BUFFER" env-default:"64"`
	StreamKeepAlive time.Duration `yaml:"stream_keepalive" env:"EVENTS_STREAM_KEEPALIVE" env-default:"15s"`
}

// LoadConfig reads the YAML file at path when one is given; environment
// variables always take precedence.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StorageType {
	case StorageMemory:
	case StoragePostgres, StorageGorm:
		if c.Postgres.User == "" || c.Postgres.DB == "" || c.Postgres.Host == "" {
			return fmt.Errorf("%w: storage %q needs POSTGRES_USER, POSTGRES_DB and POSTGRES_HOST", ErrInvalidConfig, c.StorageType)
		}
		if c.Postgres.MaxConns <= 0 {
			return fmt.Errorf("%w: DB_MAX_CONNS must be positive", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage type %q", ErrInvalidConfig, c.StorageType)
	}

	switch c.Moderation.Provider {
	case ProviderWordlist:
	case ProviderHTTP:
		if c.Moderation.URL == "" {
			return fmt.Errorf("%w: MODERATION_URL is required for the http provider", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown moderation provider %q", ErrInvalidConfig, c.Moderation.Provider)
	}

	switch c.Moderation.FailurePolicy {
	case "", "fail-closed", "fail-open":
	default:
		return fmt.Errorf("%w: unknown moderation failure policy %q", ErrInvalidConfig, c.Moderation.FailurePolicy)
	}

	if c.Moderation.Timeout <= 0 {
		return fmt.Errorf("%w: MODERATION_TIMEOUT must be positive", ErrInvalidConfig)
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.CommentsTopic == "" {
		return fmt.Errorf("%w: KAFKA_TOPIC_COMMENTS is required with KAFKA_BROKERS", ErrInvalidConfig)
	}
	return nil
}
