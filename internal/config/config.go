package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type ServiceConfig struct {
	Env        string `yaml:"env" env:"BCS_ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	GRPCServer `yaml:"grpc_server"`
	DB         `yaml:"db"`
	Redis      `yaml:"redis"`
	Kafka      `yaml:"kafka"`
	Auth       `yaml:"auth"`
	RateLimit  `yaml:"rate_limit"`
	LogConfig  `yaml:"log_config"`
}

type HTTPServer struct {
	Host         string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port         string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"15s"`
}

type GRPCServer struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"9090"`
}

type DB struct {
	Dsn            string `yaml:"dsn" env:"DB_DSN" env-required:"true"`
	MigrationsPath string `yaml:"migrations_path" env:"DB_MIGRATIONS_PATH"`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Kafka struct {
	Brokers      []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	OrderTopic   string   `yaml:"order_topic" env-default:"order-events"`
	ContentTopic string   `yaml:"content_topic" env-default:"content-events"`
}

func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

type Auth struct {
	JWTSecret  string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	TokenTTL   time.Duration `yaml:"token_ttl" env-default:"720h"`
	IPHashSalt string        `yaml:"ip_hash_salt" env:"AUTH_IP_HASH_SALT"`
}

type RateLimit struct {
	// Backend is "memory" for a single instance or "redis" to share counters.
	Backend      string        `yaml:"backend" env:"RATE_LIMIT_BACKEND" env-default:"memory"`
	Window       time.Duration `yaml:"window" env-default:"60s"`
	CacheSize    int           `yaml:"cache_size" env-default:"1000"`
	CommentLimit int           `yaml:"comment_limit" env-default:"5"`
	MediaLimit   int           `yaml:"media_limit" env-default:"30"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"text"`
}

func MustLoad() *ServiceConfig {
	configPath := os.Getenv("BCS_CONFIG_PATH")
	if configPath == "" {
		log.Fatalf("BCS_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg ServiceConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
