package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server    ServerConfig
	Panel     PanelConfig
	Steam     SteamConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Sync      SyncConfig
	Lifecycle LifecycleConfig
}

type ServerConfig struct {
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type PanelConfig struct {
	BaseURI        string        `envconfig:"PANEL_BASE_URI" required:"true"`
	APIKey         string        `envconfig:"PANEL_API_KEY" required:"true"`
	ClientAPIKey   string        `envconfig:"PANEL_CLIENT_API_KEY" required:"true"`
	OwnerUsername  string        `envconfig:"PANEL_OWNER_USERNAME" required:"true"`
	RequestTimeout time.Duration `envconfig:"PANEL_REQUEST_TIMEOUT" default:"30s"`
}

type SteamConfig struct {
	BaseURI string `envconfig:"STEAM_BASE_URI" default:"https://api.steampowered.com"`
	APIKey  string `envconfig:"STEAM_API_KEY" required:"true"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" required:"true"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DB" required:"true"`
}

type RedisConfig struct {
	Host string `envconfig:"REDIS_HOST" required:"true"`
	Port int    `envconfig:"REDIS_PORT" required:"true"`
}

type KafkaConfig struct {
	Brokers       []string `envconfig:"KAFKA_BROKERS" required:"true"`
	ActivityTopic string   `envconfig:"KAFKA_ACTIVITY_TOPIC" default:"panel-server-activities"`
}

type SyncConfig struct {
	CronSpec string `envconfig:"SYNC_CRON_SPEC" default:"@every 10m"`
}

type LifecycleConfig struct {
	PowerWaitAttempts int           `envconfig:"POWER_WAIT_ATTEMPTS" default:"24"`
	PowerWaitInterval time.Duration `envconfig:"POWER_WAIT_INTERVAL" default:"10s"`
	LockTTL           time.Duration `envconfig:"SERVER_LOCK_TTL" default:"5m"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
