package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/questdb"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/redis"
)

// Config represents the application configuration.
type Config struct {
	App      AppConfig      `envPrefix:"APP_"`
	QuestDB  questdb.Config `envPrefix:"QUESTDB_"`
	Redis    redis.Config   `envPrefix:"REDIS_"`
	BarKafka BarKafkaConfig `envPrefix:"BAR_KAFKA_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"bar-engine"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Market      string `env:"MARKET" envDefault:"CFFEX"`
}

// BarKafkaConfig represents the Kafka configuration for the live bar topic.
type BarKafkaConfig struct {
	Brokers       []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic         string   `env:"TOPIC" envDefault:"bars"`
	ConsumerGroup string   `env:"CONSUMER_GROUP" envDefault:"bar-engine"`
	MaxRetries    int      `env:"MAX_RETRIES" envDefault:"3"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
