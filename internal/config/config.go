package config

import "os"

type Config struct {
	DatabaseURL    string
	RedisURL       string
	KafkaBrokers   string
	KafkaTopic     string
	JaegerEndpoint string
	Port           string
}

func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8084"
	}

	kafkaTopic := os.Getenv("KAFKA_TOPIC")
	if kafkaTopic == "" {
		kafkaTopic = "order.events"
	}

	return &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisURL:       os.Getenv("REDIS_URL"),
		KafkaBrokers:   os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:     kafkaTopic,
		JaegerEndpoint: os.Getenv("JAEGER_ENDPOINT"),
		Port:           port,
	}
}
