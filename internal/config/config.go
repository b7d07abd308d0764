package config

import (
	"fmt"
	"os"
)

type Config struct {
	ServerPort string

	DataBucket         string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	S3Endpoint         string

	RedisURL    string
	EventsTopic string

	JWTSecret string
}

func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DataBucket:         getEnv("DATA_BUCKET", "salon-fryzjerski-data"),
		AWSRegion:          getEnv("AWS_REGION", "eu-central-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		S3Endpoint:         getEnv("S3_ENDPOINT", ""),

		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
		EventsTopic: getEnv("EVENTS_TOPIC", "salon-events"),

		JWTSecret: getEnv("JWT_SECRET", "changeme"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
