package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI string
	DBName   string

	GRPCPort string
	HTTPPort string

	UserServiceHost string
	UserServicePort string

	KafkaBrokers []string
	KafkaTopic   string

	RedisURLs []string
	RedisPass string

	ResolverCacheTTL time.Duration

	CORSAllowedOrigins []string

	JaegerOTLPEndpoint string
}

func Load() *Config {
	godotenv.Load()

	corsOrigins := strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}

	return &Config{
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:   getEnv("DB_NAME", "groupuser"),

		GRPCPort: getEnv("GRPC_PORT", "50058"),
		HTTPPort: getEnv("HTTP_PORT", "8099"),

		UserServiceHost: getEnv("USER_SERVICE_HOST", "localhost"),
		UserServicePort: getEnv("USER_SERVICE_PORT", "50055"),

		KafkaBrokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "groupuser-events"),

		RedisURLs: strings.Split(getEnv("REDIS_URL", "localhost:6379"), ","),
		RedisPass: getEnv("REDIS_PASS", ""),

		ResolverCacheTTL: getEnvDuration("RESOLVER_CACHE_TTL", 5*time.Minute),

		CORSAllowedOrigins: corsOrigins,

		JaegerOTLPEndpoint: getEnv("JAEGER_OTLP_ENDPOINT", "localhost:4317"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
