package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port     string
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Auth     AuthConfig
	Leave    LeaveConfig
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Broker             string
	ConsumerGroup      string
	OutboxPollInterval time.Duration
}

type AuthConfig struct {
	JWTSecret string
	// RBACModelPath is optional; the built-in role model is used when empty.
	RBACModelPath string
}

// LeaveConfig holds leave policy data. Allotments are days per bucket.
type LeaveConfig struct {
	AnnualAllotment int
	SickAllotment   int
	OtherAllotment  int
}

// Load reads the environment. Callers load .env with godotenv before calling.
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "3000"),
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     os.Getenv("DB_PASSWORD"),
			Name:         getEnv("DB_NAME", "university_hrm"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 10),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Kafka: KafkaConfig{
			Broker:             os.Getenv("KAFKA_BROKER"),
			ConsumerGroup:      getEnv("KAFKA_CONSUMER_GROUP", "uni-hrm-leave-audit"),
			OutboxPollInterval: getEnvDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret:     os.Getenv("JWT_SECRET"),
			RBACModelPath: os.Getenv("RBAC_MODEL_PATH"),
		},
		Leave: LeaveConfig{
			AnnualAllotment: getEnvInt("LEAVE_ALLOTMENT_ANNUAL", 30),
			SickAllotment:   getEnvInt("LEAVE_ALLOTMENT_SICK", 15),
			OtherAllotment:  getEnvInt("LEAVE_ALLOTMENT_OTHER", 5),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}
