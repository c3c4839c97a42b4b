package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a pgx connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Kafka stores order intake stream settings. Empty brokers disable the intake
// worker.
type Kafka struct {
	Brokers []string
	GroupID string
	Topic   string
}

// Dispatch stores dispatch engine settings.
type Dispatch struct {
	OperationTimeout time.Duration
}

// Config stores courier dispatch service settings.
type Config struct {
	Port     int
	DB       DB
	Kafka    Kafka
	Dispatch Dispatch
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	port := DefaultPort()
	db := DefaultDB()
	kafka := DefaultKafka()
	dispatch := DefaultDispatch()

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}

	if v := os.Getenv("POSTGRES_HOST"); v != "" {
		db.Host = v
	}
	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		db.Port = v
	}
	if v := os.Getenv("POSTGRES_USER"); v != "" {
		db.User = v
	}
	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		db.Pass = v
	}
	if v := os.Getenv("POSTGRES_DB"); v != "" {
		db.Name = v
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		kafka.Brokers = splitList(v)
	}
	if v := os.Getenv("KAFKA_GROUP_ID"); v != "" {
		kafka.GroupID = v
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		kafka.Topic = v
	}

	if v := os.Getenv("DISPATCH_OPERATION_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DISPATCH_OPERATION_TIMEOUT: %w", err)
		}
		dispatch.OperationTimeout = d
	}

	pflag.IntVarP(&port, "port", "p", port, "port to listen on")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", port)
	}
	if _, err := strconv.Atoi(db.Port); err != nil {
		return nil, fmt.Errorf("invalid POSTGRES_PORT: %q", db.Port)
	}
	if dispatch.OperationTimeout <= 0 {
		return nil, fmt.Errorf("invalid dispatch operation timeout: %s", dispatch.OperationTimeout)
	}

	return &Config{
		Port:     port,
		DB:       db,
		Kafka:    kafka,
		Dispatch: dispatch,
	}, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
