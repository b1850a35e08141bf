package config

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	LogLevel   string
	ServerAddr string

	PostgresConn  string // DSN в формате lib/pq
	RunMigrations bool   // применять ли миграции при старте

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// New читает конфигурацию из флагов командной строки с фолбэком на переменные окружения
func New() (*Config, error) {
	return Load(flag.CommandLine, os.Args[1:])
}

func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	c := &Config{}

	fs.StringVar(&c.LogLevel, "logLevel", LookupEnvString("LOG_LEVEL", "info"), "Set log level: debug, info, warning, error.")
	fs.StringVar(&c.ServerAddr, "serverAddr", LookupEnvString("SERVER_ADDRESS", "0.0.0.0:8080"), `Address in form of "[host]:port" that HTTP server should be listening on.`)

	fs.StringVar(&c.PostgresConn, "postgresConn", LookupEnvString("POSTGRES_CONN", ""), "PostgreSQL connection string.")
	fs.BoolVar(&c.RunMigrations, "runMigrations", LookupEnvBool("RUN_MIGRATIONS", true), "Apply database migrations on startup.")

	fs.DurationVar(&c.ReadTimeout, "readTimeout", LookupEnvDuration("READ_TIMEOUT", 5*time.Second), "HTTP server read timeout.")
	fs.DurationVar(&c.WriteTimeout, "writeTimeout", LookupEnvDuration("WRITE_TIMEOUT", 10*time.Second), "HTTP server write timeout.")
	fs.DurationVar(&c.ShutdownTimeout, "shutdownTimeout", LookupEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second), "Graceful shutdown timeout.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return c, c.Validate()
}

func (c *Config) Validate() error {
	if c.PostgresConn == "" {
		return errors.New("POSTGRES_CONN env variable is not set")
	}
	if c.ServerAddr == "" {
		return errors.New("server address is empty")
	}
	return nil
}

func LookupEnvString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func LookupEnvBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func LookupEnvDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
