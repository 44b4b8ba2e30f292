package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Drivers de armazenamento suportados
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config reúne a configuração da aplicação
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Ledger    LedgerConfig
	Scheduler SchedulerConfig
	LogLevel  string
}

// ServerConfig contém as opções do servidor HTTP
type ServerConfig struct {
	Port               string
	BasePath           string
	GinMode            string
	CORSAllowedOrigins []string
}

// DatabaseConfig contém as opções de conexão com o banco
type DatabaseConfig struct {
	Driver          string
	URL             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int32
	MinConnections  int32
	MaxConnLifetime time.Duration
}

// LedgerConfig contém as opções do ledger de estoque
type LedgerConfig struct {
	MaxRetries int
}

// SchedulerConfig contém os horários das tarefas agendadas
type SchedulerConfig struct {
	LateShipmentCron string
}

// Load lê as variáveis de ambiente, opcionalmente a partir do arquivo informado
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("erro ao carregar arquivo de ambiente %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	maxConns, err := getenvInt("DB_MAX_CONNECTIONS", 10)
	if err != nil {
		return nil, err
	}
	minConns, err := getenvInt("DB_MIN_CONNECTIONS", 1)
	if err != nil {
		return nil, err
	}
	lifetime, err := getenvInt("DB_MAX_LIFETIME", 3600)
	if err != nil {
		return nil, err
	}
	retries, err := getenvInt("LEDGER_MAX_RETRIES", 3)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:               getenvWithDefault("APP_PORT", "8080"),
			BasePath:           getenvWithDefault("API_BASE_PATH", "/api/v1"),
			GinMode:            getenvWithDefault("GIN_MODE", "release"),
			CORSAllowedOrigins: splitList(getenvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getenvWithDefault("STORE_DRIVER", DriverPostgres)),
			URL:             os.Getenv("DATABASE_URL"),
			Host:            getenvWithDefault("DB_HOST", "localhost"),
			Port:            getenvWithDefault("DB_PORT", "5432"),
			User:            getenvWithDefault("DB_USER", "postgres"),
			Password:        getenvWithDefault("DB_PASSWORD", "postgres"),
			Name:            getenvWithDefault("DB_NAME", "bizit"),
			SSLMode:         getenvWithDefault("DB_SSL_MODE", "disable"),
			MaxConnections:  int32(maxConns),
			MinConnections:  int32(minConns),
			MaxConnLifetime: time.Duration(lifetime) * time.Second,
		},
		Ledger: LedgerConfig{
			MaxRetries: retries,
		},
		Scheduler: SchedulerConfig{
			LateShipmentCron: getenvWithDefault("LATE_SHIPMENT_CRON", "0 * * * *"),
		},
		LogLevel: getenvWithDefault("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate verifica se a configuração é utilizável
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("configuração nula")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT deve ser informado")
	}

	switch c.Database.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER inválido: %q", c.Database.Driver)
	}

	if c.Database.MaxConnections <= 0 {
		return errors.New("DB_MAX_CONNECTIONS deve ser maior que zero")
	}
	if c.Database.MinConnections < 0 || c.Database.MinConnections > c.Database.MaxConnections {
		return errors.New("DB_MIN_CONNECTIONS deve estar entre 0 e DB_MAX_CONNECTIONS")
	}

	if c.Ledger.MaxRetries <= 0 {
		return errors.New("LEDGER_MAX_RETRIES deve ser maior que zero")
	}

	if c.Scheduler.LateShipmentCron == "" {
		return errors.New("LATE_SHIPMENT_CRON deve ser informado")
	}

	return nil
}

// ConnectionString monta a URL de conexão do PostgreSQL
func (d DatabaseConfig) ConnectionString() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s deve ser um número inteiro: %w", key, err)
	}
	return n, nil
}

func splitList(value string) []string {
	var list []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	return list
}
