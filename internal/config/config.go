package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

// Config holds all configuration values. Values come from the environment;
// cmd/api loads a .env file first through godotenv/autoload.
type Config struct {
	Port int

	LogFile  string
	LogLevel slog.Level

	// Persistence
	NegotiationStore        string
	NegotiationsTable       string
	GovernancePaymentsTable string

	// MySQL holds the external catalog (leads, products) and user directory.
	MySQLUser     string
	MySQLPassword string
	MySQLHost     string
	MySQLDatabase string

	// Governance fee charged to each party before identities unlock.
	GovernanceFee         decimal.Decimal
	GovernanceFeeCurrency string

	CollaboratorTimeout time.Duration
	SaveMaxAttempts     int
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Port: getenvInt("PORT", 8080),

		LogFile:  getenvDefault("LOG_FILE", "/tmp/blind-negotiation.log"),
		LogLevel: parseLogLevel(getenvDefault("LOG_LEVEL", "INFO")),

		NegotiationStore:        strings.ToLower(getenvDefault("NEGOTIATION_STORE", StoreDynamoDB)),
		NegotiationsTable:       getenvDefault("NEGOTIATIONS_TABLE", "negotiations"),
		GovernancePaymentsTable: getenvDefault("GOVERNANCE_PAYMENTS_TABLE", "governance_payments"),

		MySQLUser:     getenvDefault("MYSQL_USER", "user"),
		MySQLPassword: getenvDefault("MYSQL_PWD", "password"),
		MySQLHost:     getenvDefault("MYSQL_HOST", "tcp(127.0.0.1:3306)"),
		MySQLDatabase: getenvDefault("MYSQL_DATABASE", "marketplace"),

		GovernanceFee:         getenvDecimal("GOVERNANCE_FEE", decimal.NewFromInt(25)),
		GovernanceFeeCurrency: getenvDefault("GOVERNANCE_FEE_CURRENCY", "INR"),

		CollaboratorTimeout: getenvDuration("COLLABORATOR_TIMEOUT", 5*time.Second),
		SaveMaxAttempts:     getenvInt("SAVE_MAX_ATTEMPTS", 3),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(getenvDefault(key, ""))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(getenvDefault(key, ""))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getenvDecimal(key string, def decimal.Decimal) decimal.Decimal {
	v, err := decimal.NewFromString(getenvDefault(key, ""))
	if err != nil || v.IsNegative() {
		return def
	}
	return v
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
