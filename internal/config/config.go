package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"

	// DefaultMySQLParams pins both the session time zone and the driver's
	// DATETIME location to UTC. Stored timestamps are UTC and converted to
	// STATS_TIMEZONE only when bucketed into days.
	DefaultMySQLParams = "parseTime=true&loc=UTC&time_zone=%27%2B00%3A00%27&multiStatements=true"
)

type Config struct {
	AppPort        string
	DbDriver       string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	TrustedProxies []string
	StatsLocation  *time.Location
	WeekStart      time.Weekday
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	driver := strings.ToLower(getEnv("DB_DRIVER", DriverMySQL))
	if driver != DriverPostgres {
		driver = DriverMySQL
	}

	cfg := &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		DbDriver:       driver,
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		StatsLocation:  parseLocation(getEnv("STATS_TIMEZONE", "Local")),
		WeekStart:      parseWeekStart(getEnv("STATS_WEEK_START", "monday")),
	}

	if driver == DriverPostgres {
		cfg.DbHost = getEnv("POSTGRES_HOST", "db")
		cfg.DbPort = getEnv("POSTGRES_PORT", "5432")
		cfg.DbUser = getEnv("POSTGRES_USER", "taskstats")
		cfg.DbPassword = getEnv("POSTGRES_PASSWORD", "taskstats")
		cfg.DbName = getEnv("POSTGRES_DB", "taskstats")
		cfg.DbParams = getEnv("POSTGRES_PARAMS", "sslmode=disable")
		return cfg
	}

	cfg.DbHost = getEnv("MYSQL_HOST", "db")
	cfg.DbPort = getEnv("MYSQL_PORT", "3306")
	cfg.DbUser = getEnv("MYSQL_USER", "taskstats")
	cfg.DbPassword = getEnv("MYSQL_PASSWORD", "taskstats")
	cfg.DbName = getEnv("MYSQL_DATABASE", "taskstats")
	cfg.DbParams = getEnv("MYSQL_PARAMS", DefaultMySQLParams)
	return cfg
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}

func parseLocation(name string) *time.Location {
	loc, err := time.LoadLocation(strings.TrimSpace(name))
	if err != nil {
		zap.L().Warn("unknown STATS_TIMEZONE, using local time", zap.String("timezone", name), zap.Error(err))
		return time.Local
	}
	return loc
}

func parseWeekStart(value string) time.Weekday {
	if strings.EqualFold(strings.TrimSpace(value), "sunday") {
		return time.Sunday
	}
	return time.Monday
}
