//go:build integration
// +build integration

package tests

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	dbadapter "taskstats/internal/adapter/db"
	"taskstats/internal/config"
)

var migrationFiles = []string{
	"20240601000100_create_categories_table.up.sql",
	"20240601000200_create_projects_table.up.sql",
	"20240601000300_create_tasks_table.up.sql",
	"20240601000400_seed_demo_data.up.sql",
}

// IntegrationSuiteBase owns a throwaway MySQL schema named <db>_test.
type IntegrationSuiteBase struct {
	suite.Suite

	adminDB *sqlx.DB
	DB      *sqlx.DB
	conf    *config.Config
}

func (s *IntegrationSuiteBase) SetupSuite() {
	s.conf = &config.Config{
		DbDriver:   config.DriverMySQL,
		DbHost:     envOrDefault("MYSQL_HOST", "127.0.0.1"),
		DbPort:     envOrDefault("MYSQL_PORT", "3306"),
		DbUser:     envOrDefault("MYSQL_ROOT_USER", "root"),
		DbPassword: envOrDefault("MYSQL_ROOT_PASSWORD", "root"),
		DbName:     envOrDefault("MYSQL_TEST_DATABASE", envOrDefault("MYSQL_DATABASE", "taskstats")+"_test"),
		DbParams:   envOrDefault("MYSQL_PARAMS", config.DefaultMySQLParams),
	}

	admin := *s.conf
	admin.DbName = ""
	adminDB, err := dbadapter.ConnectDB(&admin)
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	s.adminDB = adminDB

	_, err = s.adminDB.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", s.conf.DbName))
	s.Require().NoError(err)

	s.DB, err = dbadapter.ConnectDB(s.conf)
	s.Require().NoError(err)
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
	if s.adminDB == nil {
		return
	}
	if strings.HasSuffix(s.conf.DbName, "_test") {
		_, err := s.adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.conf.DbName))
		s.Require().NoError(err)
	}
	s.Require().NoError(s.adminDB.Close())
}

// ResetDatabase recreates the schema and reloads the demo data.
func (s *IntegrationSuiteBase) ResetDatabase() {
	applyMigrations(s.T(), s.DB)
}

func applyMigrations(t *testing.T, db *sqlx.DB) {
	t.Helper()

	_, err := db.Exec(`
DROP TABLE IF EXISTS tasks;
DROP TABLE IF EXISTS projects;
DROP TABLE IF EXISTS categories;
`)
	require.NoError(t, err)

	dir := filepath.Join(projectRoot(t), "db", "migrations")
	for _, file := range migrationFiles {
		content, err := os.ReadFile(filepath.Join(dir, file))
		require.NoError(t, err, file)
		_, err = db.Exec(string(content))
		require.NoError(t, err, file)
	}
}

func projectRoot(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", ".."))
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
