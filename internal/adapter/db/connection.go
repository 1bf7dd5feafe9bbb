package db

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"taskstats/internal/config"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	return sqlx.Connect(conf.DbDriver, DSN(conf))
}

// DSN builds the driver-specific connection string for conf.
func DSN(conf *config.Config) string {
	if conf.DbDriver == config.DriverPostgres {
		params := conf.DbParams
		if params == "" {
			params = "sslmode=disable"
		}
		return fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?%s",
			conf.DbUser,
			conf.DbPassword,
			conf.DbHost,
			conf.DbPort,
			conf.DbName,
			params,
		)
	}

	params := conf.DbParams
	if params == "" {
		params = config.DefaultMySQLParams
	}
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)
}
