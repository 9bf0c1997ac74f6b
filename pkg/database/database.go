package database

import (
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/itech-net/student-portal-api/pkg/config"
)

// New returns a configured client for the legacy MySQL store or PostgreSQL.
func New(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	driver, dsn := DSN(cfg)

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	db.SetConnMaxLifetime(1 * time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// DSN builds the driver name and connection string for cfg.
func DSN(cfg config.DatabaseConfig) (string, string) {
	if cfg.Driver == config.DriverPostgres {
		return "postgres", fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host,
			cfg.Port,
			cfg.User,
			cfg.Password,
			cfg.Name,
			cfg.SSLMode,
		)
	}

	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mc.DBName = cfg.Name
	mc.ParseTime = true
	mc.Loc = time.Local
	// RowsAffected counts matched rows, so re-saving an unchanged profile is not a miss.
	mc.ClientFoundRows = true
	if cfg.QueryTimeout > 0 {
		mc.ReadTimeout = cfg.QueryTimeout
		mc.WriteTimeout = cfg.QueryTimeout
	}
	return "mysql", mc.FormatDSN()
}
