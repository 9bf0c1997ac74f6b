package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/itech-net/student-portal-api/pkg/config"
)

func TestDSNMySQL(t *testing.T) {
	driver, dsn := DSN(config.DatabaseConfig{
		Driver:       config.DriverMySQL,
		Host:         "db.internal",
		Port:         3306,
		User:         "portal",
		Password:     "secret",
		Name:         "studentapp",
		QueryTimeout: 5 * time.Second,
	})

	assert.Equal(t, "mysql", driver)
	assert.Contains(t, dsn, "portal:secret@tcp(db.internal:3306)/studentapp")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "readTimeout=5s")
	assert.Contains(t, dsn, "clientFoundRows=true")
}

func TestDSNPostgres(t *testing.T) {
	driver, dsn := DSN(config.DatabaseConfig{
		Driver:   config.DriverPostgres,
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "postgres",
		Name:     "studentapp",
		SSLMode:  "disable",
	})

	assert.Equal(t, "postgres", driver)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=studentapp sslmode=disable", dsn)
}
