package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/mentor-match-api/pkg/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:     "db.internal",
		Port:     6543,
		User:     "mentor",
		Password: "secret",
		Name:     "mentor_match",
		SSLMode:  "require",
	})
	assert.Equal(t, "host=db.internal port=6543 user=mentor password=secret dbname=mentor_match sslmode=require", dsn)
}
