package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"wordthink/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDBConfig(retries int) config.DatabaseConfig {
	return config.DatabaseConfig{
		MaxOpenConns:   2,
		MaxIdleConns:   1,
		ConnectRetries: retries,
		RetryDelay:     time.Millisecond,
	}
}

func TestConnect_RetriesUntilPingSucceeds(t *testing.T) {
	dsn := "connect_retry"
	mockDB, mock, err := sqlmock.NewWithDSN(dsn, sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectPing().WillReturnError(errors.New("dns blip"))
	mock.ExpectPing()

	db, err := connect(context.Background(), "sqlmock", dsn, testDBConfig(3))
	require.NoError(t, err)
	require.NotNil(t, db)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnect_GivesUpAfterRetries(t *testing.T) {
	dsn := "connect_give_up"
	mockDB, mock, err := sqlmock.NewWithDSN(dsn, sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectPing().WillReturnError(errors.New("down"))
	mock.ExpectPing().WillReturnError(errors.New("down"))

	db, err := connect(context.Background(), "sqlmock", dsn, testDBConfig(2))
	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "after 2 attempts")
}
