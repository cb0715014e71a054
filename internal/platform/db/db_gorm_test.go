package db

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/domain/entity"
)

func TestResolveDSN(t *testing.T) {
	environ := map[string]string{
		"DATABASE_URL_DEV": "postgres://dev",
		"DATABASE_URL_QC":  "postgres://qc",
	}
	getenv := func(key string) string { return environ[key] }

	tests := []struct {
		name    string
		env     string
		getenv  func(string) string
		want    string
		wantErr bool
	}{
		{name: "dev selects DATABASE_URL_DEV", env: "dev", getenv: getenv, want: "postgres://dev"},
		{name: "qc selects DATABASE_URL_QC", env: "qc", getenv: getenv, want: "postgres://qc"},
		{name: "unknown environment", env: "prod", getenv: getenv, wantErr: true},
		{name: "variable not set", env: "dev", getenv: func(string) string { return "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDSN(tt.env, tt.getenv)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConnectWithRetry(t *testing.T) {
	t.Run("first attempt succeeds", func(t *testing.T) {
		want := &gorm.DB{}
		attempts := 0
		open := func(dsn string) (*gorm.DB, error) {
			attempts++
			assert.Equal(t, "postgres://dev", dsn)
			return want, nil
		}

		got, err := ConnectWithRetry("postgres://dev", connectTimeout, open)

		require.NoError(t, err)
		assert.Same(t, want, got)
		assert.Equal(t, 1, attempts)
	})

	t.Run("gives up after the deadline", func(t *testing.T) {
		open := func(dsn string) (*gorm.DB, error) {
			return nil, errors.New("connection refused")
		}

		_, err := ConnectWithRetry("postgres://dev", 0, open)

		require.Error(t, err)
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestMigrate(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(gdb))

	assert.True(t, gdb.Migrator().HasTable(&entity.User{}))
	assert.True(t, gdb.Migrator().HasTable(&entity.Post{}))
}

func TestClose(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Close(gdb))

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping(), "the pool is closed")
}
