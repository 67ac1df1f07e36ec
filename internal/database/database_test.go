package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/speechmastery/coach-api/pkg/config"
)

func memoryConfig() config.DatabaseConfig {
	return config.DatabaseConfig{Path: ":memory:"}
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.DatabaseConfig
		wantErr bool
	}{
		{
			name: "in-memory database",
			cfg:  memoryConfig(),
		},
		{
			name: "file database",
			cfg:  config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.db")},
		},
		{
			name:    "empty path",
			cfg:     config.DatabaseConfig{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Initialize(tt.cfg)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, conn)
			assert.NotNil(t, conn.DB)

			if conn != nil {
				conn.Close()
			}
		})
	}
}

func TestInitializePoolSettings(t *testing.T) {
	conn, err := Initialize(config.DatabaseConfig{
		Path:                  filepath.Join(t.TempDir(), "pool.db"),
		MaxConnections:        7,
		MaxIdleConnections:    3,
		ConnectionMaxLifetime: 10 * time.Minute,
	})
	require.NoError(t, err)
	defer conn.Close()

	sqlDB, err := conn.DB.DB()
	require.NoError(t, err)
	assert.Equal(t, 7, sqlDB.Stats().MaxOpenConnections)
}

func TestInitializeMemoryUsesSingleConnection(t *testing.T) {
	// Pool limits in the config must not apply to ":memory:", where each
	// connection would open a separate empty database
	conn, err := Initialize(config.DatabaseConfig{
		Path:           ":memory:",
		MaxConnections: 50,
	})
	require.NoError(t, err)
	defer conn.Close()

	sqlDB, err := conn.DB.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestDBClose(t *testing.T) {
	conn, err := Initialize(memoryConfig())
	require.NoError(t, err)

	assert.NoError(t, conn.Close())

	err = conn.HealthCheck()
	assert.Error(t, err, "HealthCheck should fail after database is closed")
}

func TestDBHealthCheck(t *testing.T) {
	conn, err := Initialize(memoryConfig())
	require.NoError(t, err)
	defer conn.Close()

	assert.NoError(t, conn.HealthCheck())
}

func TestDBAutoMigrate(t *testing.T) {
	type TestModel struct {
		gorm.Model
		Name string
	}

	conn, err := Initialize(memoryConfig())
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.AutoMigrate(&TestModel{}))

	var count int64
	err = conn.DB.Raw("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='test_models'").Scan(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Migration with no models is a no-op
	assert.NoError(t, conn.AutoMigrate())
}

func TestDBStoresTimesInUTC(t *testing.T) {
	type Stamp struct {
		gorm.Model
		Label string
	}

	conn, err := Initialize(memoryConfig())
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.AutoMigrate(&Stamp{}))

	stamp := Stamp{Label: "now"}
	require.NoError(t, conn.DB.Create(&stamp).Error)

	var stored Stamp
	require.NoError(t, conn.DB.First(&stored, stamp.ID).Error)
	assert.Equal(t, "UTC", stored.CreatedAt.Location().String())
}
