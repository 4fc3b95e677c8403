package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"innkeeper/internal/record"
)

func setupMigratorDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func tableCount(t *testing.T, db *gorm.DB, name string) int64 {
	var count int64
	err := db.Raw(
		"SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?", name,
	).Scan(&count).Error
	require.NoError(t, err)
	return count
}

func TestMigratorUp(t *testing.T) {
	db := setupMigratorDB(t)
	migrator := record.NewMigrator(db)

	require.NoError(t, migrator.Up())

	assert.Equal(t, int64(1), tableCount(t, db, "records"))
	assert.Equal(t, int64(1), tableCount(t, db, "record_tags"))

	applied, err := migrator.AppliedVersions()
	require.NoError(t, err)
	assert.True(t, applied["20240101000001"])
}

func TestMigratorUpIsIdempotent(t *testing.T) {
	db := setupMigratorDB(t)
	migrator := record.NewMigrator(db)

	require.NoError(t, migrator.Up())
	require.NoError(t, migrator.Up())

	var records []record.MigrationRecord
	require.NoError(t, db.Find(&records).Error)
	assert.Len(t, records, len(record.Migrations()))
}

func TestMigratorDown(t *testing.T) {
	db := setupMigratorDB(t)
	migrator := record.NewMigrator(db)

	require.NoError(t, migrator.Up())
	require.NoError(t, migrator.Down())

	assert.Equal(t, int64(0), tableCount(t, db, "records"))
	assert.Equal(t, int64(0), tableCount(t, db, "record_tags"))

	applied, err := migrator.AppliedVersions()
	require.NoError(t, err)
	assert.False(t, applied["20240101000001"])
}
