// Package testutil holds helpers shared by repository and HTTP tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/guipadovan/library-manager/internals/configs"
	database "github.com/guipadovan/library-manager/internals/databases"
)

// NewTestDB returns a migrated, isolated in-memory sqlite database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := database.Open(configs.DriverSQLite, dsn)
	require.NoError(t, err)
	db.Logger = db.Logger.LogMode(gormLogger.Silent)

	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { database.Close(db) })
	return db
}
