// file: internals/databases/migrate.go
package database

import (
	"fmt"
	"log"

	bookModel "github.com/guipadovan/library-manager/internals/features/library/books/model"
	leaseModel "github.com/guipadovan/library-manager/internals/features/library/leases/model"
	userModel "github.com/guipadovan/library-manager/internals/features/library/users/model"

	"gorm.io/gorm"
)

// Partial indexes are plain SQL; both postgres and sqlite accept this form.
var indexStatements = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_leases_active_book ON leases (leases_book_id) WHERE leases_status = 'ACTIVE'`,
	`CREATE INDEX IF NOT EXISTS idx_leases_user_lease_date ON leases (leases_user_id, leases_lease_date DESC)`,
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&bookModel.BookModel{}, &userModel.UserModel{}, &leaseModel.LeaseModel{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	for _, stmt := range indexStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	log.Println("[INFO] Migration done.")
	return nil
}
