// file: internals/features/library/leases/model/lease_model.go
package model

import (
	"strings"
	"time"

	bookModel "github.com/guipadovan/library-manager/internals/features/library/books/model"
	userModel "github.com/guipadovan/library-manager/internals/features/library/users/model"

	"gorm.io/datatypes"
)

type LeaseStatus string

const (
	LeaseStatusActive   LeaseStatus = "ACTIVE"
	LeaseStatusReturned LeaseStatus = "RETURNED"
)

// ParseLeaseStatus accepts any casing; ok is false for unknown values.
func ParseLeaseStatus(s string) (LeaseStatus, bool) {
	switch LeaseStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case LeaseStatusActive:
		return LeaseStatusActive, true
	case LeaseStatusReturned:
		return LeaseStatusReturned, true
	}
	return "", false
}

// At most one ACTIVE lease per book is enforced by the partial unique index
// uq_leases_active_book (see databases.Migrate).
type LeaseModel struct {
	LeasesID int64 `json:"leases_id" gorm:"column:leases_id;primaryKey;autoIncrement"`

	// FKs
	LeasesUserID int64 `json:"leases_user_id" gorm:"column:leases_user_id;not null;index:idx_leases_user"`
	LeasesBookID int64 `json:"leases_book_id" gorm:"column:leases_book_id;not null;index:idx_leases_book"`

	LeasesLeaseDate  datatypes.Date `json:"leases_lease_date"  gorm:"column:leases_lease_date;not null"`
	LeasesReturnDate datatypes.Date `json:"leases_return_date" gorm:"column:leases_return_date;not null"`
	LeasesStatus     LeaseStatus    `json:"leases_status"      gorm:"column:leases_status;type:varchar(16);not null;default:'ACTIVE';index:idx_leases_status"`

	LeasesCreatedAt time.Time `json:"leases_created_at" gorm:"column:leases_created_at;not null;autoCreateTime"`
	LeasesUpdatedAt time.Time `json:"leases_updated_at" gorm:"column:leases_updated_at;not null;autoUpdateTime"`

	User *userModel.UserModel `json:"-" gorm:"foreignKey:LeasesUserID;references:UsersID;constraint:OnDelete:CASCADE"`
	Book *bookModel.BookModel `json:"-" gorm:"foreignKey:LeasesBookID;references:BooksID;constraint:OnDelete:CASCADE"`
}

func (LeaseModel) TableName() string { return "leases" }

func (m *LeaseModel) IsActive() bool { return m.LeasesStatus == LeaseStatusActive }
