// file: internals/features/library/leases/repository/lease_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	bookModel "github.com/guipadovan/library-manager/internals/features/library/books/model"
	model "github.com/guipadovan/library-manager/internals/features/library/leases/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Store is what the lease service needs from persistence.
// WithinTx hands fn a Store bound to a single transaction.
type Store interface {
	WithinTx(ctx context.Context, fn func(tx Store) error) error

	UserExists(ctx context.Context, userID int64) (bool, error)
	BookExists(ctx context.Context, bookID int64) (bool, error)
	HasActiveLease(ctx context.Context, bookID int64) (bool, error)
	FindActiveByBook(ctx context.Context, bookID int64) (*model.LeaseModel, error)

	Create(ctx context.Context, m *model.LeaseModel) error
	MarkReturned(ctx context.Context, leaseID int64, returnDate time.Time) (int64, error)

	FindByID(ctx context.Context, id int64) (*model.LeaseModel, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context, status model.LeaseStatus, offset, limit int) ([]model.LeaseModel, int64, error)
	LeasedBooksByUser(ctx context.Context, userID int64) ([]bookModel.BookModel, error)
}

type LeaseRepository struct {
	DB *gorm.DB
}

var _ Store = (*LeaseRepository)(nil)

func NewLeaseRepository(db *gorm.DB) *LeaseRepository {
	return &LeaseRepository{DB: db}
}

func (r *LeaseRepository) WithinTx(ctx context.Context, fn func(tx Store) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&LeaseRepository{DB: tx})
	})
}

func (r *LeaseRepository) exists(ctx context.Context, table, where string, args ...any) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Table(table).Where(where, args...).Count(&n).Error
	return n > 0, err
}

func (r *LeaseRepository) UserExists(ctx context.Context, userID int64) (bool, error) {
	return r.exists(ctx, "users", "users_id = ?", userID)
}

func (r *LeaseRepository) BookExists(ctx context.Context, bookID int64) (bool, error) {
	return r.exists(ctx, "books", "books_id = ?", bookID)
}

func (r *LeaseRepository) HasActiveLease(ctx context.Context, bookID int64) (bool, error) {
	return r.exists(ctx, "leases", "leases_book_id = ? AND leases_status = ?", bookID, model.LeaseStatusActive)
}

// FindActiveByBook returns (nil, nil) when the book has no ACTIVE lease.
func (r *LeaseRepository) FindActiveByBook(ctx context.Context, bookID int64) (*model.LeaseModel, error) {
	var m model.LeaseModel
	err := r.DB.WithContext(ctx).
		Where("leases_book_id = ? AND leases_status = ?", bookID, model.LeaseStatusActive).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *LeaseRepository) Create(ctx context.Context, m *model.LeaseModel) error {
	return r.DB.WithContext(ctx).Omit("User", "Book").Create(m).Error
}

// MarkReturned flips ACTIVE → RETURNED. Zero rows means the lease was not ACTIVE anymore.
func (r *LeaseRepository) MarkReturned(ctx context.Context, leaseID int64, returnDate time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).
		Model(&model.LeaseModel{}).
		Where("leases_id = ? AND leases_status = ?", leaseID, model.LeaseStatusActive).
		Updates(map[string]any{
			"leases_status":      model.LeaseStatusReturned,
			"leases_return_date": datatypes.Date(returnDate),
			"leases_updated_at":  time.Now(),
		})
	return res.RowsAffected, res.Error
}

// FindByID returns (nil, nil) when absent.
func (r *LeaseRepository) FindByID(ctx context.Context, id int64) (*model.LeaseModel, error) {
	var m model.LeaseModel
	err := r.DB.WithContext(ctx).First(&m, "leases_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *LeaseRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&model.LeaseModel{}, "leases_id = ?", id)
	return res.RowsAffected, res.Error
}

// List pages through leases, newest first. Empty status means any status.
func (r *LeaseRepository) List(ctx context.Context, status model.LeaseStatus, offset, limit int) ([]model.LeaseModel, int64, error) {
	var (
		rows  []model.LeaseModel
		total int64
	)
	q := r.DB.WithContext(ctx).Model(&model.LeaseModel{})
	if status != "" {
		q = q.Where("leases_status = ?", status)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("leases_lease_date DESC").Order("leases_id DESC").
		Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// LeasedBooksByUser lists every book the user ever leased, most recent lease first.
// A book leased twice appears twice.
func (r *LeaseRepository) LeasedBooksByUser(ctx context.Context, userID int64) ([]bookModel.BookModel, error) {
	rows := []bookModel.BookModel{}
	err := r.DB.WithContext(ctx).Raw(`
		SELECT b.*
		FROM leases l
		JOIN books b ON b.books_id = l.leases_book_id
		WHERE l.leases_user_id = ?
		ORDER BY l.leases_lease_date DESC, l.leases_id DESC
	`, userID).Scan(&rows).Error
	return rows, err
}
