// file: internals/features/library/books/repository/book_repository.go
package repository

import (
	"context"
	"errors"

	model "github.com/guipadovan/library-manager/internals/features/library/books/model"

	"gorm.io/gorm"
)

type BookRepository struct {
	DB *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{DB: db}
}

// FindByID returns (nil, nil) when the book does not exist.
func (r *BookRepository) FindByID(ctx context.Context, id int64) (*model.BookModel, error) {
	var m model.BookModel
	err := r.DB.WithContext(ctx).First(&m, "books_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *BookRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.BookModel{}).Where("books_isbn = ?", isbn).Count(&n).Error
	return n > 0, err
}

// Save inserts when BooksID is zero, otherwise replaces the row.
func (r *BookRepository) Save(ctx context.Context, m *model.BookModel) error {
	return r.DB.WithContext(ctx).Save(m).Error
}

// DeleteByID removes the book and its leases in one transaction.
func (r *BookRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	var affected int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM leases WHERE leases_book_id = ?`, id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.BookModel{}, "books_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

func (r *BookRepository) List(ctx context.Context, offset, limit int) ([]model.BookModel, int64, error) {
	var (
		rows  []model.BookModel
		total int64
	)
	q := r.DB.WithContext(ctx).Model(&model.BookModel{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("books_id ASC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// FindRecommendations picks up to limit books whose category is in categories,
// whose id is not excluded, and that have no ACTIVE lease; random order, title tie-break.
func (r *BookRepository) FindRecommendations(ctx context.Context, categories []string, excluded []int64, limit int) ([]model.BookModel, error) {
	rows := []model.BookModel{}
	if len(categories) == 0 || limit <= 0 {
		return rows, nil
	}

	q := r.DB.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("books_category IN ?", categories).
		Where(`NOT EXISTS (
			SELECT 1 FROM leases l
			WHERE l.leases_book_id = books.books_id AND l.leases_status = 'ACTIVE'
		)`)
	// NOT IN with an empty list renders as NOT IN (NULL) and matches nothing
	if len(excluded) > 0 {
		q = q.Where("books_id NOT IN ?", excluded)
	}

	err := q.Order("RANDOM()").Order("books_title ASC").Limit(limit).Find(&rows).Error
	return rows, err
}
