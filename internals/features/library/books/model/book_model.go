// file: internals/features/library/books/model/book_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

type BookModel struct {
	// PK
	BooksID int64 `json:"books_id" gorm:"column:books_id;primaryKey;autoIncrement"`

	BooksTitle           string         `json:"books_title"            gorm:"column:books_title;type:varchar(255);not null"`
	BooksAuthor          string         `json:"books_author"           gorm:"column:books_author;type:varchar(255);not null"`
	BooksISBN            string         `json:"books_isbn"             gorm:"column:books_isbn;type:varchar(13);not null;index:idx_books_isbn"`
	BooksPublicationDate datatypes.Date `json:"books_publication_date" gorm:"column:books_publication_date;not null"`
	BooksCategory        string         `json:"books_category"         gorm:"column:books_category;type:varchar(120);not null;index:idx_books_category"`

	BooksCreatedAt time.Time `json:"books_created_at" gorm:"column:books_created_at;not null;autoCreateTime"`
	BooksUpdatedAt time.Time `json:"books_updated_at" gorm:"column:books_updated_at;not null;autoUpdateTime"`
}

func (BookModel) TableName() string { return "books" }
