// file: internals/features/library/books/dto/book_dto.go
package dto

import (
	"strings"
	"time"

	model "github.com/guipadovan/library-manager/internals/features/library/books/model"
	helper "github.com/guipadovan/library-manager/internals/helpers"
	"github.com/guipadovan/library-manager/internals/helpers/apperror"
	"github.com/guipadovan/library-manager/internals/helpers/dbtime"

	"gorm.io/datatypes"
)

const msgPastOrPresent = "must be a date in the past or in the present"

/* =========================
   REQUEST
   ========================= */

// BookRequest is used for create and for update (full replace).
type BookRequest struct {
	Title           string `json:"title"           validate:"required,max=255"`
	Author          string `json:"author"          validate:"required,max=255"`
	ISBN            string `json:"isbn"            validate:"required,isbn_digits"`
	PublicationDate string `json:"publicationDate" validate:"required,ymd"`
	Category        string `json:"category"        validate:"required,max=120"`
}

func (r *BookRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
	r.ISBN = strings.TrimSpace(r.ISBN)
	r.PublicationDate = strings.TrimSpace(r.PublicationDate)
	r.Category = strings.TrimSpace(r.Category)
}

// Validate returns every violation at once.
func (r *BookRequest) Validate() error {
	extra := apperror.FieldErrors{}
	if d, err := dbtime.ParseDate(r.PublicationDate); err == nil && d.After(dbtime.Today()) {
		extra.Add("publicationDate", msgPastOrPresent)
	}
	return helper.ValidateStruct(r, extra)
}

// ToModel expects a validated request.
func (r *BookRequest) ToModel() *model.BookModel {
	m := &model.BookModel{}
	r.ApplyToModel(m)
	return m
}

func (r *BookRequest) ApplyToModel(m *model.BookModel) {
	pub, _ := dbtime.ParseDate(r.PublicationDate)
	m.BooksTitle = r.Title
	m.BooksAuthor = r.Author
	m.BooksISBN = r.ISBN
	m.BooksPublicationDate = datatypes.Date(pub)
	m.BooksCategory = r.Category
}

/* =========================
   RESPONSE
   ========================= */

type BookResponse struct {
	ID              int64  `json:"id,omitempty"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	PublicationDate string `json:"publicationDate"`
	Category        string `json:"category"`
}

func FromModel(m *model.BookModel) BookResponse {
	return BookResponse{
		ID:              m.BooksID,
		Title:           m.BooksTitle,
		Author:          m.BooksAuthor,
		ISBN:            m.BooksISBN,
		PublicationDate: dbtime.FormatDate(time.Time(m.BooksPublicationDate)),
		Category:        m.BooksCategory,
	}
}

func FromModels(list []model.BookModel) []BookResponse {
	out := make([]BookResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
