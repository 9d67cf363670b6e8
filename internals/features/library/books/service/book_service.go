// file: internals/features/library/books/service/book_service.go
package service

import (
	"context"
	"log"

	dto "github.com/guipadovan/library-manager/internals/features/library/books/dto"
	model "github.com/guipadovan/library-manager/internals/features/library/books/model"
	"github.com/guipadovan/library-manager/internals/helpers/apperror"
)

type BookRepository interface {
	FindByID(ctx context.Context, id int64) (*model.BookModel, error)
	Save(ctx context.Context, m *model.BookModel) error
	DeleteByID(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]model.BookModel, int64, error)
	FindRecommendations(ctx context.Context, categories []string, excluded []int64, limit int) ([]model.BookModel, error)
}

type BookService struct {
	repo BookRepository
}

func NewBookService(repo BookRepository) *BookService {
	return &BookService{repo: repo}
}

// GetBook returns (nil, nil) when absent.
func (s *BookService) GetBook(ctx context.Context, id int64) (*model.BookModel, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BookService) ListBooks(ctx context.Context, offset, limit int) ([]model.BookModel, int64, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *BookService) CreateBook(ctx context.Context, req dto.BookRequest) (*model.BookModel, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	m := req.ToModel()
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	log.Printf("[INFO] book created id=%d isbn=%s", m.BooksID, m.BooksISBN)
	return m, nil
}

// UpdateBook replaces every mutable field of an existing book.
func (s *BookService) UpdateBook(ctx context.Context, id int64, req dto.BookRequest) (*model.BookModel, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperror.NotFound("Book", id)
	}
	req.ApplyToModel(m)
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteBook reports whether a row was removed. Leases of the book go with it.
func (s *BookService) DeleteBook(ctx context.Context, id int64) (bool, error) {
	n, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	if n > 0 {
		log.Printf("[INFO] book deleted id=%d", id)
	}
	return n > 0, nil
}

func (s *BookService) FindRecommendations(ctx context.Context, categories []string, excluded []int64, limit int) ([]model.BookModel, error) {
	return s.repo.FindRecommendations(ctx, categories, excluded, limit)
}
