// file: internals/features/library/recommendations/service/recommendation_service.go
package service

import (
	"context"

	bookModel "github.com/guipadovan/library-manager/internals/features/library/books/model"
	userModel "github.com/guipadovan/library-manager/internals/features/library/users/model"
	"github.com/guipadovan/library-manager/internals/helpers/apperror"
)

type UserFinder interface {
	GetUser(ctx context.Context, id int64) (*userModel.UserModel, error)
}

type LeaseHistory interface {
	GetLeasedBooksByUser(ctx context.Context, userID int64) ([]bookModel.BookModel, error)
}

type BookFinder interface {
	FindRecommendations(ctx context.Context, categories []string, excluded []int64, limit int) ([]bookModel.BookModel, error)
}

type RecommendationService struct {
	users  UserFinder
	leases LeaseHistory
	books  BookFinder
}

func NewRecommendationService(users UserFinder, leases LeaseHistory, books BookFinder) *RecommendationService {
	return &RecommendationService{users: users, leases: leases, books: books}
}

// GetBookRecommendationsByUser suggests up to limit unleased books from the
// categories the user has read, skipping books the user already leased.
func (s *RecommendationService) GetBookRecommendationsByUser(ctx context.Context, userID int64, limit int) ([]bookModel.BookModel, error) {
	u, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperror.NotFound("User", userID)
	}

	history, err := s.leases.GetLeasedBooksByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories, excluded := categoriesAndExcluded(history)
	if len(categories) == 0 || limit <= 0 {
		return []bookModel.BookModel{}, nil
	}
	return s.books.FindRecommendations(ctx, categories, excluded, limit)
}

// categoriesAndExcluded keeps first-occurrence order and drops duplicates.
func categoriesAndExcluded(history []bookModel.BookModel) ([]string, []int64) {
	var (
		categories []string
		excluded   []int64
		seenCat    = map[string]struct{}{}
		seenID     = map[int64]struct{}{}
	)
	for _, b := range history {
		if _, ok := seenCat[b.BooksCategory]; !ok {
			seenCat[b.BooksCategory] = struct{}{}
			categories = append(categories, b.BooksCategory)
		}
		if _, ok := seenID[b.BooksID]; !ok {
			seenID[b.BooksID] = struct{}{}
			excluded = append(excluded, b.BooksID)
		}
	}
	return categories, excluded
}
