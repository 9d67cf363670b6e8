package seeds

import (
	"fmt"

	bookDTO "github.com/guipadovan/library-manager/internals/features/library/books/dto"
	userDTO "github.com/guipadovan/library-manager/internals/features/library/users/dto"
)

// LibrarySeed is the shape of a seed file.
type LibrarySeed struct {
	Books []BookSeed `yaml:"books"`
	Users []UserSeed `yaml:"users"`
}

type BookSeed struct {
	Title           string `yaml:"title"`
	Author          string `yaml:"author"`
	ISBN            string `yaml:"isbn"`
	PublicationDate string `yaml:"publicationDate"`
	Category        string `yaml:"category"`
}

type UserSeed struct {
	Name             string `yaml:"name"`
	Email            string `yaml:"email"`
	RegistrationDate string `yaml:"registrationDate"`
	Phone            string `yaml:"phone"`
}

func (s BookSeed) Request() bookDTO.BookRequest {
	r := bookDTO.BookRequest{
		Title:           s.Title,
		Author:          s.Author,
		ISBN:            s.ISBN,
		PublicationDate: s.PublicationDate,
		Category:        s.Category,
	}
	r.Normalize()
	return r
}

func (s UserSeed) Request() userDTO.UserRequest {
	r := userDTO.UserRequest{
		Name:             s.Name,
		Email:            s.Email,
		RegistrationDate: s.RegistrationDate,
		Phone:            s.Phone,
	}
	r.Normalize()
	return r
}

// Validate applies the same rules as the HTTP API to every record.
func (s *LibrarySeed) Validate() error {
	for i, b := range s.Books {
		req := b.Request()
		if err := req.Validate(); err != nil {
			return fmt.Errorf("books[%d] (%s): %w", i, b.Title, err)
		}
	}
	for i, u := range s.Users {
		req := u.Request()
		if err := req.Validate(); err != nil {
			return fmt.Errorf("users[%d] (%s): %w", i, u.Email, err)
		}
	}
	return nil
}
