package seeds

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	bookRepo "github.com/guipadovan/library-manager/internals/features/library/books/repository"
	userRepo "github.com/guipadovan/library-manager/internals/features/library/users/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

const DefaultFile = "internals/seeds/data/library.yaml"

type Result struct {
	BooksInserted int
	BooksSkipped  int
	UsersInserted int
	UsersSkipped  int
}

// LoadFile reads a seed file. Unknown keys are rejected and every record is validated.
func LoadFile(path string) (*LibrarySeed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*LibrarySeed, error) {
	var seed LibrarySeed
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&seed); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	return &seed, nil
}

// Run inserts books (skipping known ISBNs) and users (skipping known emails) in one transaction.
func Run(ctx context.Context, db *gorm.DB, seed *LibrarySeed) (Result, error) {
	var res Result
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		books := bookRepo.NewBookRepository(tx)
		for _, b := range seed.Books {
			req := b.Request()
			exists, err := books.ExistsByISBN(ctx, req.ISBN)
			if err != nil {
				return err
			}
			if exists {
				log.Printf("[INFO] book %s already exists, skipping", req.ISBN)
				res.BooksSkipped++
				continue
			}
			if err := books.Save(ctx, req.ToModel()); err != nil {
				return fmt.Errorf("insert book %s: %w", req.ISBN, err)
			}
			res.BooksInserted++
		}

		users := userRepo.NewUserRepository(tx)
		for _, u := range seed.Users {
			req := u.Request()
			exists, err := users.ExistsByEmail(ctx, req.Email)
			if err != nil {
				return err
			}
			if exists {
				log.Printf("[INFO] user %s already exists, skipping", req.Email)
				res.UsersSkipped++
				continue
			}
			if err := users.Save(ctx, req.ToModel()); err != nil {
				return fmt.Errorf("insert user %s: %w", req.Email, err)
			}
			res.UsersInserted++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	log.Printf("[INFO] seed done: books +%d (skipped %d), users +%d (skipped %d)",
		res.BooksInserted, res.BooksSkipped, res.UsersInserted, res.UsersSkipped)
	return res, nil
}

func RunFile(ctx context.Context, db *gorm.DB, path string) (Result, error) {
	seed, err := LoadFile(path)
	if err != nil {
		return Result{}, err
	}
	return Run(ctx, db, seed)
}
