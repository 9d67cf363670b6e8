// file: internals/features/library/books/route/book_route.go
package route

import (
	bookController "github.com/guipadovan/library-manager/internals/features/library/books/controller"
	bookRepo "github.com/guipadovan/library-manager/internals/features/library/books/repository"
	bookService "github.com/guipadovan/library-manager/internals/features/library/books/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Call with: route.BookRoutes(app.Group("/v1/books"), db, searcher)
//
//	GET    /v1/books
//	GET    /v1/books/search?title=
//	GET    /v1/books/:id
//	POST   /v1/books
//	PUT    /v1/books/:id
//	DELETE /v1/books/:id
func BookRoutes(r fiber.Router, db *gorm.DB, searcher bookController.BookSearcher) {
	svc := bookService.NewBookService(bookRepo.NewBookRepository(db))
	ctl := bookController.NewBookController(svc, searcher)

	r.Get("/", ctl.List)
	r.Get("/search", ctl.Search) // before /:id
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}
