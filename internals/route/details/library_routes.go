package details

import (
	bookController "github.com/guipadovan/library-manager/internals/features/library/books/controller"
	bookRoute "github.com/guipadovan/library-manager/internals/features/library/books/route"
	leaseRoute "github.com/guipadovan/library-manager/internals/features/library/leases/route"
	recRoute "github.com/guipadovan/library-manager/internals/features/library/recommendations/route"
	userRoute "github.com/guipadovan/library-manager/internals/features/library/users/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LibraryRoutes mounts the public /v1 API.
func LibraryRoutes(v1 fiber.Router, db *gorm.DB, searcher bookController.BookSearcher) {
	userRoute.UserRoutes(v1.Group("/users"), db)
	bookRoute.BookRoutes(v1.Group("/books"), db, searcher)
	leaseRoute.LeaseRoutes(v1.Group("/leases"), db)
	recRoute.RecommendationRoutes(v1.Group("/recommendations"), db)
}

// LibraryAdminRoutes mounts /v1/admin; the guard is already on the group.
func LibraryAdminRoutes(admin fiber.Router, db *gorm.DB) {
	leaseRoute.LeaseAdminRoutes(admin.Group("/leases"), db)
}
