// file: internals/features/library/recommendations/route/recommendation_route.go
package route

import (
	bookRepo "github.com/guipadovan/library-manager/internals/features/library/books/repository"
	bookService "github.com/guipadovan/library-manager/internals/features/library/books/service"
	leaseRepo "github.com/guipadovan/library-manager/internals/features/library/leases/repository"
	leaseService "github.com/guipadovan/library-manager/internals/features/library/leases/service"
	recController "github.com/guipadovan/library-manager/internals/features/library/recommendations/controller"
	recService "github.com/guipadovan/library-manager/internals/features/library/recommendations/service"
	userRepo "github.com/guipadovan/library-manager/internals/features/library/users/repository"
	userService "github.com/guipadovan/library-manager/internals/features/library/users/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Call with: route.RecommendationRoutes(app.Group("/v1/recommendations"), db)
//
//	GET /v1/recommendations/:userId?limit=
func RecommendationRoutes(r fiber.Router, db *gorm.DB) {
	svc := recService.NewRecommendationService(
		userService.NewUserService(userRepo.NewUserRepository(db)),
		leaseService.NewLeaseService(leaseRepo.NewLeaseRepository(db)),
		bookService.NewBookService(bookRepo.NewBookRepository(db)),
	)
	ctl := recController.NewRecommendationController(svc)

	r.Get("/:userId", ctl.ByUser)
}
