// file: internals/features/library/users/route/user_route.go
package route

import (
	leaseRepo "github.com/guipadovan/library-manager/internals/features/library/leases/repository"
	leaseService "github.com/guipadovan/library-manager/internals/features/library/leases/service"
	userController "github.com/guipadovan/library-manager/internals/features/library/users/controller"
	userRepo "github.com/guipadovan/library-manager/internals/features/library/users/repository"
	userService "github.com/guipadovan/library-manager/internals/features/library/users/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Call with: route.UserRoutes(app.Group("/v1/users"), db)
//
//	GET    /v1/users
//	GET    /v1/users/:id
//	GET    /v1/users/:id/leased-books
//	POST   /v1/users
//	PUT    /v1/users/:id
//	DELETE /v1/users/:id
func UserRoutes(r fiber.Router, db *gorm.DB) {
	svc := userService.NewUserService(userRepo.NewUserRepository(db))
	leases := leaseService.NewLeaseService(leaseRepo.NewLeaseRepository(db))
	ctl := userController.NewUserController(svc, leases)

	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Get("/:id/leased-books", ctl.LeasedBooks)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}
