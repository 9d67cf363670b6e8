// file: internals/features/library/leases/route/lease_route.go
package route

import (
	leaseController "github.com/guipadovan/library-manager/internals/features/library/leases/controller"
	leaseRepo "github.com/guipadovan/library-manager/internals/features/library/leases/repository"
	leaseService "github.com/guipadovan/library-manager/internals/features/library/leases/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func newController(db *gorm.DB) *leaseController.LeaseController {
	return leaseController.NewLeaseController(leaseService.NewLeaseService(leaseRepo.NewLeaseRepository(db)))
}

// Call with: route.LeaseRoutes(app.Group("/v1/leases"), db)
//
//	POST /v1/leases
//	POST /v1/leases/:bookId/return
//	GET  /v1/leases/:id
func LeaseRoutes(r fiber.Router, db *gorm.DB) {
	ctl := newController(db)

	r.Post("/", ctl.Create)
	r.Post("/:bookId/return", ctl.ReturnBook)
	r.Get("/:id", ctl.GetByID)
}

// Call with: route.LeaseAdminRoutes(admin.Group("/leases"), db); the admin guard sits on the group.
//
//	GET    /v1/admin/leases?status=&page=&per_page=
//	DELETE /v1/admin/leases/:id
func LeaseAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := newController(db)

	r.Get("/", ctl.List)
	r.Delete("/:id", ctl.Delete)
}
