// file: internals/features/library/users/controller/user_controller.go
package controller

import (
	"context"

	bookDTO "github.com/guipadovan/library-manager/internals/features/library/books/dto"
	bookModel "github.com/guipadovan/library-manager/internals/features/library/books/model"
	dto "github.com/guipadovan/library-manager/internals/features/library/users/dto"
	service "github.com/guipadovan/library-manager/internals/features/library/users/service"
	helper "github.com/guipadovan/library-manager/internals/helpers"
	"github.com/guipadovan/library-manager/internals/helpers/apperror"

	"github.com/gofiber/fiber/v2"
)

// LeaseHistory lists the books a user has leased, most recent first.
type LeaseHistory interface {
	GetLeasedBooksByUser(ctx context.Context, userID int64) ([]bookModel.BookModel, error)
}

type UserController struct {
	Service *service.UserService
	Leases  LeaseHistory
}

func NewUserController(svc *service.UserService, leases LeaseHistory) *UserController {
	return &UserController{Service: svc, Leases: leases}
}

// GET /v1/users
func (ctl *UserController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)

	rows, total, err := ctl.Service.ListUsers(c.UserContext(), p.Offset, p.Limit)
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), p.Pagination(total))
}

// GET /v1/users/:id
func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}

	m, err := ctl.Service.GetUser(c.UserContext(), id)
	if err != nil {
		return helper.WriteError(c, err)
	}
	if m == nil {
		return helper.WriteError(c, apperror.NotFound("User", id))
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

// POST /v1/users
func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	m, err := ctl.Service.CreateUser(c.UserContext(), req)
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonCreated(c, "user created", dto.FromModel(m))
}

// PUT /v1/users/:id
func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	m, err := ctl.Service.UpdateUser(c.UserContext(), id, req)
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonUpdated(c, "user updated", dto.FromModel(m))
}

// DELETE /v1/users/:id
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}

	deleted, err := ctl.Service.DeleteUser(c.UserContext(), id)
	if err != nil {
		return helper.WriteError(c, err)
	}
	if !deleted {
		return helper.WriteError(c, apperror.NotFound("User", id))
	}
	return helper.JsonDeleted(c)
}

// GET /v1/users/:id/leased-books
// Unlike the lease service query, the endpoint answers 404 for an unknown user.
func (ctl *UserController) LeasedBooks(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}

	u, err := ctl.Service.GetUser(c.UserContext(), id)
	if err != nil {
		return helper.WriteError(c, err)
	}
	if u == nil {
		return helper.WriteError(c, apperror.NotFound("User", id))
	}

	books, err := ctl.Leases.GetLeasedBooksByUser(c.UserContext(), id)
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonOK(c, "ok", bookDTO.FromModels(books))
}
