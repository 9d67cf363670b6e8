// file: internals/features/library/books/controller/book_controller.go
package controller

import (
	"context"
	"strings"

	dto "github.com/guipadovan/library-manager/internals/features/library/books/dto"
	model "github.com/guipadovan/library-manager/internals/features/library/books/model"
	service "github.com/guipadovan/library-manager/internals/features/library/books/service"
	helper "github.com/guipadovan/library-manager/internals/helpers"
	"github.com/guipadovan/library-manager/internals/helpers/apperror"

	"github.com/gofiber/fiber/v2"
)

// BookSearcher looks books up in an external catalog.
type BookSearcher interface {
	SearchByTitle(ctx context.Context, title string) ([]model.BookModel, error)
}

type BookController struct {
	Service  *service.BookService
	Searcher BookSearcher
}

func NewBookController(svc *service.BookService, searcher BookSearcher) *BookController {
	return &BookController{Service: svc, Searcher: searcher}
}

// =============================
// GET /v1/books
// =============================
func (ctl *BookController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)

	rows, total, err := ctl.Service.ListBooks(c.UserContext(), p.Offset, p.Limit)
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), p.Pagination(total))
}

// =============================
// GET /v1/books/:id
// =============================
func (ctl *BookController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}

	m, err := ctl.Service.GetBook(c.UserContext(), id)
	if err != nil {
		return helper.WriteError(c, err)
	}
	if m == nil {
		return helper.WriteError(c, apperror.NotFound("Book", id))
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

// =============================
// POST /v1/books
// =============================
func (ctl *BookController) Create(c *fiber.Ctx) error {
	var req dto.BookRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	m, err := ctl.Service.CreateBook(c.UserContext(), req)
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonCreated(c, "book created", dto.FromModel(m))
}

// =============================
// PUT /v1/books/:id
// =============================
func (ctl *BookController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}
	var req dto.BookRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	m, err := ctl.Service.UpdateBook(c.UserContext(), id, req)
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonUpdated(c, "book updated", dto.FromModel(m))
}

// =============================
// DELETE /v1/books/:id
// =============================
func (ctl *BookController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}

	deleted, err := ctl.Service.DeleteBook(c.UserContext(), id)
	if err != nil {
		return helper.WriteError(c, err)
	}
	if !deleted {
		return helper.WriteError(c, apperror.NotFound("Book", id))
	}
	return helper.JsonDeleted(c)
}

// =============================
// GET /v1/books/search?title=
// =============================
func (ctl *BookController) Search(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.Query("title"))
	if title == "" {
		return helper.JsonValidationError(c, "", map[string]string{"title": "must not be blank"})
	}
	if ctl.Searcher == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "book search is not configured")
	}

	rows, err := ctl.Searcher.SearchByTitle(c.UserContext(), title)
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModels(rows))
}
