// file: internals/features/library/leases/controller/lease_controller.go
package controller

import (
	"strings"

	dto "github.com/guipadovan/library-manager/internals/features/library/leases/dto"
	model "github.com/guipadovan/library-manager/internals/features/library/leases/model"
	service "github.com/guipadovan/library-manager/internals/features/library/leases/service"
	helper "github.com/guipadovan/library-manager/internals/helpers"
	"github.com/guipadovan/library-manager/internals/helpers/apperror"

	"github.com/gofiber/fiber/v2"
)

type LeaseController struct {
	Service *service.LeaseService
}

func NewLeaseController(svc *service.LeaseService) *LeaseController {
	return &LeaseController{Service: svc}
}

// =============================
// POST /v1/leases
// =============================
func (ctl *LeaseController) Create(c *fiber.Ctx) error {
	var req dto.CreateLeaseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	m, err := ctl.Service.CreateLease(c.UserContext(), req)
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonCreated(c, "lease created", dto.FromModel(m))
}

// =============================
// POST /v1/leases/:bookId/return
// =============================
func (ctl *LeaseController) ReturnBook(c *fiber.Ctx) error {
	bookID, err := helper.ParseIDParam(c, "bookId")
	if err != nil {
		return helper.WriteError(c, err)
	}

	m, err := ctl.Service.ReturnBook(c.UserContext(), bookID)
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonUpdated(c, "book returned", dto.FromModel(m))
}

// =============================
// GET /v1/leases/:id
// =============================
func (ctl *LeaseController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}

	m, err := ctl.Service.GetLease(c.UserContext(), id)
	if err != nil {
		return helper.WriteError(c, err)
	}
	if m == nil {
		return helper.WriteError(c, apperror.NotFound("Lease", id))
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

// =============================
// GET /v1/admin/leases?status=
// =============================
func (ctl *LeaseController) List(c *fiber.Ctx) error {
	var q dto.LeaseListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}

	var status model.LeaseStatus
	if strings.TrimSpace(q.Status) != "" {
		st, ok := model.ParseLeaseStatus(q.Status)
		if !ok {
			return helper.JsonValidationError(c, "", map[string]string{"status": "must be one of: ACTIVE RETURNED"})
		}
		status = st
	}

	p := helper.ResolvePaging(c, helper.DefaultPerPage, helper.MaxPerPage)
	rows, total, err := ctl.Service.ListLeases(c.UserContext(), status, p.Offset, p.Limit)
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), p.Pagination(total))
}

// =============================
// DELETE /v1/admin/leases/:id
// =============================
func (ctl *LeaseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.WriteError(c, err)
	}

	deleted, err := ctl.Service.DeleteLease(c.UserContext(), id)
	if err != nil {
		return helper.WriteError(c, err)
	}
	if !deleted {
		return helper.WriteError(c, apperror.NotFound("Lease", id))
	}
	return helper.JsonDeleted(c)
}
