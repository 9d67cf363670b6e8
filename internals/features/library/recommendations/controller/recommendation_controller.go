// file: internals/features/library/recommendations/controller/recommendation_controller.go
package controller

import (
	"strconv"
	"strings"

	bookDTO "github.com/guipadovan/library-manager/internals/features/library/books/dto"
	service "github.com/guipadovan/library-manager/internals/features/library/recommendations/service"
	helper "github.com/guipadovan/library-manager/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultLimit = 10
	MaxLimit     = 50
)

type RecommendationController struct {
	Service *service.RecommendationService
}

func NewRecommendationController(svc *service.RecommendationService) *RecommendationController {
	return &RecommendationController{Service: svc}
}

// GET /v1/recommendations/:userId?limit=10
func (ctl *RecommendationController) ByUser(c *fiber.Ctx) error {
	userID, err := helper.ParseIDParam(c, "userId")
	if err != nil {
		return helper.WriteError(c, err)
	}

	limit := DefaultLimit
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return helper.JsonValidationError(c, "", map[string]string{"limit": "must be greater than or equal to 1"})
		}
		limit = min(n, MaxLimit)
	}

	books, err := ctl.Service.GetBookRecommendationsByUser(c.UserContext(), userID, limit)
	if err != nil {
		return helper.WriteError(c, err)
	}
	return helper.JsonOK(c, "ok", bookDTO.FromModels(books))
}
