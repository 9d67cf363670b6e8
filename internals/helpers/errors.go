// file: internals/helpers/errors.go
package helper

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/guipadovan/library-manager/internals/helpers/apperror"
)

// WriteError renders any service or handler error with the standard envelope.
func WriteError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	var (
		nf  *apperror.NotFoundError
		ve  *apperror.ValidationError
		ext *apperror.ExternalError
		fe  *fiber.Error
		vv  validator.ValidationErrors
	)
	switch {
	case errors.As(err, &nf):
		return JsonError(c, fiber.StatusNotFound, nf.Error())
	case errors.As(err, &ve):
		return JsonValidationError(c, ve.Message, ve.Fields)
	case errors.As(err, &vv):
		return JsonValidationError(c, "", FieldMessages(vv))
	case errors.As(err, &ext):
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
		return JsonError(c, fiber.StatusBadGateway, ext.Source+" is unavailable")
	case errors.As(err, &fe):
		return JsonError(c, fe.Code, fe.Message)
	default:
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
		return JsonError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

// ErrorHandler plugs WriteError into fiber.Config.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return WriteError(c, err)
}
