package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/domain"
)

// ok responde 200 con data en el envelope.
func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(dto.Response{Success: true, Data: data})
}

// okPaginated responde 200 con data y metadatos de página.
func okPaginated(c *fiber.Ctx, data interface{}, p *dto.Pagination) error {
	return c.JSON(dto.Response{Success: true, Data: data, Pagination: p})
}

// created responde 201 con data en el envelope.
func created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(dto.Response{Success: true, Data: data})
}

// okMessage responde 200 con solo un mensaje (deletes).
func okMessage(c *fiber.Ctx, message string) error {
	return c.JSON(dto.Response{Success: true, Message: message})
}

// badRequest responde 400 con mensaje de negocio.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Response{Success: false, Message: message})
}

// validationFailed responde 400 con la lista de violaciones de esquema.
func validationFailed(c *fiber.Ctx, errs []dto.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
		Success: false,
		Message: "Datos inválidos",
		Errors:  errs,
	})
}

// fail mapea errores de dominio a códigos HTTP. Los conflictos de negocio y
// los duplicados responden 400 con mensaje; lo inesperado responde 500 con
// mensaje genérico y queda en el log.
func fail(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Response{Success: false, Message: notFoundMsg})
	case errors.Is(err, domain.ErrInvalidInput):
		return badRequest(c, err.Error())
	case errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		return badRequest(c, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Response{Success: false, Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Response{Success: false, Message: err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error inesperado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Response{
			Success: false,
			Message: "Error interno del servidor",
		})
	}
}
