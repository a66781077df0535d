package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/insumos-api/internal/application/alerts"
	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// AlertHandler maneja las peticiones HTTP para alertas de stock.
type AlertHandler struct {
	uc *alerts.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// Create godoc
// @Summary      Crear alerta manual
// @Tags         alertas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAlertaRequest  true  "Alerta"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/alertas-stock [post]
func (h *AlertHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAlertaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	alert, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err, "")
	}
	return created(c, dto.ToAlertaResponse(alert))
}

// GetByID godoc
// @Summary      Obtener alerta por ID
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la alerta"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/alertas-stock/{id} [get]
func (h *AlertHandler) GetByID(c *fiber.Ctx) error {
	alert, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err, "alerta no encontrada")
	}
	return ok(c, dto.ToAlertaResponse(alert))
}

// List godoc
// @Summary      Listar alertas
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Param        estado    query  string  false  "Estado (ACTIVA, EN_PROCESO, RESUELTA)"
// @Param        tipo      query  string  false  "Tipo (STOCK_BAJO, STOCK_CRITICO)"
// @Param        deposito  query  string  false  "Depósito"
// @Param        usuario   query  string  false  "Usuario asignado"
// @Param        page      query  int     false  "Página"  default(1)
// @Param        limit     query  int     false  "Límite"  default(10)
// @Success      200  {object}  dto.Response
// @Router       /api/alertas-stock [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	filter := repository.AlertFilter{
		Status:         c.Query("estado"),
		Type:           c.Query("tipo"),
		WarehouseID:    c.Query("deposito"),
		AssignedUserID: c.Query("usuario"),
	}
	page := dto.PageRequest{Page: c.QueryInt("page"), Limit: c.QueryInt("limit")}
	page.Normalize()

	list, total, err := h.uc.List(filter, page.Limit, page.Offset())
	if err != nil {
		return fail(c, err, "")
	}
	out := make([]*dto.AlertaResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.ToAlertaResponse(a))
	}
	return okPaginated(c, out, dto.NewPagination(page.Page, page.Limit, total))
}

// Update godoc
// @Summary      Actualizar alerta (resolverla sella fecha_resolucion)
// @Tags         alertas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la alerta"
// @Param        body  body  dto.UpdateAlertaRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/alertas-stock/{id} [put]
func (h *AlertHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAlertaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	alert, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err, "alerta no encontrada")
	}
	return ok(c, dto.ToAlertaResponse(alert))
}

// Delete elimina una alerta.
func (h *AlertHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err, "alerta no encontrada")
	}
	return okMessage(c, "Alerta eliminada")
}
