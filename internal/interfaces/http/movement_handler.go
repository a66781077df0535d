package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/application/inventory"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// MovementHandler maneja las peticiones HTTP para movimientos de inventario.
type MovementHandler struct {
	uc *inventory.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Create godoc
// @Summary      Crear movimiento de inventario
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovimientoRequest  true  "Movimiento con detalles"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/movimientos-inventario [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	mov, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fail(c, err, "tipo o razón de movimiento no encontrado")
	}
	_, details, err := h.uc.GetByID(mov.ID)
	if err != nil {
		return fail(c, err, "movimiento no encontrado")
	}
	return created(c, dto.ToMovimientoResponse(mov, details))
}

// GetByID godoc
// @Summary      Obtener movimiento por ID (con detalles y totales derivados)
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/movimientos-inventario/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	mov, details, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err, "movimiento no encontrado")
	}
	return ok(c, dto.ToMovimientoResponse(mov, details))
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        deposito    query  string  false  "Depósito (origen o destino)"
// @Param        tipo        query  string  false  "Tipo de movimiento"
// @Param        estado      query  string  false  "Estado"
// @Param        fechaDesde  query  string  false  "Fecha desde (YYYY-MM-DD)"
// @Param        fechaHasta  query  string  false  "Fecha hasta (YYYY-MM-DD)"
// @Param        page        query  int     false  "Página"  default(1)
// @Param        limit       query  int     false  "Límite"  default(10)
// @Success      200  {object}  dto.Response
// @Router       /api/movimientos-inventario [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	filter := repository.MovementFilter{
		WarehouseID: c.Query("deposito"),
		TypeID:      c.Query("tipo"),
		Status:      c.Query("estado"),
	}
	if from, err := time.Parse("2006-01-02", c.Query("fechaDesde")); err == nil {
		filter.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("fechaHasta")); err == nil {
		end := to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &end
	}
	page := dto.PageRequest{Page: c.QueryInt("page"), Limit: c.QueryInt("limit")}
	page.Normalize()

	movs, total, err := h.uc.List(filter, page.Limit, page.Offset())
	if err != nil {
		return fail(c, err, "")
	}
	out := make([]*dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.ToMovimientoResponse(m, nil))
	}
	return okPaginated(c, out, dto.NewPagination(page.Page, page.Limit, total))
}

// Update godoc
// @Summary      Actualizar movimiento (la transición a COMPLETADO aplica stock)
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.UpdateMovimientoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/movimientos-inventario/{id} [put]
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	mov, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return fail(c, err, "movimiento no encontrado")
	}
	return ok(c, dto.ToMovimientoResponse(mov, nil))
}

// Delete godoc
// @Summary      Eliminar movimiento (solo si no está COMPLETADO)
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Router       /api/movimientos-inventario/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err, "movimiento no encontrado")
	}
	return okMessage(c, "Movimiento eliminado")
}

// MovementDetailHandler maneja las peticiones HTTP para detalles de movimiento.
type MovementDetailHandler struct {
	uc *inventory.DetailUseCase
}

// NewMovementDetailHandler construye el handler.
func NewMovementDetailHandler(uc *inventory.DetailUseCase) *MovementDetailHandler {
	return &MovementDetailHandler{uc: uc}
}

// Create agrega una línea a un movimiento no completado.
func (h *MovementDetailHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDetalleMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	detail, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fail(c, err, "movimiento o insumo no encontrado")
	}
	return created(c, dto.ToDetalleMovimientoResponse(detail))
}

// GetByID obtiene un detalle por ID.
func (h *MovementDetailHandler) GetByID(c *fiber.Ctx) error {
	detail, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err, "detalle no encontrado")
	}
	return ok(c, dto.ToDetalleMovimientoResponse(detail))
}

// ListByMovement lista los detalles de un movimiento (query id_movimiento).
func (h *MovementDetailHandler) ListByMovement(c *fiber.Ctx) error {
	movementID := c.Query("id_movimiento")
	if movementID == "" {
		return badRequest(c, "id_movimiento es requerido")
	}
	details, err := h.uc.ListByMovement(movementID)
	if err != nil {
		return fail(c, err, "")
	}
	out := make([]dto.DetalleMovimientoResponse, 0, len(details))
	for _, d := range details {
		out = append(out, dto.ToDetalleMovimientoResponse(d))
	}
	return ok(c, out)
}

// Update modifica una línea de un movimiento no completado.
func (h *MovementDetailHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDetalleMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	detail, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return fail(c, err, "detalle no encontrado")
	}
	return ok(c, dto.ToDetalleMovimientoResponse(detail))
}

// Delete elimina una línea de un movimiento no completado.
func (h *MovementDetailHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err, "detalle no encontrado")
	}
	return okMessage(c, "Detalle eliminado")
}
