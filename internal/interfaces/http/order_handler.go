package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/application/orders"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// OrderHandler maneja las peticiones HTTP para órdenes de compra.
type OrderHandler struct {
	uc *orders.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de compra con sus líneas
// @Tags         ordenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrdenRequest  true  "Orden con detalles"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/ordenes-compra [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrdenRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	order, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fail(c, err, "proveedor no encontrado")
	}
	_, details, err := h.uc.GetByID(order.ID)
	if err != nil {
		return fail(c, err, "orden no encontrada")
	}
	return created(c, dto.ToOrdenResponse(order, details))
}

// GetByID godoc
// @Summary      Obtener orden por ID (con detalles)
// @Tags         ordenes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/ordenes-compra/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, details, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err, "orden no encontrada")
	}
	return ok(c, dto.ToOrdenResponse(order, details))
}

// List godoc
// @Summary      Listar órdenes de compra
// @Tags         ordenes
// @Security     Bearer
// @Produce      json
// @Param        estado      query  string  false  "Estado de la orden"
// @Param        proveedor   query  string  false  "Proveedor"
// @Param        fechaDesde  query  string  false  "Fecha desde (YYYY-MM-DD)"
// @Param        fechaHasta  query  string  false  "Fecha hasta (YYYY-MM-DD)"
// @Param        page        query  int     false  "Página"  default(1)
// @Param        limit       query  int     false  "Límite"  default(10)
// @Success      200  {object}  dto.Response
// @Router       /api/ordenes-compra [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	filter := repository.OrderFilter{
		Status:     c.Query("estado"),
		SupplierID: c.Query("proveedor"),
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

	list, total, err := h.uc.List(filter, page.Limit, page.Offset())
	if err != nil {
		return fail(c, err, "")
	}
	out := make([]*dto.OrdenResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.ToOrdenResponse(o, nil))
	}
	return okPaginated(c, out, dto.NewPagination(page.Page, page.Limit, total))
}

// Update godoc
// @Summary      Actualizar cabecera de una orden
// @Tags         ordenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrdenRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/ordenes-compra/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrdenRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	order, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err, "orden no encontrada")
	}
	return ok(c, dto.ToOrdenResponse(order, nil))
}

// Delete godoc
// @Summary      Eliminar orden (solo si no registró recepciones)
// @Tags         ordenes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Router       /api/ordenes-compra/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err, "orden no encontrada")
	}
	return okMessage(c, "Orden eliminada")
}

// OrderDetailHandler maneja las peticiones HTTP para líneas de orden de compra.
type OrderDetailHandler struct {
	uc *orders.DetailUseCase
}

// NewOrderDetailHandler construye el handler.
func NewOrderDetailHandler(uc *orders.DetailUseCase) *OrderDetailHandler {
	return &OrderDetailHandler{uc: uc}
}

// Create agrega una línea a una orden no terminal y recalcula el total.
func (h *OrderDetailHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDetalleOrdenRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	detail, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fail(c, err, "orden o insumo no encontrado")
	}
	return created(c, dto.ToDetalleOrdenResponse(detail))
}

// GetByID obtiene una línea por ID.
func (h *OrderDetailHandler) GetByID(c *fiber.Ctx) error {
	detail, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err, "detalle no encontrado")
	}
	return ok(c, dto.ToDetalleOrdenResponse(detail))
}

// ListByOrder lista las líneas de una orden (query id_orden_compra).
func (h *OrderDetailHandler) ListByOrder(c *fiber.Ctx) error {
	orderID := c.Query("id_orden_compra")
	if orderID == "" {
		return badRequest(c, "id_orden_compra es requerido")
	}
	details, err := h.uc.ListByOrder(orderID)
	if err != nil {
		return fail(c, err, "")
	}
	out := make([]dto.DetalleOrdenResponse, 0, len(details))
	for _, d := range details {
		out = append(out, dto.ToDetalleOrdenResponse(d))
	}
	return ok(c, out)
}

// Update modifica una línea y recalcula el total de la orden.
func (h *OrderDetailHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDetalleOrdenRequest
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
	return ok(c, dto.ToDetalleOrdenResponse(detail))
}

// Delete elimina una línea y recalcula el total de la orden.
func (h *OrderDetailHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err, "detalle no encontrado")
	}
	return okMessage(c, "Detalle eliminado")
}
