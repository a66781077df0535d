package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/insumos-api/internal/application/dto"
	"github.com/tu-usuario/insumos-api/internal/application/usecase"
	"github.com/tu-usuario/insumos-api/internal/domain/repository"
)

// InvoiceHandler maneja las peticiones HTTP para facturas de proveedor.
type InvoiceHandler struct {
	uc    *usecase.InvoiceUseCase
	pdfUC *usecase.InvoicePDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase, pdfUC *usecase.InvoicePDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Registrar factura de proveedor
// @Tags         facturas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFacturaRequest  true  "Factura"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/facturas [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	inv, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err, "proveedor u orden no encontrado")
	}
	return created(c, dto.ToFacturaResponse(inv, time.Now()))
}

// GetByID godoc
// @Summary      Obtener factura por ID (con días a vencimiento derivados)
// @Tags         facturas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/facturas/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err, "factura no encontrada")
	}
	return ok(c, dto.ToFacturaResponse(inv, time.Now()))
}

// List godoc
// @Summary      Listar facturas
// @Tags         facturas
// @Security     Bearer
// @Produce      json
// @Param        estado      query  string  false  "Estado (PENDIENTE, PAGADA, VENCIDA, ANULADA)"
// @Param        proveedor   query  string  false  "Proveedor"
// @Param        vencidas    query  bool    false  "Solo pendientes con vencimiento pasado"
// @Param        fechaDesde  query  string  false  "Emisión desde (YYYY-MM-DD)"
// @Param        fechaHasta  query  string  false  "Emisión hasta (YYYY-MM-DD)"
// @Param        page        query  int     false  "Página"  default(1)
// @Param        limit       query  int     false  "Límite"  default(10)
// @Success      200  {object}  dto.Response
// @Router       /api/facturas [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	now := time.Now()
	filter := repositoryInvoiceFilter(c, now)
	page := dto.PageRequest{Page: c.QueryInt("page"), Limit: c.QueryInt("limit")}
	page.Normalize()

	list, total, err := h.uc.List(filter, page.Limit, page.Offset())
	if err != nil {
		return fail(c, err, "")
	}
	out := make([]*dto.FacturaResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, dto.ToFacturaResponse(inv, now))
	}
	return okPaginated(c, out, dto.NewPagination(page.Page, page.Limit, total))
}

// Update actualiza una factura.
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validateStruct(in); errs != nil {
		return validationFailed(c, errs)
	}
	inv, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err, "factura no encontrada")
	}
	return ok(c, dto.ToFacturaResponse(inv, time.Now()))
}

// Delete elimina una factura no pagada.
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err, "factura no encontrada")
	}
	return okMessage(c, "Factura eliminada")
}

// DownloadPDF godoc
// @Summary      Descargar comprobante PDF de una factura
// @Tags         facturas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.Response
// @Router       /api/facturas/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err, "factura no encontrada")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}

func repositoryInvoiceFilter(c *fiber.Ctx, now time.Time) repository.InvoiceFilter {
	filter := repository.InvoiceFilter{
		Status:      c.Query("estado"),
		SupplierID:  c.Query("proveedor"),
		OnlyOverdue: c.QueryBool("vencidas"),
		Now:         now,
	}
	if from, err := time.Parse("2006-01-02", c.Query("fechaDesde")); err == nil {
		filter.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("fechaHasta")); err == nil {
		end := to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &end
	}
	return filter
}
