package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/insumos-api/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/insumos-api/pkg/jwt"
)

// ─────────────────────────────────────────────────────────────────────────────
// Superficie de rutas
//
// El middleware de auth corre sobre todo /api/*, así que para distinguir una
// ruta registrada de una inexistente hay que pasar un token válido: la
// registrada llega al handler (cualquier status menos 404), la inexistente
// cae en el 404 de fiber.
// ─────────────────────────────────────────────────────────────────────────────

func buildRouterApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	app := fiber.New()
	app.Use(recover.New())
	apphttp.Router(app, apphttp.RouterDeps{JWTSecret: testJWTSecret})

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testRoleID, testIssuer, testExpMin)
	require.NoError(t, err)
	return app, tok
}

func statusFor(t *testing.T, app *fiber.App, token, method, path string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestRouter_RutasRegistradas(t *testing.T) {
	app, tok := buildRouterApp(t)

	rutas := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/categorias"},
		{http.MethodGet, "/api/insumos"},
		{http.MethodGet, "/api/insumos/stock_critico"},
		{http.MethodGet, "/api/proveedores"},
		{http.MethodGet, "/api/depositos"},
		{http.MethodGet, "/api/tipos-movimiento"},
		{http.MethodGet, "/api/razones-movimiento"},
		{http.MethodGet, "/api/movimientos-inventario"},
		{http.MethodGet, "/api/detalles-movimiento"},
		{http.MethodPut, "/api/stock-depositos/abc"},
		{http.MethodGet, "/api/stock-depositos"},
		{http.MethodGet, "/api/alertas-stock"},
		{http.MethodGet, "/api/ordenes-compra"},
		{http.MethodPost, "/api/detalles-orden-compra"},
		{http.MethodGet, "/api/facturas"},
		{http.MethodGet, "/api/facturas/abc/pdf"},
		{http.MethodGet, "/api/usuarios"},
		{http.MethodGet, "/api/roles"},
	}
	for _, r := range rutas {
		assert.NotEqual(t, fiber.StatusNotFound, statusFor(t, app, tok, r.method, r.path),
			"%s %s debería estar registrada", r.method, r.path)
	}
}

func TestRouter_PathsViejosNoExisten(t *testing.T) {
	app, tok := buildRouterApp(t)

	viejas := []string{
		"/api/stock-deposito",
		"/api/detalles-orden",
		"/api/facturas-proveedor",
	}
	for _, path := range viejas {
		assert.Equal(t, fiber.StatusNotFound, statusFor(t, app, tok, http.MethodGet, path),
			"%s no debería estar registrada", path)
	}
}
