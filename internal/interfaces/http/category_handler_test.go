package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/insumos-api/internal/application/usecase"
	"github.com/tu-usuario/insumos-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/insumos-api/internal/interfaces/http"
)

// memCategoryRepo repositorio en memoria para ejercer el handler completo
// (parseo, validación, envelope) sin base de datos.
type memCategoryRepo struct {
	byID map[string]*entity.Category
}

func (r *memCategoryRepo) Create(c *entity.Category) error { r.byID[c.ID] = c; return nil }
func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.byID[id], nil
}
func (r *memCategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
func (r *memCategoryRepo) Update(c *entity.Category) error { r.byID[c.ID] = c; return nil }
func (r *memCategoryRepo) Delete(id string) error          { delete(r.byID, id); return nil }

// envelope forma del JSON de respuesta.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func buildCategoryApp() (*fiber.App, *memCategoryRepo) {
	repo := &memCategoryRepo{byID: make(map[string]*entity.Category)}
	h := apphttp.NewCategoryHandler(usecase.NewCategoryUseCase(repo))

	app := fiber.New()
	app.Post("/categorias", h.Create)
	app.Get("/categorias/:id", h.GetByID)
	app.Delete("/categorias/:id", h.Delete)
	return app, repo
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

// Alta válida → 201 con el envelope {success, data}.
func TestCategoryHandler_Create_Envelope201(t *testing.T) {
	app, repo := buildCategoryApp()

	resp := postJSON(t, app, "/categorias", fiber.Map{
		"nombre_categoria": "Descartables",
		"descripcion":      "Material de un solo uso",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.True(t, env.Success)

	var data map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Descartables", data["nombre_categoria"])
	assert.NotEmpty(t, data["id_categoria"])
	assert.Len(t, repo.byID, 1)
}

// Campo requerido ausente → 400 con errors[] nombrando el campo json.
func TestCategoryHandler_Create_Validacion400(t *testing.T) {
	app, _ := buildCategoryApp()

	resp := postJSON(t, app, "/categorias", fiber.Map{"descripcion": "sin nombre"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
	assert.Equal(t, "Datos inválidos", env.Message)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "nombre_categoria", env.Errors[0].Field)
}

// ID inexistente → 404 con mensaje de recurso.
func TestCategoryHandler_GetByID_NoEncontrada404(t *testing.T) {
	app, _ := buildCategoryApp()

	req := httptest.NewRequest(http.MethodGet, "/categorias/no-existe", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
	assert.Equal(t, "categoría no encontrada", env.Message)
}

// Delete existente → 200 con mensaje y sin data.
func TestCategoryHandler_Delete_Mensaje200(t *testing.T) {
	app, repo := buildCategoryApp()
	repo.byID["cat-1"] = &entity.Category{ID: "cat-1", Name: "Limpieza"}

	req := httptest.NewRequest(http.MethodDelete, "/categorias/cat-1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.True(t, env.Success)
	assert.Equal(t, "Categoría eliminada", env.Message)
	assert.Empty(t, repo.byID)
}
