package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/application/usecase"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Cotizador-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doble de prueba: repositorio de tarifas en memoria (mismo contrato que el
// adaptador PostgreSQL, incluido nil, nil para no-encontrado).
// ──────────────────────────────────────────────────────────────────────────────

type memRateRepo struct {
	rates []*entity.Rate
}

func (m *memRateRepo) Create(rate *entity.Rate) error {
	cp := *rate
	m.rates = append(m.rates, &cp)
	return nil
}

func (m *memRateRepo) GetByID(id string) (*entity.Rate, error) {
	for _, r := range m.rates {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRateRepo) Update(rate *entity.Rate) error {
	for i, r := range m.rates {
		if r.ID == rate.ID {
			cp := *rate
			m.rates[i] = &cp
		}
	}
	return nil
}

func (m *memRateRepo) List(limit, offset int) ([]*entity.Rate, error) {
	if offset >= len(m.rates) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.rates) {
		end = len(m.rates)
	}
	return m.rates[offset:end], nil
}

func (m *memRateRepo) Delete(id string) (bool, error) {
	for i, r := range m.rates {
		if r.ID == id {
			m.rates = append(m.rates[:i], m.rates[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func buildRatesApp() *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		RateUC: usecase.NewRateUseCase(&memRateRepo{}),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD de tarifas
// ──────────────────────────────────────────────────────────────────────────────

func TestRates_CrearYConsultar(t *testing.T) {
	app := buildRatesApp()

	resp := doJSON(t, app, http.MethodPost, "/api/rates/", dto.CreateRateRequest{
		Category: "技術者",
		Label:    "普通作業員",
		Unit:     "人日",
		Price:    decimal.NewFromInt(5000),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[dto.RateResponse](t, resp)
	assert.NotEmpty(t, created.ID, "el servidor asigna el identificador")

	resp = doJSON(t, app, http.MethodGet, "/api/rates/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[dto.RateResponse](t, resp)
	assert.Equal(t, "普通作業員", got.Label)
	assert.True(t, decimal.NewFromInt(5000).Equal(got.Price))
}

func TestRates_CrearSinCategoriaEs400(t *testing.T) {
	app := buildRatesApp()

	resp := doJSON(t, app, http.MethodPost, "/api/rates/", dto.CreateRateRequest{Label: "x"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
}

func TestRates_Listar(t *testing.T) {
	app := buildRatesApp()
	for i := 0; i < 3; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/rates/", dto.CreateRateRequest{
			Category: "機械",
			Label:    fmt.Sprintf("機械-%d", i),
			Unit:     "日",
			Price:    decimal.NewFromInt(int64(1000 * (i + 1))),
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/rates/?limit=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[dto.RateListResponse](t, resp)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, 2, list.Page.Limit)
}

func TestRates_ListarAcotaElLimite(t *testing.T) {
	app := buildRatesApp()

	resp := doJSON(t, app, http.MethodGet, "/api/rates/?limit=500", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[dto.RateListResponse](t, resp)
	assert.Equal(t, 100, list.Page.Limit, "el límite se acota al máximo")
}

func TestRates_ActualizarParcial(t *testing.T) {
	app := buildRatesApp()
	resp := doJSON(t, app, http.MethodPost, "/api/rates/", dto.CreateRateRequest{
		Category: "警備",
		Label:    "交通誘導警備員",
		Unit:     "人日",
		Price:    decimal.NewFromInt(2000),
	})
	created := decodeBody[dto.RateResponse](t, resp)

	newPrice := decimal.NewFromInt(2200)
	resp = doJSON(t, app, http.MethodPut, "/api/rates/"+created.ID, dto.UpdateRateRequest{Price: &newPrice})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[dto.RateResponse](t, resp)

	assert.True(t, newPrice.Equal(updated.Price))
	assert.Equal(t, "交通誘導警備員", updated.Label, "los campos ausentes no cambian")
}

func TestRates_NoEncontrada(t *testing.T) {
	app := buildRatesApp()

	resp := doJSON(t, app, http.MethodGet, "/api/rates/00000000-0000-0000-0000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/rates/00000000-0000-0000-0000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRates_Eliminar(t *testing.T) {
	app := buildRatesApp()
	resp := doJSON(t, app, http.MethodPost, "/api/rates/", dto.CreateRateRequest{
		Category: "技術者", Label: "現場監督", Unit: "人日", Price: decimal.NewFromInt(12000),
	})
	created := decodeBody[dto.RateResponse](t, resp)

	resp = doJSON(t, app, http.MethodDelete, "/api/rates/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/rates/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
