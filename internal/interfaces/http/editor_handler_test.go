package http_test

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	appquote "github.com/jhoicas/Cotizador-api/internal/application/quote"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Cotizador-api/internal/interfaces/http"
	"github.com/jhoicas/Cotizador-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba: almacén en memoria, catálogo y renderizador fijos.
// ──────────────────────────────────────────────────────────────────────────────

type memBlobStore struct {
	data []byte
}

func (s *memBlobStore) Read(context.Context) ([]byte, error) { return s.data, nil }

func (s *memBlobStore) Write(_ context.Context, data []byte) error {
	s.data = append([]byte(nil), data...)
	return nil
}

type fixedCatalog struct {
	rates []*entity.Rate
	err   error
}

func (c *fixedCatalog) ListAll(context.Context) ([]*entity.Rate, error) {
	return c.rates, c.err
}

type fixedPDF struct {
	out []byte
	err error
}

func (p *fixedPDF) GenerateQuotePDF(context.Context, entity.QuoteDocument) ([]byte, error) {
	return p.out, p.err
}

type editorFixture struct {
	app     *fiber.App
	store   *memBlobStore
	catalog *fixedCatalog
	pdf     *fixedPDF
}

func buildEditorApp(t *testing.T) *editorFixture {
	t.Helper()
	f := &editorFixture{
		store:   &memBlobStore{},
		catalog: &fixedCatalog{},
		pdf:     &fixedPDF{out: []byte("%PDF-1.4")},
	}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	editor := appquote.NewEditor(f.store, f.catalog, f.pdf, log)
	f.app = fiber.New()
	apphttp.EditorRouter(f.app, editor)
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Documento en edición
// ──────────────────────────────────────────────────────────────────────────────

func TestEditor_DocumentoInicial(t *testing.T) {
	f := buildEditorApp(t)

	resp := doJSON(t, f.app, http.MethodGet, "/api/quote/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc := decodeBody[dto.QuoteResponse](t, resp)

	assert.Empty(t, doc.CurrentID, "arranca sin guardar")
	assert.Equal(t, "御見積書", doc.Title)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "式", doc.Items[0].Unit)
}

func TestEditor_EditarRenglonRecalculaTotales(t *testing.T) {
	f := buildEditorApp(t)
	resp := doJSON(t, f.app, http.MethodGet, "/api/quote/", nil)
	doc := decodeBody[dto.QuoteResponse](t, resp)
	id := doc.Items[0].ID

	patch := func(field, value string) *dto.QuoteResponse {
		r := doJSON(t, f.app, http.MethodPatch,
			"/api/quote/items/"+itoa(id), dto.UpdateItemRequest{Field: field, Value: value})
		require.Equal(t, http.StatusOK, r.StatusCode)
		out := decodeBody[dto.QuoteResponse](t, r)
		return &out
	}

	patch("quantity", "2")
	out := patch("unitPrice", "5000")

	assert.True(t, decimal.NewFromInt(10000).Equal(out.Subtotal))
	assert.True(t, decimal.NewFromInt(1000).Equal(out.Tax))
	assert.True(t, decimal.NewFromInt(11000).Equal(out.Total))
}

func TestEditor_EditarSinCampoEs400(t *testing.T) {
	f := buildEditorApp(t)
	resp := doJSON(t, f.app, http.MethodGet, "/api/quote/", nil)
	doc := decodeBody[dto.QuoteResponse](t, resp)

	r := doJSON(t, f.app, http.MethodPatch,
		"/api/quote/items/"+itoa(doc.Items[0].ID), dto.UpdateItemRequest{Value: "2"})

	assert.Equal(t, http.StatusBadRequest, r.StatusCode)
}

func TestEditor_AgregarYQuitarRenglon(t *testing.T) {
	f := buildEditorApp(t)

	resp := doJSON(t, f.app, http.MethodPost, "/api/quote/items", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	doc := decodeBody[dto.QuoteResponse](t, resp)
	require.Len(t, doc.Items, 2)

	resp = doJSON(t, f.app, http.MethodDelete, "/api/quote/items/"+itoa(doc.Items[1].ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc = decodeBody[dto.QuoteResponse](t, resp)
	assert.Len(t, doc.Items, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardar / abrir / borrar sobre el almacén
// ──────────────────────────────────────────────────────────────────────────────

func TestEditor_GuardarAbrirYBorrar(t *testing.T) {
	f := buildEditorApp(t)

	name := "テスト株式会社"
	resp := doJSON(t, f.app, http.MethodPut, "/api/quote/header",
		dto.UpdateHeaderRequest{CustomerName: &name})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, f.app, http.MethodPost, "/api/quote/save", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	saved := decodeBody[dto.QuoteResponse](t, resp)
	require.NotEmpty(t, saved.CurrentID)

	// Nueva cotización en blanco y reapertura de la guardada
	resp = doJSON(t, f.app, http.MethodPost, "/api/quote/new", nil)
	fresh := decodeBody[dto.QuoteResponse](t, resp)
	assert.Empty(t, fresh.CurrentID)
	assert.Empty(t, fresh.CustomerName)

	resp = doJSON(t, f.app, http.MethodPost, "/api/quote/open/"+saved.CurrentID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	reopened := decodeBody[dto.QuoteResponse](t, resp)
	assert.Equal(t, name, reopened.CustomerName)

	resp = doJSON(t, f.app, http.MethodGet, "/api/quotes", nil)
	list := decodeBody[dto.StoredQuoteListResponse](t, resp)
	require.Len(t, list.Items, 1)

	resp = doJSON(t, f.app, http.MethodDelete, "/api/quotes/"+saved.CurrentID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, f.app, http.MethodGet, "/api/quote/", nil)
	afterDelete := decodeBody[dto.QuoteResponse](t, resp)
	assert.Empty(t, afterDelete.CurrentID, "borrar la actual reinicia el editor")
}

func TestEditor_AbrirInexistenteEs404(t *testing.T) {
	f := buildEditorApp(t)

	resp := doJSON(t, f.app, http.MethodPost, "/api/quote/open/no-existe", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo y PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestEditor_InsertarDesdeCatalogo(t *testing.T) {
	f := buildEditorApp(t)

	resp := doJSON(t, f.app, http.MethodPost, "/api/quote/items/from-catalog",
		dto.InsertFromCatalogRequest{
			Description: "バックホウ 0.7m3",
			Unit:        "日",
			UnitPrice:   decimal.NewFromInt(3000),
		})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	doc := decodeBody[dto.QuoteResponse](t, resp)

	require.Len(t, doc.Items, 2)
	last := doc.Items[len(doc.Items)-1]
	assert.Equal(t, "バックホウ 0.7m3", last.Description)
	assert.Equal(t, "日", last.Unit)
	assert.True(t, decimal.NewFromInt(3000).Equal(last.Amount), "cantidad inicial 1")
}

func TestEditor_CatalogoDegradadoConAviso(t *testing.T) {
	f := buildEditorApp(t)
	f.catalog.err = errors.New("conexión rechazada")

	resp := doJSON(t, f.app, http.MethodGet, "/api/catalog", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[dto.CatalogResponse](t, resp)
	assert.Empty(t, body.Items)
	assert.NotEmpty(t, body.Warning)
}

func TestEditor_ExportarPDF(t *testing.T) {
	f := buildEditorApp(t)

	resp := doJSON(t, f.app, http.MethodGet, "/api/quote/pdf", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestEditor_PDFFallidoEs502(t *testing.T) {
	f := buildEditorApp(t)
	f.pdf.err = errors.New("fuente no disponible")

	resp := doJSON(t, f.app, http.MethodGet, "/api/quote/pdf", nil)

	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "RENDER_FAILED", body.Code)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
