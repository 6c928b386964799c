package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	appquote "github.com/jhoicas/Cotizador-api/internal/application/quote"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

var _ appquote.RateCatalog = (*APIClient)(nil)

// APIClient catálogo servido por el servicio de tarifas vía GET /api/rates.
type APIClient struct {
	baseURL string
	client  *http.Client
}

// NewAPIClient construye el cliente. baseURL sin slash final, ej: http://localhost:8080.
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// ListAll consulta el servicio de tarifas. Cualquier falla se devuelve al
// caller, que degrada la operación (el catálogo nunca es obligatorio).
func (c *APIClient) ListAll(ctx context.Context) ([]*entity.Rate, error) {
	// El servicio pagina; 100 es el tope que acepta y el maestro es pequeño.
	url := c.baseURL + "/api/rates?limit=100"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("crear petición: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("consultar catálogo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("consultar catálogo: HTTP %d", resp.StatusCode)
	}

	var out dto.RateListResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decodificar catálogo: %w", err)
	}

	rates := make([]*entity.Rate, 0, len(out.Items))
	for _, it := range out.Items {
		rates = append(rates, &entity.Rate{
			ID:       it.ID,
			Category: it.Category,
			Label:    it.Label,
			Unit:     it.Unit,
			Price:    it.Price,
		})
	}
	return rates, nil
}
