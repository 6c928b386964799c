// Package catalog implementa el puerto quote.RateCatalog: el listado de solo
// lectura de tarifas sugeridas que el editor puede insertar como renglones.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	appquote "github.com/jhoicas/Cotizador-api/internal/application/quote"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

var _ appquote.RateCatalog = (*Static)(nil)

// staticFile layout del archivo JSON: categorías con sus entradas, igual que
// el rates.json original del proyecto.
type staticFile struct {
	Categories []struct {
		ID    string `json:"id"`
		Label string `json:"label"`
		Items []struct {
			ID    string          `json:"id"`
			Name  string          `json:"name"`
			Unit  string          `json:"unit"`
			Price decimal.Decimal `json:"price"`
		} `json:"items"`
	} `json:"categories"`
}

// Static catálogo servido desde un archivo JSON local.
type Static struct {
	path string
}

// NewStatic construye el catálogo sobre la ruta del archivo.
func NewStatic(path string) *Static {
	return &Static{path: path}
}

// ListAll lee y aplana el archivo en cada llamada, así los cambios del archivo
// se reflejan sin reiniciar.
func (s *Static) ListAll(_ context.Context) ([]*entity.Rate, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("leer catálogo %s: %w", s.path, err)
	}
	var f staticFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decodificar catálogo %s: %w", s.path, err)
	}
	var rates []*entity.Rate
	for _, cat := range f.Categories {
		for _, it := range cat.Items {
			rates = append(rates, &entity.Rate{
				ID:       it.ID,
				Category: cat.Label,
				Label:    it.Name,
				Unit:     it.Unit,
				Price:    it.Price,
			})
		}
	}
	return rates, nil
}
