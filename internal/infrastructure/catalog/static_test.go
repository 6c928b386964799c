package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/infrastructure/catalog"
)

const sampleCatalog = `{
  "categories": [
    {
      "id": "labor",
      "label": "技術者",
      "items": [
        {"id": "labor-01", "name": "普通作業員", "unit": "人日", "price": 5000},
        {"id": "labor-02", "name": "特殊作業員", "unit": "人日", "price": 8000}
      ]
    },
    {
      "id": "security",
      "label": "警備",
      "items": [
        {"id": "sec-01", "name": "交通誘導警備員", "unit": "人日", "price": 2000}
      ]
    }
  ]
}`

func TestStatic_AplanaCategorias(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0644))

	rates, err := catalog.NewStatic(path).ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, rates, 3)
	assert.Equal(t, "技術者", rates[0].Category)
	assert.Equal(t, "普通作業員", rates[0].Label)
	assert.Equal(t, "人日", rates[0].Unit)
	assert.True(t, decimal.NewFromInt(5000).Equal(rates[0].Price))
	assert.Equal(t, "警備", rates[2].Category)
}

func TestStatic_ArchivoAusenteDevuelveError(t *testing.T) {
	_, err := catalog.NewStatic("/no/existe/rates.json").ListAll(context.Background())

	assert.Error(t, err, "el caller decide degradar; el adaptador solo reporta")
}

func TestStatic_JSONInvalidoDevuelveError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

	_, err := catalog.NewStatic(path).ListAll(context.Background())

	assert.Error(t, err)
}
