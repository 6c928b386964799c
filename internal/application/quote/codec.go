package quote

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

func init() {
	// La colección persistida lleva cantidades y precios como números JSON
	// ({"quantity": 1, "unitPrice": 5000}), no como strings. La decodificación
	// de decimal acepta ambas formas, así que blobs antiguos siguen leyéndose.
	decimal.MarshalJSONWithoutQuotes = true
}

// encodeCollection serializa la colección completa como un arreglo JSON.
func encodeCollection(quotes []entity.StoredQuote) ([]byte, error) {
	if quotes == nil {
		quotes = []entity.StoredQuote{}
	}
	return json.Marshal(quotes)
}

// decodeCollection deserializa el blob. Un blob vacío o corrupto se trata como
// colección vacía (valor seguro por defecto): el almacenamiento dañado nunca
// es fatal para la sesión. Devuelve ok=false cuando hubo que descartar datos.
func decodeCollection(data []byte) (quotes []entity.StoredQuote, ok bool) {
	if len(data) == 0 {
		return nil, true
	}
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, false
	}
	return quotes, true
}
