package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem es un renglón de la cotización. El ID es único dentro del documento,
// no globalmente; se deriva del reloj al agregar renglones.
type LineItem struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// QuoteDocument es la unidad de trabajo editable: cabecera + renglones ordenados.
// Los totales (subtotal, impuesto, total) nunca se almacenan aquí: se derivan
// del listado de renglones en cada lectura.
type QuoteDocument struct {
	Title        string     `json:"title"`
	CustomerName string     `json:"customerName"`
	ProjectName  string     `json:"projectName"`
	IssueDate    string     `json:"issueDate"` // YYYY-MM-DD, sin componente horario
	Items        []LineItem `json:"items"`
}

// StoredQuote es un QuoteDocument más metadatos de persistencia. CreatedAt se
// asigna una sola vez; UpdatedAt se actualiza en cada guardado.
type StoredQuote struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	QuoteDocument
}
