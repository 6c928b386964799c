package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/quote"
)

// QuoteItemResponse un renglón con su importe derivado.
type QuoteItemResponse struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

// QuoteResponse el documento en edición con sus totales recalculados.
type QuoteResponse struct {
	CurrentID    string              `json:"currentId,omitempty"` // vacío = sin guardar
	Title        string              `json:"title"`
	CustomerName string              `json:"customerName"`
	ProjectName  string              `json:"projectName"`
	IssueDate    string              `json:"issueDate"`
	Items        []QuoteItemResponse `json:"items"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
	Tax          decimal.Decimal     `json:"tax"`
	Total        decimal.Decimal     `json:"total"`
}

// ToQuoteResponse arma la respuesta derivando importe por renglón y totales.
func ToQuoteResponse(currentID string, doc entity.QuoteDocument) *QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, QuoteItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			Amount:      quote.LineAmount(it),
		})
	}
	totals := quote.Calculate(doc.Items)
	return &QuoteResponse{
		CurrentID:    currentID,
		Title:        doc.Title,
		CustomerName: doc.CustomerName,
		ProjectName:  doc.ProjectName,
		IssueDate:    doc.IssueDate,
		Items:        items,
		Subtotal:     totals.Subtotal,
		Tax:          totals.Tax,
		Total:        totals.Total,
	}
}

// UpdateHeaderRequest entrada para editar la cabecera del documento.
type UpdateHeaderRequest struct {
	Title        *string `json:"title"`
	CustomerName *string `json:"customerName"`
	ProjectName  *string `json:"projectName"`
	IssueDate    *string `json:"issueDate"` // YYYY-MM-DD
}

// UpdateItemRequest entrada para editar un campo de un renglón. Los valores
// llegan como texto y la coerción numérica ocurre en el dominio.
type UpdateItemRequest struct {
	Field string `json:"field" validate:"required,oneof=description quantity unit unitPrice"`
	Value string `json:"value"`
}

// InsertFromCatalogRequest entrada para insertar una plantilla del catálogo.
type InsertFromCatalogRequest struct {
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// StoredQuoteSummary resumen de una cotización guardada (listado lateral).
type StoredQuoteSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	CustomerName string    `json:"customerName"`
	ProjectName  string    `json:"projectName"`
	IssueDate    string    `json:"issueDate"`
	ItemCount    int       `json:"itemCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// StoredQuoteListResponse listado de cotizaciones guardadas.
type StoredQuoteListResponse struct {
	Items []StoredQuoteSummary `json:"items"`
}

// CatalogEntryResponse entrada del catálogo de tarifas sugeridas.
type CatalogEntryResponse struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Label    string          `json:"label"`
	Unit     string          `json:"unit"`
	Price    decimal.Decimal `json:"price"`
}

// CatalogResponse catálogo completo; Warning se llena cuando el colaborador
// no está disponible y se degrada a lista vacía.
type CatalogResponse struct {
	Items   []CatalogEntryResponse `json:"items"`
	Warning string                 `json:"warning,omitempty"`
}
