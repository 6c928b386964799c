package quote

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// Valores por defecto del documento y sus renglones.
const (
	DefaultTitle = "御見積書"
	DefaultUnit  = "式"
)

// Field nombres de campo editables de un renglón.
type Field string

const (
	FieldDescription Field = "description"
	FieldQuantity    Field = "quantity"
	FieldUnit        Field = "unit"
	FieldUnitPrice   Field = "unitPrice"
)

// NewDocument crea un documento por defecto: título fijo, fecha de emisión de
// hoy y un renglón inicial con cantidad 1 y unidad 式.
func NewDocument() entity.QuoteDocument {
	return entity.QuoteDocument{
		Title:     DefaultTitle,
		IssueDate: time.Now().Format("2006-01-02"),
		Items: []entity.LineItem{
			{
				ID:        1,
				Quantity:  decimal.NewFromInt(1),
				Unit:      DefaultUnit,
				UnitPrice: decimal.Zero,
			},
		},
	}
}

// ParseAmount coerción numérica total en la frontera de edición: texto no
// numérico o vacío se convierte en 0, nunca en error.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// nextItemID genera un identificador derivado del reloj (milisegundos Unix),
// estrictamente mayor que todos los existentes para que nunca colisione
// durante la vida del documento, incluso con altas consecutivas en el mismo
// milisegundo.
func nextItemID(items []entity.LineItem) int64 {
	id := time.Now().UnixMilli()
	for _, item := range items {
		if item.ID >= id {
			id = item.ID + 1
		}
	}
	return id
}

// AddItem devuelve un nuevo listado con un renglón por defecto al final:
// cantidad 1, descripción y unidad vacías, precio 0. No muta el listado de
// entrada.
func AddItem(items []entity.LineItem) []entity.LineItem {
	out := make([]entity.LineItem, len(items), len(items)+1)
	copy(out, items)
	return append(out, entity.LineItem{
		ID:        nextItemID(items),
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: decimal.Zero,
	})
}

// InsertFromCatalog agrega en una sola operación un renglón con descripción,
// unidad y precio tomados de la entrada del catálogo y cantidad 1, sin estado
// intermedio observable.
func InsertFromCatalog(items []entity.LineItem, description, unit string, unitPrice decimal.Decimal) []entity.LineItem {
	out := make([]entity.LineItem, len(items), len(items)+1)
	copy(out, items)
	return append(out, entity.LineItem{
		ID:          nextItemID(items),
		Description: description,
		Quantity:    decimal.NewFromInt(1),
		Unit:        unit,
		UnitPrice:   unitPrice,
	})
}

// RemoveItem devuelve el listado sin el renglón indicado. Si el id no existe
// devuelve el listado de entrada sin cambios.
func RemoveItem(items []entity.LineItem, id int64) []entity.LineItem {
	idx := indexOf(items, id)
	if idx < 0 {
		return items
	}
	out := make([]entity.LineItem, 0, len(items)-1)
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...)
}

// UpdateField devuelve el listado con el campo indicado del renglón objetivo
// reemplazado. Campos numéricos pasan por ParseAmount; los textuales se
// almacenan tal cual. Id ausente o campo desconocido: sin cambios.
func UpdateField(items []entity.LineItem, id int64, field Field, value string) []entity.LineItem {
	idx := indexOf(items, id)
	if idx < 0 {
		return items
	}
	item := items[idx]
	switch field {
	case FieldDescription:
		item.Description = value
	case FieldQuantity:
		item.Quantity = ParseAmount(value)
	case FieldUnit:
		item.Unit = value
	case FieldUnitPrice:
		item.UnitPrice = ParseAmount(value)
	default:
		return items
	}
	out := make([]entity.LineItem, len(items))
	copy(out, items)
	out[idx] = item
	return out
}

func indexOf(items []entity.LineItem, id int64) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
