// Package quote contiene la aritmética y la edición de renglones de la
// cotización: funciones puras sobre el listado de LineItem, sin efectos y sin
// caché de valores derivados.
package quote

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// TaxRate tasa de impuesto al consumo aplicada sobre el subtotal (10%).
var TaxRate = decimal.NewFromFloat(0.10)

// Totals valores derivados del listado de renglones. Siempre se recalculan;
// nunca se persisten ni se guardan entre mutaciones.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// LineAmount devuelve cantidad × precio unitario, sin redondeo.
func LineAmount(item entity.LineItem) decimal.Decimal {
	return item.Quantity.Mul(item.UnitPrice)
}

// Subtotal suma los importes de todos los renglones. Lista vacía -> 0.
func Subtotal(items []entity.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(LineAmount(item))
	}
	return sum
}

// Tax redondea subtotal × TaxRate al entero más cercano. Empates (.5) se
// resuelven alejándose de cero, la regla de decimal.Round; para los subtotales
// no negativos de este dominio coincide con el redondeo clásico hacia arriba.
func Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(TaxRate).Round(0)
}

// Calculate recalcula los tres valores derivados a partir del listado actual.
func Calculate(items []entity.LineItem) Totals {
	subtotal := Subtotal(items)
	tax := Tax(subtotal)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
