package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías base del maestro de tarifas.
const (
	RateCategoryEngineer = "技術者" // mano de obra técnica
	RateCategoryMachine  = "機械"  // maquinaria
	RateCategorySecurity = "警備"  // vigilancia
)

// Rate representa una tarifa unitaria del maestro (mano de obra, máquina o vigilancia).
// El editor de cotizaciones la consume en modo lectura como plantilla de renglón.
type Rate struct {
	ID        string
	Category  string
	Label     string
	Unit      string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
