package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRateRequest entrada para crear una tarifa del maestro.
type CreateRateRequest struct {
	Category string          `json:"category" validate:"required,min=1,max=50"`
	Label    string          `json:"label" validate:"required,min=1,max=200"`
	Unit     string          `json:"unit"`
	Price    decimal.Decimal `json:"price"`
}

// UpdateRateRequest entrada para actualizar una tarifa (campos opcionales).
type UpdateRateRequest struct {
	Category *string          `json:"category" validate:"omitempty,min=1,max=50"`
	Label    *string          `json:"label" validate:"omitempty,min=1,max=200"`
	Unit     *string          `json:"unit"`
	Price    *decimal.Decimal `json:"price"`
}

// RateResponse salida de una tarifa.
type RateResponse struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Label     string          `json:"label"`
	Unit      string          `json:"unit"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// RateListResponse lista paginada de tarifas.
type RateListResponse struct {
	Items []RateResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
