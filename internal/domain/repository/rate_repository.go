package repository

import "github.com/jhoicas/Cotizador-api/internal/domain/entity"

// RateRepository define el puerto de persistencia para el maestro de tarifas (DIP).
type RateRepository interface {
	Create(rate *entity.Rate) error
	GetByID(id string) (*entity.Rate, error)
	Update(rate *entity.Rate) error
	List(limit, offset int) ([]*entity.Rate, error)
	Delete(id string) (bool, error)
}
