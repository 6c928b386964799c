package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// RateUseCase casos de uso CRUD del maestro de tarifas.
type RateUseCase struct {
	repo repository.RateRepository
}

// NewRateUseCase construye el caso de uso.
func NewRateUseCase(repo repository.RateRepository) *RateUseCase {
	return &RateUseCase{repo: repo}
}

// Create crea una tarifa nueva con ID asignado por el servidor. Category y
// Label son obligatorios; su ausencia devuelve domain.ErrInvalidInput.
func (uc *RateUseCase) Create(in dto.CreateRateRequest) (*dto.RateResponse, error) {
	if in.Category == "" || in.Label == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	rate := &entity.Rate{
		ID:        uuid.New().String(),
		Category:  in.Category,
		Label:     in.Label,
		Unit:      in.Unit,
		Price:     in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(rate); err != nil {
		return nil, err
	}
	return toRateResponse(rate), nil
}

// GetByID obtiene una tarifa por ID. Devuelve nil, nil si no existe.
func (uc *RateUseCase) GetByID(id string) (*dto.RateResponse, error) {
	rate, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, nil
	}
	return toRateResponse(rate), nil
}

// List lista tarifas con paginación.
func (uc *RateUseCase) List(limit, offset int) (*dto.RateListResponse, error) {
	rates, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RateResponse, 0, len(rates))
	for _, r := range rates {
		items = append(items, *toRateResponse(r))
	}
	return &dto.RateListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza los campos presentes de una tarifa. Devuelve nil, nil si no existe.
func (uc *RateUseCase) Update(id string, in dto.UpdateRateRequest) (*dto.RateResponse, error) {
	rate, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, nil
	}
	if in.Category != nil {
		rate.Category = *in.Category
	}
	if in.Label != nil {
		rate.Label = *in.Label
	}
	if in.Unit != nil {
		rate.Unit = *in.Unit
	}
	if in.Price != nil {
		rate.Price = *in.Price
	}
	rate.UpdatedAt = time.Now()
	if err := uc.repo.Update(rate); err != nil {
		return nil, err
	}
	return toRateResponse(rate), nil
}

// Delete elimina una tarifa. Devuelve false si no existía.
func (uc *RateUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

func toRateResponse(r *entity.Rate) *dto.RateResponse {
	return &dto.RateResponse{
		ID:        r.ID,
		Category:  r.Category,
		Label:     r.Label,
		Unit:      r.Unit,
		Price:     r.Price,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
