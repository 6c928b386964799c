package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

var _ repository.RateRepository = (*RateRepo)(nil)

// RateRepo implementación del puerto RateRepository sobre PostgreSQL.
type RateRepo struct {
	q Querier
}

// NewRateRepository construye el adaptador de persistencia para tarifas.
func NewRateRepository(q Querier) *RateRepo {
	return &RateRepo{q: q}
}

// Create persiste una tarifa nueva.
func (r *RateRepo) Create(rate *entity.Rate) error {
	query := `
		INSERT INTO rates (id, category, label, unit, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		rate.ID, rate.Category, rate.Label, rate.Unit, rate.Price, rate.CreatedAt, rate.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert rate: %w", err)
	}
	return nil
}

// GetByID obtiene una tarifa por ID. Devuelve nil, nil si no existe.
func (r *RateRepo) GetByID(id string) (*entity.Rate, error) {
	query := `
		SELECT id, category, label, unit, price, created_at, updated_at
		FROM rates WHERE id = $1`
	var rate entity.Rate
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rate.ID, &rate.Category, &rate.Label, &rate.Unit, &rate.Price, &rate.CreatedAt, &rate.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rate: %w", err)
	}
	return &rate, nil
}

// Update actualiza una tarifa existente.
func (r *RateRepo) Update(rate *entity.Rate) error {
	query := `
		UPDATE rates SET category = $2, label = $3, unit = $4, price = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rate.ID, rate.Category, rate.Label, rate.Unit, rate.Price, rate.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update rate: %w", err)
	}
	return nil
}

// List lista tarifas ordenadas por categoría y etiqueta, con paginación.
func (r *RateRepo) List(limit, offset int) ([]*entity.Rate, error) {
	query := `
		SELECT id, category, label, unit, price, created_at, updated_at
		FROM rates ORDER BY category, label LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list rates: %w", err)
	}
	defer rows.Close()
	var list []*entity.Rate
	for rows.Next() {
		var rate entity.Rate
		if err := rows.Scan(&rate.ID, &rate.Category, &rate.Label, &rate.Unit, &rate.Price,
			&rate.CreatedAt, &rate.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan rate: %w", err)
		}
		list = append(list, &rate)
	}
	return list, rows.Err()
}

// Delete elimina una tarifa por ID. Devuelve false si no existía.
func (r *RateRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM rates WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete rate: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
