package quotestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	appquote "github.com/jhoicas/Cotizador-api/internal/application/quote"
)

const redisKey = "cotizador:quotes"

var _ appquote.CollectionStore = (*Redis)(nil)

// Redis almacén compartido: el mismo blob único bajo una clave fija, útil
// cuando el editor corre en más de un host (un solo editor activo a la vez).
type Redis struct {
	client *redis.Client
}

// NewRedis construye el adaptador con un cliente ya configurado.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Read devuelve el blob completo, o nil, nil si la clave no existe.
func (r *Redis) Read(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, redisKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer colección: %w", err)
	}
	return data, nil
}

// Write reemplaza el blob completo, sin expiración.
func (r *Redis) Write(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, redisKey, data, 0).Err(); err != nil {
		return fmt.Errorf("escribir colección: %w", err)
	}
	return nil
}
