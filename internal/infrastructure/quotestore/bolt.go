// Package quotestore implementa el puerto quote.CollectionStore: la colección
// completa de cotizaciones guardadas serializada bajo una sola clave fija,
// leída y escrita entera en cada operación.
package quotestore

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	appquote "github.com/jhoicas/Cotizador-api/internal/application/quote"
)

const (
	boltBucket = "quotes"
	boltKey    = "collection" // único blob: el arreglo JSON completo
)

var _ appquote.CollectionStore = (*Bolt)(nil)

// Bolt almacén local sobre bbolt (archivo único, sin servidor).
type Bolt struct {
	db *bbolt.DB
}

// NewBolt abre (o crea) la base bbolt en la ruta indicada.
func NewBolt(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("abrir bbolt: %w", err)
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("crear bucket: %w", err)
	}
	return &Bolt{db: db}, nil
}

// Read devuelve el blob completo, o nil, nil si aún no se ha guardado nada.
func (b *Bolt) Read(_ context.Context) ([]byte, error) {
	var data []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(boltBucket)).Get([]byte(boltKey)); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("leer colección: %w", err)
	}
	return data, nil
}

// Write reemplaza el blob completo.
func (b *Bolt) Write(_ context.Context, data []byte) error {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Put([]byte(boltKey), data)
	})
	if err != nil {
		return fmt.Errorf("escribir colección: %w", err)
	}
	return nil
}

// Close cierra la base.
func (b *Bolt) Close() error {
	return b.db.Close()
}
