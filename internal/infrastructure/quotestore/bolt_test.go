package quotestore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/infrastructure/quotestore"
)

func TestBolt_ClaveInexistenteDevuelveNil(t *testing.T) {
	store, err := quotestore.NewBolt(filepath.Join(t.TempDir(), "quotes.db"))
	require.NoError(t, err)
	defer store.Close()

	data, err := store.Read(context.Background())

	require.NoError(t, err)
	assert.Nil(t, data, "sin guardados previos no hay blob")
}

func TestBolt_EscrituraYLecturaDelBlobCompleto(t *testing.T) {
	store, err := quotestore.NewBolt(filepath.Join(t.TempDir(), "quotes.db"))
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	blob := []byte(`[{"id":"q1","title":"御見積書","items":[]}]`)
	require.NoError(t, store.Write(ctx, blob))

	got, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, blob, got)

	// Una segunda escritura reemplaza el blob entero.
	require.NoError(t, store.Write(ctx, []byte(`[]`)))
	got, err = store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}
