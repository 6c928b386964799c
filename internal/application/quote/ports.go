// Package quote (capa de aplicación) implementa el editor de cotizaciones:
// un documento en edición, sus operaciones de renglones y el contrato de
// guardado/apertura/borrado sobre una colección serializada bajo una sola
// clave de un almacén llave-valor.
package quote

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// CollectionStore puerto de persistencia: get/set síncronos de la colección
// completa serializada bajo una clave fija. Read devuelve nil, nil cuando la
// clave aún no existe.
type CollectionStore interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// RateCatalog puerto de solo lectura del catálogo de tarifas sugeridas.
type RateCatalog interface {
	ListAll(ctx context.Context) ([]*entity.Rate, error)
}

// PDFGenerator puerto del renderizador de documentos. Se trata como opaco: el
// editor no asume éxito y una falla degrada la operación sin abortar la sesión.
type PDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, doc entity.QuoteDocument) ([]byte, error)
}
