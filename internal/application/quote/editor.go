package quote

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	domquote "github.com/jhoicas/Cotizador-api/internal/domain/quote"
	"github.com/jhoicas/Cotizador-api/pkg/logger"
)

// Editor mantiene el documento en edición y su vínculo con la colección
// guardada. Dos estados: sin guardar (currentID vacío) y guardado (currentID
// presente en la colección). Un mutex serializa las operaciones para que cada
// edición se aplique completa antes de la siguiente.
type Editor struct {
	mu      sync.Mutex
	store   CollectionStore
	catalog RateCatalog
	pdf     PDFGenerator
	log     *logger.Logger

	doc       entity.QuoteDocument
	currentID string
}

// NewEditor construye el editor con un documento nuevo por defecto.
func NewEditor(store CollectionStore, catalog RateCatalog, pdf PDFGenerator, log *logger.Logger) *Editor {
	return &Editor{
		store:   store,
		catalog: catalog,
		pdf:     pdf,
		log:     log,
		doc:     domquote.NewDocument(),
	}
}

// ── Documento en edición ──────────────────────────────────────────────────────

// Document devuelve el documento actual con sus totales recalculados.
func (e *Editor) Document() *dto.QuoteResponse {
	e.mu.Lock()
	defer e.mu.Unlock()
	return dto.ToQuoteResponse(e.currentID, e.doc)
}

// UpdateHeader reemplaza los campos de cabecera presentes en la petición.
func (e *Editor) UpdateHeader(in dto.UpdateHeaderRequest) *dto.QuoteResponse {
	e.mu.Lock()
	defer e.mu.Unlock()
	if in.Title != nil {
		e.doc.Title = *in.Title
	}
	if in.CustomerName != nil {
		e.doc.CustomerName = *in.CustomerName
	}
	if in.ProjectName != nil {
		e.doc.ProjectName = *in.ProjectName
	}
	if in.IssueDate != nil {
		e.doc.IssueDate = *in.IssueDate
	}
	return dto.ToQuoteResponse(e.currentID, e.doc)
}

// AddItem agrega un renglón por defecto al final del listado.
func (e *Editor) AddItem() *dto.QuoteResponse {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc.Items = domquote.AddItem(e.doc.Items)
	return dto.ToQuoteResponse(e.currentID, e.doc)
}

// RemoveItem elimina el renglón indicado; id ausente no cambia nada.
func (e *Editor) RemoveItem(id int64) *dto.QuoteResponse {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc.Items = domquote.RemoveItem(e.doc.Items, id)
	return dto.ToQuoteResponse(e.currentID, e.doc)
}

// UpdateItem edita un campo de un renglón; la coerción numérica la hace el dominio.
func (e *Editor) UpdateItem(id int64, in dto.UpdateItemRequest) *dto.QuoteResponse {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc.Items = domquote.UpdateField(e.doc.Items, id, domquote.Field(in.Field), in.Value)
	return dto.ToQuoteResponse(e.currentID, e.doc)
}

// InsertFromCatalog agrega un renglón a partir de una entrada del catálogo.
func (e *Editor) InsertFromCatalog(in dto.InsertFromCatalogRequest) *dto.QuoteResponse {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc.Items = domquote.InsertFromCatalog(e.doc.Items, in.Description, in.Unit, in.UnitPrice)
	return dto.ToQuoteResponse(e.currentID, e.doc)
}

// ── Persistencia ──────────────────────────────────────────────────────────────

// NewQuote descarta el documento actual y vuelve al estado sin guardar. No
// toca la colección almacenada.
func (e *Editor) NewQuote() *dto.QuoteResponse {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetLocked()
	return dto.ToQuoteResponse(e.currentID, e.doc)
}

func (e *Editor) resetLocked() {
	e.doc = domquote.NewDocument()
	e.currentID = ""
}

// Save persiste el documento. Sin guardar: asigna un id nuevo, antepone el
// registro a la colección y lo adopta como actual. Guardado: sobrescribe el
// contenido en su posición (solo el orden de creación está garantizado) y
// actualiza UpdatedAt. El estado del editor cambia únicamente si la escritura
// tuvo éxito.
func (e *Editor) Save(ctx context.Context) (*dto.QuoteResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	quotes, err := e.loadCollectionLocked(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()

	adoptID := e.currentID
	if e.currentID != "" {
		if idx := findQuote(quotes, e.currentID); idx >= 0 {
			quotes[idx].QuoteDocument = e.doc
			quotes[idx].UpdatedAt = now
		} else {
			// El registro actual desapareció del almacén: se guarda como nuevo.
			adoptID = ""
		}
	}
	if adoptID == "" {
		stored := entity.StoredQuote{
			ID:            uuid.New().String(),
			CreatedAt:     now,
			UpdatedAt:     now,
			QuoteDocument: e.doc,
		}
		quotes = append([]entity.StoredQuote{stored}, quotes...)
		adoptID = stored.ID
	}

	if err := e.writeCollectionLocked(ctx, quotes); err != nil {
		return nil, err
	}
	e.currentID = adoptID
	return dto.ToQuoteResponse(e.currentID, e.doc), nil
}

// Open carga una cotización guardada en el editor. Si el id no existe devuelve
// domain.ErrNotFound; una falla del almacén se propaga tal cual. El estado
// previo queda intacto en ambos casos.
func (e *Editor) Open(ctx context.Context, id string) (*dto.QuoteResponse, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	quotes, err := e.loadCollectionLocked(ctx)
	if err != nil {
		return nil, err
	}
	idx := findQuote(quotes, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	e.doc = quotes[idx].QuoteDocument
	e.currentID = quotes[idx].ID
	return dto.ToQuoteResponse(e.currentID, e.doc), nil
}

// Delete elimina una cotización guardada. Si era la actual, el editor vuelve a
// un documento nuevo sin guardar.
func (e *Editor) Delete(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	quotes, err := e.loadCollectionLocked(ctx)
	if err != nil {
		return err
	}
	idx := findQuote(quotes, id)
	if idx < 0 {
		return domain.ErrNotFound
	}
	quotes = append(quotes[:idx], quotes[idx+1:]...)
	if err := e.writeCollectionLocked(ctx, quotes); err != nil {
		return err
	}
	if id == e.currentID {
		e.resetLocked()
	}
	return nil
}

// List devuelve el resumen de las cotizaciones guardadas, en su orden
// almacenado. El listado es solo lectura: si el almacén no responde se degrada
// a lista vacía con aviso, sin riesgo de escribir de vuelta.
func (e *Editor) List(ctx context.Context) *dto.StoredQuoteListResponse {
	e.mu.Lock()
	defer e.mu.Unlock()

	quotes, err := e.loadCollectionLocked(ctx)
	if err != nil {
		e.log.Warn().Err(err).Msg("listar colección de cotizaciones")
	}
	items := make([]dto.StoredQuoteSummary, 0, len(quotes))
	for _, q := range quotes {
		items = append(items, dto.StoredQuoteSummary{
			ID:           q.ID,
			Title:        q.Title,
			CustomerName: q.CustomerName,
			ProjectName:  q.ProjectName,
			IssueDate:    q.IssueDate,
			ItemCount:    len(q.Items),
			CreatedAt:    q.CreatedAt,
			UpdatedAt:    q.UpdatedAt,
		})
	}
	return &dto.StoredQuoteListResponse{Items: items}
}

// ── Colaboradores ─────────────────────────────────────────────────────────────

// Catalog lista las tarifas sugeridas. Si el colaborador falla la operación se
// degrada a lista vacía con aviso, nunca aborta la sesión.
func (e *Editor) Catalog(ctx context.Context) *dto.CatalogResponse {
	rates, err := e.catalog.ListAll(ctx)
	if err != nil {
		e.log.Warn().Err(err).Msg("catálogo de tarifas no disponible")
		return &dto.CatalogResponse{
			Items:   []dto.CatalogEntryResponse{},
			Warning: domain.ErrCatalogUnavailable.Error(),
		}
	}
	items := make([]dto.CatalogEntryResponse, 0, len(rates))
	for _, r := range rates {
		items = append(items, dto.CatalogEntryResponse{
			ID:       r.ID,
			Category: r.Category,
			Label:    r.Label,
			Unit:     r.Unit,
			Price:    r.Price,
		})
	}
	return &dto.CatalogResponse{Items: items}
}

// ExportPDF renderiza el documento actual. El renderizador es opaco: su error
// se propaga para avisar al usuario, pero el documento y la colección quedan
// exactamente como estaban.
func (e *Editor) ExportPDF(ctx context.Context) ([]byte, error) {
	e.mu.Lock()
	doc := e.doc
	e.mu.Unlock()

	data, err := e.pdf.GenerateQuotePDF(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("exportar PDF: %w", err)
	}
	return data, nil
}

// ── Internos ──────────────────────────────────────────────────────────────────

// loadCollectionLocked lee y decodifica la colección completa. Un blob
// corrupto degrada a colección vacía con aviso; una falla de lectura se
// propaga, porque escribir sobre una colección reconstruida desde una lectura
// fallida destruiría lo guardado.
func (e *Editor) loadCollectionLocked(ctx context.Context) ([]entity.StoredQuote, error) {
	data, err := e.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("leer colección de cotizaciones: %w", err)
	}
	quotes, ok := decodeCollection(data)
	if !ok {
		e.log.Warn().Msg("colección de cotizaciones corrupta; se trata como vacía")
	}
	return quotes, nil
}

func (e *Editor) writeCollectionLocked(ctx context.Context, quotes []entity.StoredQuote) error {
	data, err := encodeCollection(quotes)
	if err != nil {
		return fmt.Errorf("serializar colección: %w", err)
	}
	if err := e.store.Write(ctx, data); err != nil {
		return fmt.Errorf("persistir colección: %w", err)
	}
	return nil
}

func findQuote(quotes []entity.StoredQuote, id string) int {
	for i, q := range quotes {
		if q.ID == id {
			return i
		}
	}
	return -1
}
