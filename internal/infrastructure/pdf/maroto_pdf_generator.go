// Package pdf implementa la representación imprimible de la cotización
// (御見積書) usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: 御見積書            │  見積日 (fecha de emisión)    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  顧客名 (cliente 御中)  /  案件名 (proyecto)                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: No | 品名・内容 | 数量 | 単位 | 単価 | 金額          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: 小計 / 消費税（10%） / 合計                        │
//	└─────────────────────────────────────────────────────────────┘
//
// La fuente UTF-8 es opcional: si no se puede cargar (ruta ausente, descarga
// fallida) se registra un aviso y el documento se genera con la fuente por
// defecto, nunca se aborta la exportación.
package pdf

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	coreentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	appquote "github.com/jhoicas/Cotizador-api/internal/application/quote"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	domquote "github.com/jhoicas/Cotizador-api/internal/domain/quote"
	"github.com/jhoicas/Cotizador-api/pkg/logger"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 40, Green: 40, Blue: 40}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// jp agrupa cifras al estilo toLocaleString: 13000 -> 13,000.
var jp = message.NewPrinter(language.Japanese)

func formatAmount(d decimal.Decimal) string {
	f, _ := d.Float64()
	return jp.Sprintf("%v", number.Decimal(f, number.MaxFractionDigits(2)))
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appquote.PDFGenerator = (*MarotoPDFGenerator)(nil)

// FontConfig fuente tipográfica opcional para caracteres japoneses.
type FontConfig struct {
	Family string // nombre de familia a registrar (ej: ipaexg)
	Path   string // ruta local del .ttf
	URL    string // descarga única si Path está vacío
}

// MarotoPDFGenerator implementa quote.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	log  *logger.Logger
	font FontConfig

	loadOnce    sync.Once
	customFonts []*coreentity.CustomFont
}

// NewMarotoPDFGenerator construye el generador. La fuente se resuelve de forma
// perezosa en la primera exportación.
func NewMarotoPDFGenerator(log *logger.Logger, font FontConfig) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{log: log, font: font}
}

// GenerateQuotePDF genera el PDF de la cotización y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateQuotePDF(_ context.Context, doc entity.QuoteDocument) ([]byte, error) {
	m := maroto.New(g.buildConfig())

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(doc.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(domquote.Calculate(doc.Items)))

	pdfDoc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return pdfDoc.GetBytes(), nil
}

// buildConfig arma la configuración Maroto, con la fuente UTF-8 si se pudo cargar.
func (g *MarotoPDFGenerator) buildConfig() *coreentity.Config {
	g.loadOnce.Do(g.loadFont)

	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithTitle("御見積書", true)

	if g.customFonts != nil {
		builder = builder.
			WithCustomFonts(g.customFonts).
			WithDefaultFont(&props.Font{Family: g.font.Family, Size: 9})
	} else {
		builder = builder.WithDefaultFont(&props.Font{Family: "helvetica", Size: 9})
	}

	return builder.Build()
}

// loadFont resuelve la fuente desde la ruta local o la descarga una vez.
// Cualquier falla deja customFonts en nil: modo degradado con aviso.
func (g *MarotoPDFGenerator) loadFont() {
	if g.font.Family == "" || (g.font.Path == "" && g.font.URL == "") {
		return
	}

	path := g.font.Path
	if path == "" {
		downloaded, err := g.fetchFont()
		if err != nil {
			g.log.Warn().Err(err).Str("url", g.font.URL).
				Msg("descarga de fuente fallida; se exporta con la fuente por defecto")
			return
		}
		path = downloaded
	}

	fonts, err := repository.New().
		AddUTF8Font(g.font.Family, fontstyle.Normal, path).
		AddUTF8Font(g.font.Family, fontstyle.Bold, path).
		Load()
	if err != nil {
		g.log.Warn().Err(err).Str("path", path).
			Msg("carga de fuente fallida; se exporta con la fuente por defecto")
		return
	}
	g.customFonts = fonts
}

// fetchFont descarga el .ttf a un archivo temporal. Petición única, sin
// reintentos: el export nunca espera más de un intento.
func (g *MarotoPDFGenerator) fetchFont() (string, error) {
	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Get(g.font.URL)
	if err != nil {
		return "", fmt.Errorf("descargar fuente: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("descargar fuente: HTTP %d", resp.StatusCode)
	}

	path := filepath.Join(os.TempDir(), g.font.Family+".ttf")
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("crear archivo de fuente: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("guardar fuente: %w", err)
	}
	return path, nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de emisión (der).
func headerRow(doc entity.QuoteDocument) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(doc.Title, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("見積日: "+doc.IssueDate, props.Text{
				Size: 9, Align: align.Right, Top: 6, Color: colorGray,
			}),
		),
	)
}

// customerRow: cliente y proyecto.
func customerRow(doc entity.QuoteDocument) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New(doc.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 1,
			}),
			text.New("案件名: "+doc.ProjectName, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de renglones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("No", 1, align.Center),
		h("品名・内容", 5, align.Left),
		h("数量", 1, align.Right),
		h("単位", 1, align.Center),
		h("単価", 2, align.Right),
		h("金額", 2, align.Right),
	)
}

// tableItemRows: una fila por renglón, numerada en el orden del documento.
func tableItemRows(items []entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for i, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				strconv.Itoa(i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				it.Unit,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatAmount(it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatAmount(domquote.LineAmount(it)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(totals domquote.Totals) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("小計:"),
			label("消費税（10%）:"),
			grandLabel("合計:"),
		),
		col.New(4).Add(
			value(formatAmount(totals.Subtotal)+" 円"),
			value(formatAmount(totals.Tax)+" 円"),
			grandValue(formatAmount(totals.Total)+" 円"),
		),
	)
}
