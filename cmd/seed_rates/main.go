// seed_rates genera el script SQL que puebla el maestro de tarifas a partir
// de un CSV de tarifas unitarias (columnas: category,label,unit,price).
// Acepta CSV en UTF-8 o Shift_JIS (habitual en planillas exportadas de Excel
// japonés); la codificación se detecta por el BOM o por bytes inválidos.
//
// Uso: go run ./cmd/seed_rates [ruta/tarifas.csv]
// Por defecto busca data/rates.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_rates.sql
package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

type rateRow struct {
	category string
	label    string
	unit     string
	price    decimal.Decimal
}

func main() {
	csvPath := filepath.Join("data", "rates.csv")
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	raw = normalizeEncoding(raw)

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parsear CSV: %v\n", err)
		os.Exit(1)
	}

	var rows []rateRow
	for i, rec := range records {
		if len(rec) < 4 {
			fmt.Fprintf(os.Stderr, "Fila %d: se esperan 4 columnas (category,label,unit,price)\n", i+1)
			os.Exit(1)
		}
		// Encabezado opcional
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "category") {
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(rec[3]))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Fila %d: precio inválido %q\n", i+1, rec[3])
			os.Exit(1)
		}
		rows = append(rows, rateRow{
			category: strings.TrimSpace(rec[0]),
			label:    strings.TrimSpace(rec[1]),
			unit:     strings.TrimSpace(rec[2]),
			price:    price,
		})
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "CSV sin filas de datos")
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_rates.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Maestro de tarifas unitarias (generado desde CSV)\n\n")
	out.WriteString("INSERT INTO rates (id, category, label, unit, price) VALUES\n")
	for i, r := range rows {
		sep := ","
		if i == len(rows)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  (gen_random_uuid(), '%s', '%s', '%s', %s)%s\n",
			escapeSQL(r.category), escapeSQL(r.label), escapeSQL(r.unit), r.price.String(), sep)
	}
	out.WriteString("ON CONFLICT (category, label) DO UPDATE SET unit = EXCLUDED.unit, price = EXCLUDED.price, updated_at = now();\n")

	fmt.Printf("Generado %s: %d tarifas\n", outPath, len(rows))
}

// normalizeEncoding devuelve el contenido en UTF-8: quita el BOM si lo hay y
// decodifica Shift_JIS cuando el contenido no es UTF-8 válido.
func normalizeEncoding(raw []byte) []byte {
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(raw) {
		return raw
	}
	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), raw)
	if err != nil {
		// Se deja tal cual; el parser de CSV reportará el problema.
		return raw
	}
	return decoded
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
