package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MrJamesThe3rd/mikropanel/internal/client"
	enc "github.com/MrJamesThe3rd/mikropanel/internal/encoding"
	"github.com/MrJamesThe3rd/mikropanel/internal/zone"
)

var ErrNoHeader = errors.New("no header found: expected columns nombre, ip, mac, servicio and zona")

// Row is one client read from the file. Line is 1-based.
type Row struct {
	Line   int
	Params client.Params
	Active bool
}

type record struct {
	line   int
	fields []string
}

// LineError reports a row that could not be read or created.
type LineError struct {
	Line    int
	Message string
}

// Parse reads a client CSV export. The delimiter (";" or ",") is taken from
// the first non-blank line and the header may appear after any number of
// preamble lines. Rows that cannot be read are reported, not fatal.
func Parse(r io.Reader) ([]Row, []LineError, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records []record

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, nil, fmt.Errorf("read csv: %w", err)
		}

		line, _ := reader.FieldPos(0)
		records = append(records, record{line: line, fields: fields})
	}

	headerIdx := -1

	var cols colIndex

	for i, rec := range records {
		if c, ok := matchHeader(rec.fields); ok {
			headerIdx, cols = i, c
			break
		}
	}

	if headerIdx < 0 {
		return nil, nil, ErrNoHeader
	}

	var (
		rows []Row
		errs []LineError
	)

	for _, rec := range records[headerIdx+1:] {
		if blank(rec.fields) {
			continue
		}

		row, err := parseRow(rec.fields, cols)
		if err != nil {
			errs = append(errs, LineError{Line: rec.line, Message: err.Error()})
			continue
		}

		row.Line = rec.line
		rows = append(rows, row)
	}

	return rows, errs, nil
}

func detectDelimiter(data []byte) rune {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.Count(line, ",") > strings.Count(line, ";") {
			return ','
		}

		return ';'
	}

	return ';'
}

func parseRow(rec []string, cols colIndex) (Row, error) {
	unitsStr := cell(rec, cols, fieldUnits)

	units, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(unitsStr), "mb"))
	if err != nil {
		return Row{}, fmt.Errorf("servicio %q is not a whole number", unitsStr)
	}

	active, err := parseActive(cell(rec, cols, fieldActive))
	if err != nil {
		return Row{}, err
	}

	return Row{
		Params: client.Params{
			Name:         cell(rec, cols, fieldName),
			IP:           cell(rec, cols, fieldIP),
			MAC:          cell(rec, cols, fieldMAC),
			ServiceUnits: units,
			ZoneID:       zone.Slug(cell(rec, cols, fieldZone)),
		},
		Active: active,
	}, nil
}

func parseActive(s string) (bool, error) {
	switch zone.Slug(s) {
	case "", "si", "s", "true", "1", "yes", "activo", "x":
		return true, nil
	case "no", "n", "false", "0", "inactivo":
		return false, nil
	}

	return false, fmt.Errorf("activo %q is not a yes/no value", s)
}

// cell returns the trimmed value of f, or "" when the column is absent.
func cell(rec []string, cols colIndex, f field) string {
	idx, ok := cols[f]
	if !ok || idx >= len(rec) {
		return ""
	}

	return strings.TrimSpace(rec[idx])
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}

	return true
}
