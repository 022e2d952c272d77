package importer

import (
	"strings"

	"github.com/MrJamesThe3rd/mikropanel/internal/zone"
)

// field identifies a client attribute read from the file.
type field int

const (
	fieldName field = iota
	fieldIP
	fieldMAC
	fieldUnits
	fieldZone
	fieldActive
)

// aliases lists the accepted header names per field, already normalized.
// Header cells are lower-cased and accent-folded before lookup.
var aliases = map[field][]string{
	fieldName:   {"nombre", "name", "cliente"},
	fieldIP:     {"ip"},
	fieldMAC:    {"mac"},
	fieldUnits:  {"servicio", "mb", "service_units"},
	fieldZone:   {"zona", "zone", "red", "calle"},
	fieldActive: {"activo", "active", "estado"},
}

// required fields must all be present for a row to be taken as the header.
var required = []field{fieldName, fieldIP, fieldMAC, fieldUnits, fieldZone}

// colIndex maps fields to their column in the header row.
type colIndex map[field]int

func normalizeHeader(s string) string {
	return strings.ReplaceAll(zone.Slug(s), "-", "_")
}

func matchHeader(row []string) (colIndex, bool) {
	cols := make(colIndex)

	for i, cell := range row {
		name := normalizeHeader(cell)
		if name == "" {
			continue
		}

		for f, names := range aliases {
			for _, alias := range names {
				if name == alias {
					if _, seen := cols[f]; !seen {
						cols[f] = i
					}
				}
			}
		}
	}

	for _, f := range required {
		if _, ok := cols[f]; !ok {
			return nil, false
		}
	}

	return cols, true
}
