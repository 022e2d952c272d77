package importer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/mikropanel/internal/importer"
)

func TestParse_Semicolon(t *testing.T) {
	csv := `Listado de clientes - exportado 01-03-2025

Nombre;IP;MAC;Servicio;Zona;Activo
Ana Pérez;192.168.10.20;aa:bb:cc:dd:ee:01;10;Santo Suárez;sí
Luis;192.168.10.21;AA-BB-CC-DD-EE-02;6Mb;carbajal;no
`

	rows, errs, err := importer.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, rows, 2)

	assert.Equal(t, 4, rows[0].Line)
	assert.Equal(t, "Ana Pérez", rows[0].Params.Name)
	assert.Equal(t, "santo-suarez", rows[0].Params.ZoneID)
	assert.Equal(t, 10, rows[0].Params.ServiceUnits)
	assert.True(t, rows[0].Active)

	assert.Equal(t, 6, rows[1].Params.ServiceUnits)
	assert.False(t, rows[1].Active)
}

func TestParse_CommaAndColumnOrder(t *testing.T) {
	csv := "zona,mac,ip,name,mb\nbuenos-aires,AA:BB:CC:DD:EE:03,192.168.10.30,Marta,4\n"

	rows, errs, err := importer.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, rows, 1)

	assert.Equal(t, "Marta", rows[0].Params.Name)
	assert.Equal(t, "192.168.10.30", rows[0].Params.IP)
	assert.Equal(t, "buenos-aires", rows[0].Params.ZoneID)
	assert.True(t, rows[0].Active, "missing activo column defaults to active")
}

func TestParse_Latin1Encoding(t *testing.T) {
	utf8CSV := "nombre;ip;mac;servicio;zona\nJosé Muñoz;192.168.10.40;AA:BB:CC:DD:EE:04;5;San Francisco\n"

	latin1, err := charmap.Windows1252.NewEncoder().Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	rows, _, err := importer.Parse(bytes.NewReader(latin1))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "José Muñoz", rows[0].Params.Name)
	assert.Equal(t, "san-francisco", rows[0].Params.ZoneID)
}

func TestParse_BadRowsAreReported(t *testing.T) {
	csv := `nombre;ip;mac;servicio;zona;activo
Ana;192.168.10.20;AA:BB:CC:DD:EE:01;diez;carbajal;si
;;;;;
Luis;192.168.10.21;AA:BB:CC:DD:EE:02;5;carbajal;quizás
Marta;192.168.10.22;AA:BB:CC:DD:EE:03;5;carbajal;
`

	rows, errs, err := importer.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, errs, 2)

	assert.Equal(t, "Marta", rows[0].Params.Name)
	assert.Equal(t, 2, errs[0].Line)
	assert.Contains(t, errs[0].Message, "servicio")
	assert.Equal(t, 4, errs[1].Line)
	assert.Contains(t, errs[1].Message, "activo")
}

func TestParse_NoHeader(t *testing.T) {
	_, _, err := importer.Parse(strings.NewReader("nombre;ip\nAna;192.168.10.20\n"))
	assert.ErrorIs(t, err, importer.ErrNoHeader)
}

func TestParse_HeaderOnly(t *testing.T) {
	rows, errs, err := importer.Parse(strings.NewReader("nombre;ip;mac;servicio;zona"))
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, errs)
}
