package encoding_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/MrJamesThe3rd/mikropanel/internal/encoding"
)

const sample = "nombre;zona\nJosé Peña;Santo Suárez\n"

func readAll(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestNewUTF8Reader(t *testing.T) {
	latin1, err := charmap.Windows1252.NewEncoder().Bytes([]byte(sample))
	require.NoError(t, err)

	utf16le, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(sample))
	require.NoError(t, err)

	type testCase struct {
		name  string
		input []byte
	}

	tests := []testCase{
		{name: "UTF8Passthrough", input: []byte(sample)},
		{name: "UTF8BOMStripped", input: append([]byte{0xEF, 0xBB, 0xBF}, sample...)},
		{name: "Windows1252", input: latin1},
		{name: "UTF16LittleEndian", input: utf16le},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, sample, readAll(t, tt.input))
		})
	}
}

func TestNewUTF8Reader_LongInput(t *testing.T) {
	body := strings.Repeat("Ana;carbajal\n", 1000)

	assert.Equal(t, body, readAll(t, []byte(body)))
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	assert.Empty(t, readAll(t, nil))
}

func TestNewUTF8Reader_RuneAcrossSniffBoundary(t *testing.T) {
	// 4095 ASCII bytes put the two-byte "ñ" across the inspected prefix.
	body := strings.Repeat("a", 4095) + "ñ\n"

	assert.Equal(t, body, readAll(t, []byte(body)))
}
