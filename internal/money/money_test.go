package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/mikropanel/internal/money"
)

func TestParse(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}

	tests := []testCase{
		{name: "Integer", input: "15", want: 1500},
		{name: "Dot", input: "3.75", want: 375},
		{name: "Comma", input: "3,75", want: 375},
		{name: "RoundsHalfUp", input: "0.125", want: 13},
		{name: "Empty", input: " ", wantErr: true},
		{name: "Garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, int64(10000), money.Ratio(10000, 30, 30))
	assert.Equal(t, int64(333), money.Ratio(10000, 1, 30))
	assert.Equal(t, int64(0), money.Ratio(10000, 1, 0))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "12.34", money.Format(1234))
	assert.Equal(t, "-0.50", money.Format(-50))
	assert.Equal(t, int64(525), money.FromDecimal(decimal.RequireFromString("5.25")))
}
