package period_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/mikropanel/internal/period"
)

func TestParse(t *testing.T) {
	m, err := period.Parse("2025-09")
	require.NoError(t, err)
	assert.Equal(t, period.Month{Year: 2025, Month: time.September}, m)
	assert.Equal(t, "2025-09", m.String())

	_, err = period.Parse("09-2025")
	assert.ErrorIs(t, err, period.ErrInvalidMonth)
}

func TestMonth_Add(t *testing.T) {
	m := period.Month{Year: 2025, Month: time.January}

	assert.Equal(t, "2024-12", m.Add(-1).String())
	assert.Equal(t, "2026-01", m.Add(12).String())
}

func TestSeries(t *testing.T) {
	got := period.Series(period.Month{Year: 2025, Month: time.February}, 3)

	require.Len(t, got, 3)
	assert.Equal(t, "2024-12", got[0].String())
	assert.Equal(t, "2025-02", got[2].String())
}

func TestCycle(t *testing.T) {
	type testCase struct {
		name      string
		at        time.Time
		wantStart string
		wantEnd   string
	}

	tests := []testCase{
		{
			name:      "OnAnchorDay",
			at:        time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC),
			wantStart: "2025-06-05",
			wantEnd:   "2025-07-05",
		},
		{
			name:      "BeforeAnchorDay",
			at:        time.Date(2025, 6, 4, 23, 0, 0, 0, time.UTC),
			wantStart: "2025-05-05",
			wantEnd:   "2025-06-05",
		},
		{
			name:      "AcrossYear",
			at:        time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			wantStart: "2024-12-05",
			wantEnd:   "2025-01-05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := period.Cycle(tt.at, 5)

			assert.Equal(t, tt.wantStart, start.Format(time.DateOnly))
			assert.Equal(t, tt.wantEnd, end.Format(time.DateOnly))
		})
	}
}
