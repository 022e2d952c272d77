package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/mikropanel/internal/validation"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Units int    `json:"units" validate:"min=1,max=50"`
	Role  string `json:"role" validate:"omitempty,oneof=admin tech"`
}

func TestStruct(t *testing.T) {
	err := validation.Struct(sample{Units: 60, Role: "boss"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrInvalid))

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is required", verr.Fields["name"])
	assert.Equal(t, "must be at most 50", verr.Fields["units"])
	assert.Equal(t, "must be one of: admin tech", verr.Fields["role"])

	assert.NoError(t, validation.Struct(sample{Name: "Ana", Units: 10}))
}

func TestError_Add(t *testing.T) {
	var e validation.Error
	assert.NoError(t, e.Err())

	e.Add("ip", "first")
	e.Add("ip", "second")

	assert.Equal(t, "first", e.Fields["ip"])
	assert.EqualError(t, e.Err(), "invalid input: ip: first")
}
