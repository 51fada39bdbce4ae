package cloverpit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saveworks/ds"
)

func TestGetByte(t *testing.T) {
	container, err := ds.ParseObject([]byte(
		`{"coins":[7,8],"empty":[],"scalar":5,"text":["a"],"nested":[[1]],"nul":[null]}`,
	))
	require.NoError(t, err)

	tests := map[string]float64{
		"coins":   7,
		"empty":   -1,
		"scalar":  -1,
		"text":    -1,
		"nested":  -1,
		"nul":     -1,
		"missing": -1,
	}
	for key, expected := range tests {
		assert.Equal(t, expected, GetByte(container, key, -1), key)
	}

	container.Set("inf", []any{math.Inf(1)})
	assert.Equal(t, 0.0, GetByte(container, "inf", 0))
}

func TestSetByte_AbsentKeyCreatesSingleElementArray(t *testing.T) {
	container := ds.NewObject()

	SetByte(container, "coins_ByteArray", 12)

	value, _ := container.Get("coins_ByteArray")
	assert.Equal(t, []any{12.0}, value)
}

func TestSetByte_ExistingArrayKeepsLengthAndIdentity(t *testing.T) {
	container, err := ds.ParseObject([]byte(`{"coins_ByteArray":[1,2,3]}`))
	require.NoError(t, err)
	before, _ := ds.GetArray(container, "coins_ByteArray")

	SetByte(container, "coins_ByteArray", 99)

	after, _ := ds.GetArray(container, "coins_ByteArray")
	assert.Equal(t, []any{99.0, 2.0, 3.0}, after)
	assert.Same(t, &before[0], &after[0])
}

func TestSetByte_ScalarIsWrapped(t *testing.T) {
	container, err := ds.ParseObject([]byte(`{"coins_ByteArray":4}`))
	require.NoError(t, err)

	SetByte(container, "coins_ByteArray", math.NaN())

	value, _ := container.Get("coins_ByteArray")
	assert.Equal(t, []any{0.0}, value)
}
