package cloverpit

import (
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saveworks/save/saveerr"
)

const sampleSave = `{"gameplayData":{"coins_ByteArray":[42],"depositedCoins_ByteArray":[1,2,3],` +
	`"cloverTickets":5,"rngCards":{"seed":123456789,"stateIndex":3,"randomNumber":0.25},` +
	`"extraLuckEntries":[{"tag":"<x>","luck":1.5}]},"runsDone":2,"drawersUnlocked":[true,false,false,false],` +
	`"_unknownFutureKey":{"nested":[null,"é"]}}`

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, password := range []string{DefaultPassword, "abc"} {
		encoded := Transform([]byte(sampleSave), password)

		decoded, err := Decode(encoded, password)
		require.NoError(t, err)

		reencoded, err := Encode(decoded, password)
		require.NoError(t, err)
		// compact output reproduces the input byte for byte
		assert.Equal(t, encoded, reencoded)
		assert.Equal(t, []byte(sampleSave), Transform(reencoded, password))
	}
}

func TestEncodeDecode_Latin1(t *testing.T) {
	tests := map[string]struct {
		plain    []byte
		expected string
	}{
		"single high byte": {
			plain:    []byte("{\"name\":\"caf\xe9\"}"),
			expected: "caf\u00e9",
		},
		"utf-8 pair read as two characters": {
			plain:    []byte("{\"name\":\"caf\xc3\xa9\"}"),
			expected: "caf\u00c3\u00a9",
		},
		"invalid utf-8 byte": {
			plain:    []byte("{\"name\":\"\xff\x80\"}"),
			expected: "\u00ff\u0080",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			encoded := Transform(test.plain, DefaultPassword)

			decoded, err := Decode(encoded, DefaultPassword)
			require.NoError(t, err)
			value, ok := decoded.Get("name")
			require.True(t, ok)
			assert.Equal(t, test.expected, value)

			reencoded, err := Encode(decoded, DefaultPassword)
			require.NoError(t, err)
			assert.Equal(t, test.plain, Transform(reencoded, DefaultPassword))
		})
	}
}

func TestEncode_NarrowsWideCharacters(t *testing.T) {
	model := orderedmap.New()
	model.Set("name", "\u0141")

	encoded, err := Encode(model, DefaultPassword)
	require.NoError(t, err)
	// U+0141 keeps only its low byte
	assert.Equal(t, []byte("{\"name\":\"A\"}"), Transform(encoded, DefaultPassword))
}

func TestDecode_WrongPassword(t *testing.T) {
	encoded := Transform([]byte(sampleSave), DefaultPassword)

	_, err := Decode(encoded, "not the password")
	require.Error(t, err)
	assert.True(t, saveerr.IsFormatError(err))
}

func TestDecode_Empty(t *testing.T) {
	_, err := Decode([]byte{}, DefaultPassword)
	assert.True(t, saveerr.IsFormatError(err))
}

func TestEmptyPassword(t *testing.T) {
	_, err := Decode([]byte("{}"), "")
	assert.ErrorIs(t, err, ErrEmptyPassword)

	_, err = Encode(orderedmap.New(), "")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}
