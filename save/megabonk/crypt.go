package megabonk

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"saveworks/ds"
	"saveworks/save/saveerr"
)

const blockSize = aes.BlockSize

// Decrypt turns the Base64 text of a save into its plaintext.
func Decrypt(text []byte, config Config) ([]byte, error) {
	key, iv, err := config.Keys()
	if err != nil {
		return nil, err
	}
	ciphertext, err := decodeBase64(text)
	if err != nil {
		return nil, saveerr.NewFormatError(Game, "megabonk.Decrypt", err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%blockSize != 0 {
		return nil, saveerr.FormatErrorf(
			Game, "megabonk.Decrypt",
			"ciphertext length %d is not a positive multiple of %d", len(ciphertext), blockSize,
		)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "megabonk.Decrypt error")
	}
	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, err := unpad(padded)
	if err != nil {
		return nil, saveerr.NewFormatError(Game, "megabonk.Decrypt", errors.Wrap(err, "wrong key/iv or corrupted file"))
	}
	if len(plaintext) == 0 {
		return nil, saveerr.FormatErrorf(Game, "megabonk.Decrypt", "decryption produced empty text, wrong key/iv?")
	}
	return plaintext, nil
}

// Encrypt turns plaintext into the Base64 text the game reads.
func Encrypt(plaintext []byte, config Config) (string, error) {
	key, iv, err := config.Keys()
	if err != nil {
		return "", err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", errors.Wrap(err, "megabonk.Encrypt error")
	}
	padded := pad(plaintext)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// decodeBase64 ignores whitespace anywhere in the text and accepts input with
// the trailing padding dropped.
func decodeBase64(text []byte) ([]byte, error) {
	cleaned := strings.Map(
		func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		},
		string(text),
	)
	if strings.HasSuffix(cleaned, "=") || len(cleaned)%4 == 0 {
		return base64.StdEncoding.DecodeString(cleaned)
	}
	return base64.RawStdEncoding.DecodeString(cleaned)
}

// pad applies PKCS#7 padding up to the AES block size.
func pad(data []byte) []byte {
	n := ds.RoundUp(len(data)+1, blockSize) - len(data)
	return append(append(make([]byte, 0, len(data)+n), data...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("unpad error: invalid length")
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, errors.Errorf("unpad error: invalid padding byte %d", n)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, errors.New("unpad error: inconsistent padding")
		}
	}
	return data[:len(data)-n], nil
}
