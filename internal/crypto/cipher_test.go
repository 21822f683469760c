package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() []byte {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := testKey()
	plaintext := []byte(`{"id":"m-1","name":"Anna"}`)

	encrypted, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	require.NotEqual(t, plaintext, encrypted)
	// nonce + ciphertext + tag
	assert.Equal(t, len(plaintext)+NonceSize+16, len(encrypted))

	decrypted, err := Decrypt(encrypted, key)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestEncrypt_EmptyPlaintext(t *testing.T) {
	_, err := Encrypt(nil, testKey())
	assert.Error(t, err)
}

func TestEncrypt_WrongKeySize(t *testing.T) {
	_, err := Encrypt([]byte("data"), []byte("short"))
	assert.Error(t, err)
}

func TestEncrypt_UniqueNonce(t *testing.T) {
	key := testKey()
	plaintext := []byte("same input")

	first, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	second, err := Encrypt(plaintext, key)
	require.NoError(t, err)

	// Одинаковый plaintext дает разный ciphertext из-за случайного nonce
	assert.False(t, bytes.Equal(first, second))
}

func TestDecrypt_CorruptedData(t *testing.T) {
	key := testKey()

	encrypted, err := Encrypt([]byte("payload"), key)
	require.NoError(t, err)

	// Портим один байт ciphertext - GCM должен отклонить
	encrypted[len(encrypted)-1] ^= 0xFF

	_, err = Decrypt(encrypted, key)
	assert.Error(t, err)
}

func TestDecrypt_WrongKey(t *testing.T) {
	encrypted, err := Encrypt([]byte("payload"), testKey())
	require.NoError(t, err)

	otherKey := testKey()
	otherKey[0] ^= 0xFF

	_, err = Decrypt(encrypted, otherKey)
	assert.Error(t, err)
}

func TestDecrypt_TooShort(t *testing.T) {
	_, err := Decrypt([]byte("tiny"), testKey())
	assert.Error(t, err)
}

func TestCipher_RoundTrip(t *testing.T) {
	c, err := NewCipher(testKey())
	require.NoError(t, err)

	encrypted, err := c.Encrypt([]byte("record"))
	require.NoError(t, err)

	decrypted, err := c.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, []byte("record"), decrypted)
}

func TestCipher_CopiesKey(t *testing.T) {
	key := testKey()
	c, err := NewCipher(key)
	require.NoError(t, err)

	encrypted, err := c.Encrypt([]byte("record"))
	require.NoError(t, err)

	// Мутация исходного ключа не должна влиять на Cipher
	key[0] ^= 0xFF

	decrypted, err := c.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, []byte("record"), decrypted)
}

func TestNewCipher_WrongKeySize(t *testing.T) {
	_, err := NewCipher([]byte("short"))
	assert.Error(t, err)
}
