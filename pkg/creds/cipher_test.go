package creds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCipherRejectsWrongKeyLength(t *testing.T) {
	_, err := NewCipher([]byte("too-short"))
	assert.Error(t, err)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	cipher, err := NewCipher(DeriveClusterSecret("cluster-secret"))
	require.NoError(t, err)

	plaintext := []byte("NVMeTLSkey-1:01:MDAxMTIyMzM0NDU1NjY3Nzg4OTlhYWJiY2NkZGVlZmY6")
	ciphertext, err := cipher.Encrypt(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	got, err := cipher.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestEncryptProducesDistinctCiphertextEachCall(t *testing.T) {
	cipher, err := NewCipher(DeriveClusterSecret("cluster-secret"))
	require.NoError(t, err)

	plaintext := []byte("same key bytes")
	c1, err := cipher.Encrypt(plaintext)
	require.NoError(t, err)
	c2, err := cipher.Encrypt(plaintext)
	require.NoError(t, err)

	assert.NotEqual(t, c1, c2, "fresh nonce must make each ciphertext unique")
}

func TestDecryptFailsUnderWrongKey(t *testing.T) {
	cipher1, err := NewCipher(DeriveClusterSecret("cluster-secret-a"))
	require.NoError(t, err)
	cipher2, err := NewCipher(DeriveClusterSecret("cluster-secret-b"))
	require.NoError(t, err)

	ciphertext, err := cipher1.Encrypt([]byte("secret"))
	require.NoError(t, err)

	_, err = cipher2.Decrypt(ciphertext)
	assert.Error(t, err)
}

func TestDecryptRejectsTruncatedCiphertext(t *testing.T) {
	cipher, err := NewCipher(DeriveClusterSecret("cluster-secret"))
	require.NoError(t, err)

	_, err = cipher.Decrypt([]byte("short"))
	assert.Error(t, err)
}

func TestDeriveClusterSecretIsDeterministic(t *testing.T) {
	a := DeriveClusterSecret("passphrase")
	b := DeriveClusterSecret("passphrase")
	assert.Equal(t, a, b)
	assert.Len(t, a, 32)
}
