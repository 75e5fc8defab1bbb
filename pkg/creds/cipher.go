package creds

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/nvmeof/gateway/pkg/gwerr"
)

// Cipher encrypts key bytes under the gateway-cluster secret before
// they are written to the state map, so raw credential material never
// travels the cluster store in the clear. AES-256-GCM, instantiated
// explicitly rather than held in a package-level variable.
type Cipher struct {
	key []byte // 32 bytes, AES-256
}

// NewCipher wraps a 32-byte key.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("creds: cluster secret must be 32 bytes, got %d", len(key))
	}
	return &Cipher{key: key}, nil
}

// DeriveClusterSecret hashes an arbitrary-length passphrase (e.g. the
// value loaded from .env by pkg/config) into a 32-byte AES-256 key.
func DeriveClusterSecret(passphrase string) []byte {
	h := sha256.Sum256([]byte(passphrase))
	return h[:]
}

// Encrypt seals plaintext with a fresh nonce, prepended to the output.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	gcm, err := c.gcm()
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, gwerr.Wrap(gwerr.Internal, err, "creds: generating nonce")
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt reverses Encrypt.
func (c *Cipher) Decrypt(ciphertext []byte) ([]byte, error) {
	gcm, err := c.gcm()
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, gwerr.New(gwerr.Internal, "creds: ciphertext too short")
	}
	nonce, body := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, body, nil)
	if err != nil {
		return nil, gwerr.Wrap(gwerr.Internal, err, "creds: decrypting key material")
	}
	return plaintext, nil
}

func (c *Cipher) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, gwerr.Wrap(gwerr.Internal, err, "creds: building AES cipher")
	}
	return cipher.NewGCM(block)
}
