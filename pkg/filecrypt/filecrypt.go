// Package filecrypt encrypts uploaded attachments at rest with AES-256-GCM.
// Each ciphertext carries its random nonce as a prefix, so a stored file is
// self-contained and can be decrypted with the key alone.
package filecrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
)

// KeyFromSecret derives a 32-byte AES key from the configured secret string.
func KeyFromSecret(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return sum[:]
}

// Encrypt seals data with AES-GCM. The returned slice is nonce||ciphertext.
func Encrypt(data, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return aesGCM.Seal(nonce, nonce, data, nil), nil
}

// Decrypt opens a nonce||ciphertext blob produced by Encrypt.
func Decrypt(blob, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(blob) < aesGCM.NonceSize() {
		return nil, fmt.Errorf("ciphertext shorter than nonce (%d bytes)", len(blob))
	}
	nonce, ciphertext := blob[:aesGCM.NonceSize()], blob[aesGCM.NonceSize():]
	return aesGCM.Open(nil, nonce, ciphertext, nil)
}
