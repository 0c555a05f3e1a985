package service

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/argon2"

	apperrors "github.com/allisson/identity/internal/errors"
)

// Argon2id parameters. Tuned for credential hashing on the validation hot
// path; the keyed secret, not the cost, carries the offline-attack defense.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32

	rawKeyBytes = 20
)

// keyService implements KeyService using keyed Argon2id for key hashing.
type keyService struct {
	secret []byte
}

// GenerateKey creates a new cryptographically secure 20-byte random key.
// The key is hex-encoded for easy transmission and storage.
// Returns the raw key and its deterministic Argon2id hash.
func (k *keyService) GenerateKey() (rawKey string, keyHash string, error error) {
	randomBytes := make([]byte, rawKeyBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate random key")
	}

	rawKey = hex.EncodeToString(randomBytes)
	keyHash = k.HashKey(rawKey)

	return rawKey, keyHash, nil
}

// HashKey hashes a raw key using Argon2id keyed with the deployment secret.
// The secret takes the place of a per-key salt so the same input always
// produces the same digest. Returns the hash as a hexadecimal string.
func (k *keyService) HashKey(rawKey string) string {
	digest := argon2.IDKey([]byte(rawKey), k.secret, argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(digest)
}

// NewKeyService creates a new KeyService. The secret must be a
// deployment-wide value shared by every instance that validates keys.
func NewKeyService(secret string) KeyService {
	return &keyService{secret: []byte(secret)}
}
