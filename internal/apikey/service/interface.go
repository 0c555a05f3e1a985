// Package service provides key material generation and hashing for API keys.
//
// Unlike password hashing, API key validation must locate the stored row by
// its hash, so the digest has to be deterministic. The implementation uses
// Argon2id keyed with a deployment-wide secret instead of a per-key salt.
package service

// KeyService defines operations for API key generation and hashing.
type KeyService interface {
	// GenerateKey creates a new cryptographically secure random key.
	// Returns both the raw key (to be shared with the caller exactly once)
	// and its deterministic hash (to be stored in the database).
	GenerateKey() (rawKey string, keyHash string, err error)

	// HashKey computes the deterministic digest of a raw key.
	// Used during validation to recompute the hash for a unique-index lookup.
	HashKey(rawKey string) string
}
