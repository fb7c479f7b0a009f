// Package secure seals values before they reach a KV store, standing in for the
// device secure storage the mobile client keeps tokens in.
package secure

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"marketplace-bff/internal/storage"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

// Box encrypts and authenticates values with NaCl secretbox.
type Box struct {
	key [32]byte
}

// NewBox derives a 32 byte key from secret.
func NewBox(secret string) (*Box, error) {
	if secret == "" {
		return nil, errors.New("secure: empty secret")
	}
	return &Box{key: sha256.Sum256([]byte(secret))}, nil
}

// Seal returns nonce||ciphertext.
func (b *Box) Seal(plain []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("secure: generating nonce: %w", err)
	}
	return secretbox.Seal(nonce[:], plain, &nonce, &b.key), nil
}

// Open reverses Seal.
func (b *Box) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < nonceSize+secretbox.Overhead {
		return nil, storage.ErrTampered
	}
	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])
	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &b.key)
	if !ok {
		return nil, storage.ErrTampered
	}
	return plain, nil
}

// Store wraps a KVStore so every value is sealed at rest.
type Store struct {
	inner storage.KVStore
	box   *Box
}

// NewStore wraps inner with box.
func NewStore(inner storage.KVStore, box *Box) *Store {
	return &Store{inner: inner, box: box}
}

var _ storage.KVStore = (*Store)(nil)

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return s.box.Open(sealed)
}

func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	sealed, err := s.box.Seal(value)
	if err != nil {
		return err
	}
	return s.inner.Set(ctx, key, sealed, ttl)
}

func (s *Store) Delete(ctx context.Context, keys ...string) error {
	return s.inner.Delete(ctx, keys...)
}
