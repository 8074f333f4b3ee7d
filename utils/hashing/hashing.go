// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

const (
	HashLen = sha256.Size

	// SHA256 names the SHA-256 digest.
	SHA256 = "sha256"
	// Blake2b256 names the 256 bit BLAKE2b digest.
	Blake2b256 = "blake2b-256"
)

var (
	ErrInvalidHashLen       = errors.New("invalid hash length")
	ErrUnknownHashAlgorithm = errors.New("unknown hash algorithm")

	hashFuncs = map[string]HashFunc{
		SHA256:     ComputeHash256,
		Blake2b256: ComputeBlake2b256,
	}
)

// Hash256 A 256 bit long hash value.
type Hash256 = [HashLen]byte

// HashFunc digests a byte slice.
type HashFunc func([]byte) []byte

// ComputeHash256Array computes a cryptographically strong 256 bit hash of the
// input byte slice.
func ComputeHash256Array(buf []byte) Hash256 {
	return sha256.Sum256(buf)
}

// ComputeHash256 computes a cryptographically strong 256 bit hash of the input
// byte slice.
func ComputeHash256(buf []byte) []byte {
	arr := ComputeHash256Array(buf)
	return arr[:]
}

// ComputeBlake2b256 computes the 256 bit BLAKE2b hash of the input byte slice.
func ComputeBlake2b256(buf []byte) []byte {
	arr := blake2b.Sum256(buf)
	return arr[:]
}

// HexHash returns the lowercase hex encoding of hash(buf).
func HexHash(hash HashFunc, buf []byte) string {
	return hex.EncodeToString(hash(buf))
}

// Lookup returns the hash function registered under name.
func Lookup(name string) (HashFunc, error) {
	hash, ok := hashFuncs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHashAlgorithm, name)
	}
	return hash, nil
}

func ToHash256(bytes []byte) (Hash256, error) {
	hash := Hash256{}
	if bytesLen := len(bytes); bytesLen != HashLen {
		return hash, fmt.Errorf("%w: expected 32 bytes but got %d", ErrInvalidHashLen, bytesLen)
	}
	copy(hash[:], bytes)
	return hash, nil
}
