package domain

import "fmt"

// Byte sizes of every fixed-layout value in the system. These are
// compile-time constants; no layout is runtime-configurable.
const (
	SeedSize      = 32
	SecretKeySize = 32
	PublicKeySize = 32
	SignatureSize = 64
	ChainCodeSize = 32

	// KeyPairSize is the combined raw layout: secret followed by public.
	KeyPairSize = SecretKeySize + PublicKeySize
)

// Seed is the root entropy a master key and chain code are derived from.
type Seed [SeedSize]byte

// Slice returns the seed as a []byte.
func (s Seed) Slice() []byte { return s[:] }

// SecretKey is an Ed25519 secret key (seed form).
type SecretKey [SecretKeySize]byte

// Slice returns the key as a []byte.
func (k SecretKey) Slice() []byte { return k[:] }

// PublicKey is an Ed25519 public key.
type PublicKey [PublicKeySize]byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p[:] }

// Signature is an Ed25519 signature.
type Signature [SignatureSize]byte

// Slice returns the signature as a []byte.
func (s Signature) Slice() []byte { return s[:] }

// ChainCode is the auxiliary entropy carried alongside a derived key. It is
// only meaningful paired with that key for further derivation steps.
type ChainCode [ChainCodeSize]byte

// Slice returns the chain code as a []byte.
func (c ChainCode) Slice() []byte { return c[:] }

// SeedFromBytes copies b into a Seed, rejecting any other length.
func SeedFromBytes(b []byte) (Seed, error) {
	var s Seed
	if len(b) != SeedSize {
		return s, fmt.Errorf("%w: got %d, want %d", ErrBadSeedLength, len(b), SeedSize)
	}
	copy(s[:], b)
	return s, nil
}

// SecretKeyFromBytes copies b into a SecretKey, rejecting any other length.
func SecretKeyFromBytes(b []byte) (SecretKey, error) {
	var k SecretKey
	if len(b) != SecretKeySize {
		return k, fmt.Errorf("%w: got %d, want %d", ErrBadSecretKeyLength, len(b), SecretKeySize)
	}
	copy(k[:], b)
	return k, nil
}

// PublicKeyFromBytes copies b into a PublicKey, rejecting any other length.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	var p PublicKey
	if len(b) != PublicKeySize {
		return p, fmt.Errorf("%w: got %d, want %d", ErrBadPublicKeyLength, len(b), PublicKeySize)
	}
	copy(p[:], b)
	return p, nil
}

// SignatureFromBytes copies b into a Signature, rejecting any other length.
func SignatureFromBytes(b []byte) (Signature, error) {
	var s Signature
	if len(b) != SignatureSize {
		return s, fmt.Errorf("%w: got %d, want %d", ErrBadSignatureLength, len(b), SignatureSize)
	}
	copy(s[:], b)
	return s, nil
}

// ChainCodeFromBytes copies b into a ChainCode, rejecting any other length.
func ChainCodeFromBytes(b []byte) (ChainCode, error) {
	var c ChainCode
	if len(b) != ChainCodeSize {
		return c, fmt.Errorf("%w: got %d, want %d", ErrBadChainCodeLength, len(b), ChainCodeSize)
	}
	copy(c[:], b)
	return c, nil
}
