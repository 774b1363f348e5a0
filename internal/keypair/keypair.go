package keypair

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"edkeyring/internal/crypto"
	"edkeyring/internal/domain"
)

// KeyPair couples an Ed25519 secret key with its public key. Fields are
// private and set once at construction; values are safe for concurrent
// read-only use.
type KeyPair struct {
	secret domain.SecretKey
	public domain.PublicKey
}

// FromSeed expands seed into a key pair. The seed bytes become the secret
// key verbatim; the public key is derived from it. Never fails.
func FromSeed(seed domain.Seed) KeyPair {
	secret := domain.SecretKey(seed)
	return KeyPair{secret: secret, public: crypto.GeneratePublicKey(secret)}
}

// FromSecretBytes builds a pair from raw secret-key bytes, deriving the
// matching public key. Fails with domain.ErrBadSecretKeyLength unless raw
// is exactly domain.SecretKeySize bytes.
func FromSecretBytes(raw []byte) (KeyPair, error) {
	secret, err := domain.SecretKeyFromBytes(raw)
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{secret: secret, public: crypto.GeneratePublicKey(secret)}, nil
}

// FromCombinedBytesUnchecked restores a pair from the combined raw layout,
// secret followed by public. The public half is taken verbatim and NOT
// re-derived, so this path can represent a mismatched pair; use it only
// for material validated elsewhere. Fails with domain.ErrBadKeyPairLength
// unless raw is exactly domain.KeyPairSize bytes.
func FromCombinedBytesUnchecked(raw []byte) (KeyPair, error) {
	if len(raw) != domain.KeyPairSize {
		return KeyPair{}, fmt.Errorf("%w: got %d, want %d",
			domain.ErrBadKeyPairLength, len(raw), domain.KeyPairSize)
	}
	var kp KeyPair
	copy(kp.secret[:], raw[:domain.SecretKeySize])
	copy(kp.public[:], raw[domain.SecretKeySize:])
	return kp, nil
}

// PublicKey returns the public half.
func (k KeyPair) PublicKey() domain.PublicKey { return k.public }

// RawCombined returns secret followed by public, domain.KeyPairSize bytes.
// The slice is a fresh copy; mutating it does not affect the pair.
func (k KeyPair) RawCombined() []byte {
	out := make([]byte, 0, domain.KeyPairSize)
	out = append(out, k.secret[:]...)
	return append(out, k.public[:]...)
}

// RawSecret returns a copy of the secret-key bytes alone.
func (k KeyPair) RawSecret() []byte {
	return append([]byte(nil), k.secret[:]...)
}

// Sign signs msg with the pair. Deterministic: the same message and key
// always yield the same signature.
func (k KeyPair) Sign(msg []byte) domain.Signature {
	return crypto.Sign(msg, k.secret, k.public)
}

// Verify reports whether sig is a valid signature of msg under the pair's
// public key.
func (k KeyPair) Verify(msg []byte, sig domain.Signature) bool {
	return crypto.Verify(msg, sig, k.public)
}

// Equal reports whether both halves match byte-for-byte. The secret
// comparison is constant-time.
func (k KeyPair) Equal(other KeyPair) bool {
	secretsEqual := subtle.ConstantTimeCompare(k.secret[:], other.secret[:]) == 1
	return secretsEqual && k.public == other.public
}

// Hash digests the combined raw layout with BLAKE2b-256. Pairs that are
// Equal hash identically.
func (k KeyPair) Hash() [32]byte {
	return blake2b.Sum256(k.RawCombined())
}

// Fingerprint returns the short display fingerprint of the public key.
func (k KeyPair) Fingerprint() string {
	return crypto.Fingerprint(k.public.Slice())
}
