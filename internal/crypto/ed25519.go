package crypto

import (
	"crypto/ed25519"

	"edkeyring/internal/domain"
)

// GeneratePublicKey derives the Ed25519 public key for secret.
// Deterministic: the same secret always yields the same public key.
func GeneratePublicKey(secret domain.SecretKey) (pub domain.PublicKey) {
	priv := ed25519.NewKeyFromSeed(secret.Slice())
	copy(pub[:], priv[ed25519.SeedSize:])
	return pub
}

// Sign signs msg with the (secret, public) pair and returns the signature.
// The caller-supplied public half participates in the signature hash, so a
// mismatched pair produces signatures that do not verify under the real
// public key.
func Sign(msg []byte, secret domain.SecretKey, public domain.PublicKey) (sig domain.Signature) {
	priv := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
	copy(priv, secret.Slice())
	copy(priv[ed25519.SeedSize:], public.Slice())
	copy(sig[:], ed25519.Sign(priv, msg))
	Wipe(priv)
	return sig
}

// Verify reports whether sig is a valid signature of msg under public.
func Verify(msg []byte, sig domain.Signature, public domain.PublicKey) bool {
	return ed25519.Verify(ed25519.PublicKey(public.Slice()), msg, sig.Slice())
}
