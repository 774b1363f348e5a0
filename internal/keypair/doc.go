// Package keypair implements the Ed25519 key-pair engine: construction
// from seed or raw bytes, signing, verification, and constant-time
// equality over the secret half.
//
// A KeyPair is an immutable value. Every constructor except
// FromCombinedBytesUnchecked guarantees the public key matches the secret
// key; the unchecked path trusts caller-supplied bytes verbatim and exists
// only for restoring previously-validated material.
package keypair
