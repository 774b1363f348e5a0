// Package crypto exposes the minimal primitives used by edkeyring.
//
// Contents
//
//   - Ed25519 public-key derivation, signing and verification
//     (GeneratePublicKey, Sign, Verify)
//   - HMAC-SHA512 expansion for hierarchical derivation (HMACSHA512)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// All functions take and return the fixed-size array types defined in
// internal/domain to avoid accidental reallocations. Callers should treat
// returned secrets as sensitive and rely on Wipe when practical to reduce
// lifetime in memory.
package crypto
