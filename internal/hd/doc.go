// Package hd implements hardened hierarchical key derivation for Ed25519
// in the SLIP-0010 style: an HMAC-SHA512 chain over the segments of a
// textual derivation path such as "m/44'/354'/0'/0'/0'".
//
// Only private-key derivation is implemented. Every step mixes the parent
// chain code (as HMAC key) with the parent key and child index (as HMAC
// data), so a child cannot be recovered from a sibling public key alone.
// Derivation is pure and deterministic: the same (path, seed) always
// yields the same (key, chain code).
package hd
