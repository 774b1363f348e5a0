// Package keyring combines seed generation, hierarchical derivation and
// the key-pair engine behind one high-level service.
//
// It owns the only randomness in the system (GenerateSeed); everything
// else is deterministic and stateless.
package keyring
