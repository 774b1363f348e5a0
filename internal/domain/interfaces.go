package domain

// KeyService is the high-level key operation surface used by the CLI.
type KeyService interface {
	// GenerateSeed returns fresh random seed material.
	GenerateSeed() (Seed, error)

	// Derive walks a derivation path from seed and returns the final
	// (key, chain code) node.
	Derive(path string, seed Seed) (SecretKey, ChainCode)

	// SignMessage signs msg with the key derived at path from seed and
	// returns the signature plus the signing public key.
	SignMessage(path string, seed Seed, msg []byte) (Signature, PublicKey)

	// VerifyMessage reports whether sig is a valid signature of msg
	// under pub.
	VerifyMessage(pub PublicKey, msg []byte, sig Signature) bool

	// Fingerprint returns a short display fingerprint of pub.
	Fingerprint(pub PublicKey) string
}
