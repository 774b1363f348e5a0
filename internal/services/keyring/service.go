package keyring

import (
	"crypto/rand"
	"fmt"

	"edkeyring/internal/crypto"
	"edkeyring/internal/domain"
	"edkeyring/internal/hd"
	"edkeyring/internal/keypair"
)

// Service exposes the high-level key operations used by the CLI.
type Service struct{}

// New returns a keyring service.
func New() *Service { return &Service{} }

// GenerateSeed returns fresh random seed material from the OS source.
func (s *Service) GenerateSeed() (domain.Seed, error) {
	var seed domain.Seed
	if _, err := rand.Read(seed[:]); err != nil {
		return domain.Seed{}, fmt.Errorf("%w: %v", domain.ErrRandomGenerator, err)
	}
	return seed, nil
}

// Generate returns a fresh random key pair plus the seed that produced it.
func (s *Service) Generate() (keypair.KeyPair, domain.Seed, error) {
	seed, err := s.GenerateSeed()
	if err != nil {
		return keypair.KeyPair{}, domain.Seed{}, err
	}
	return keypair.FromSeed(seed), seed, nil
}

// Derive walks path from seed and returns the final (key, chain code) node.
func (s *Service) Derive(path string, seed domain.Seed) (domain.SecretKey, domain.ChainCode) {
	return hd.DeriveFromSeed(path, seed)
}

// DeriveKeyPair walks path from seed and constructs the key pair for the
// derived key, alongside the chain code for further derivation.
func (s *Service) DeriveKeyPair(path string, seed domain.Seed) (keypair.KeyPair, domain.ChainCode) {
	key, chainCode := hd.DeriveFromSeed(path, seed)
	kp := keypair.FromSeed(domain.Seed(key))
	crypto.Wipe(key[:])
	return kp, chainCode
}

// SignMessage signs msg with the key derived at path from seed and returns
// the signature plus the signing public key.
func (s *Service) SignMessage(path string, seed domain.Seed, msg []byte) (domain.Signature, domain.PublicKey) {
	kp, _ := s.DeriveKeyPair(path, seed)
	return kp.Sign(msg), kp.PublicKey()
}

// VerifyMessage reports whether sig is a valid signature of msg under pub.
func (s *Service) VerifyMessage(pub domain.PublicKey, msg []byte, sig domain.Signature) bool {
	return crypto.Verify(msg, sig, pub)
}

// Fingerprint returns a short display fingerprint of pub.
func (s *Service) Fingerprint(pub domain.PublicKey) string {
	return crypto.Fingerprint(pub.Slice())
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
