package domain

import "errors"

// Every failure in this package is a synchronous input-validation
// rejection; nothing here is transient or retryable. Callers match with
// errors.Is; the wrapped message carries the got/want lengths.
var (
	ErrBadSeedLength      = errors.New("bad seed length")
	ErrBadKeyPairLength   = errors.New("bad key pair length")
	ErrBadSecretKeyLength = errors.New("bad secret key length")
	ErrBadPublicKeyLength = errors.New("bad public key length")
	ErrBadChainCodeLength = errors.New("bad chain code length")
	ErrBadSignatureLength = errors.New("bad signature length")

	// ErrRandomGenerator wraps the underlying system error when reading
	// from the OS random source fails.
	ErrRandomGenerator = errors.New("random generator failure")
)
