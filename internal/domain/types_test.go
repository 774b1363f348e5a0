package domain_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"edkeyring/internal/domain"
)

func TestFromBytes_RoundTrip(t *testing.T) {
	raw := make([]byte, domain.SeedSize)
	for i := range raw {
		raw[i] = byte(i)
	}

	seed, err := domain.SeedFromBytes(raw)
	if err != nil {
		t.Fatalf("SeedFromBytes: %v", err)
	}
	if !bytes.Equal(seed.Slice(), raw) {
		t.Fatal("seed bytes changed on the way through")
	}

	// The constructor copies; mutating the input must not reach the value.
	raw[0] ^= 0xff
	if seed[0] == raw[0] {
		t.Fatal("seed aliases caller-supplied bytes")
	}
}

func TestFromBytes_LengthValidation(t *testing.T) {
	cases := []struct {
		name    string
		make    func([]byte) error
		size    int
		wantErr error
	}{
		{"seed", func(b []byte) error { _, err := domain.SeedFromBytes(b); return err },
			domain.SeedSize, domain.ErrBadSeedLength},
		{"secret key", func(b []byte) error { _, err := domain.SecretKeyFromBytes(b); return err },
			domain.SecretKeySize, domain.ErrBadSecretKeyLength},
		{"public key", func(b []byte) error { _, err := domain.PublicKeyFromBytes(b); return err },
			domain.PublicKeySize, domain.ErrBadPublicKeyLength},
		{"signature", func(b []byte) error { _, err := domain.SignatureFromBytes(b); return err },
			domain.SignatureSize, domain.ErrBadSignatureLength},
		{"chain code", func(b []byte) error { _, err := domain.ChainCodeFromBytes(b); return err },
			domain.ChainCodeSize, domain.ErrBadChainCodeLength},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.make(make([]byte, tc.size)); err != nil {
				t.Fatalf("exact length rejected: %v", err)
			}
			for _, n := range []int{0, tc.size - 1, tc.size + 1} {
				err := tc.make(make([]byte, n))
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("len %d: got %v, want %v", n, err, tc.wantErr)
				}
				if !strings.Contains(err.Error(), "got") || !strings.Contains(err.Error(), "want") {
					t.Fatalf("error does not report got/want lengths: %v", err)
				}
			}
		})
	}
}
