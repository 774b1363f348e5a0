package crypto_test

import (
	"bytes"
	stded25519 "crypto/ed25519"
	"encoding/hex"
	"testing"

	"edkeyring/internal/crypto"
	"edkeyring/internal/domain"
)

// RFC 4231 test case 1.
func TestHMACSHA512_KnownVector(t *testing.T) {
	key := bytes.Repeat([]byte{0x0b}, 20)
	data := []byte("Hi There")
	want := "87aa7cdea5ef619d4ff0b4241a1d6cb02379f4e2ce4ec2787ad0b30545e17cde" +
		"daa833b7d6b8a702038b274eaea3f4e4be9d914eeb61f1702e696c203a126854"

	got := crypto.HMACSHA512(key, data)
	if hex.EncodeToString(got[:]) != want {
		t.Fatalf("HMACSHA512 mismatch:\n got %x\nwant %s", got, want)
	}
}

func TestGeneratePublicKey_MatchesStdlib(t *testing.T) {
	var secret domain.SecretKey
	for i := range secret {
		secret[i] = byte(i * 7)
	}

	pub := crypto.GeneratePublicKey(secret)
	priv := stded25519.NewKeyFromSeed(secret.Slice())
	if !bytes.Equal(pub.Slice(), priv[stded25519.SeedSize:]) {
		t.Fatal("public key diverges from crypto/ed25519")
	}
}

func TestSignVerify(t *testing.T) {
	var secret domain.SecretKey
	secret[31] = 1
	pub := crypto.GeneratePublicKey(secret)
	msg := []byte("attack at dawn")

	sig := crypto.Sign(msg, secret, pub)
	if !crypto.Verify(msg, sig, pub) {
		t.Fatal("valid signature rejected")
	}
	if crypto.Verify([]byte("attack at dusk"), sig, pub) {
		t.Fatal("signature accepted for a different message")
	}

	// Ed25519 signing is deterministic.
	again := crypto.Sign(msg, secret, pub)
	if sig != again {
		t.Fatal("signing the same message twice gave different signatures")
	}
}

func TestFingerprint(t *testing.T) {
	var pub domain.PublicKey
	pub[0] = 0xaa

	fp := crypto.Fingerprint(pub.Slice())
	if len(fp) != 20 {
		t.Fatalf("fingerprint length %d, want 20", len(fp))
	}
	if fp != crypto.Fingerprint(pub.Slice()) {
		t.Fatal("fingerprint is not deterministic")
	}

	var other domain.PublicKey
	other[0] = 0xab
	if fp == crypto.Fingerprint(other.Slice()) {
		t.Fatal("distinct keys share a fingerprint")
	}
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	crypto.Wipe(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not wiped", i)
		}
	}
}
