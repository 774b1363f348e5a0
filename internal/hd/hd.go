package hd

import (
	"encoding/binary"
	"strconv"
	"strings"

	"edkeyring/internal/crypto"
	"edkeyring/internal/domain"
)

const (
	// masterHMACKey keys the master-node expansion, per SLIP-0010.
	masterHMACKey = "ed25519 seed"

	// hardenedOffset moves an index into the hardened range.
	hardenedOffset = 0x80000000

	// rootMarker is skipped when it appears as a path segment.
	rootMarker = "m"
)

// DeriveFromSeed expands seed into the master (key, chain code) node and
// walks path from there.
func DeriveFromSeed(path string, seed domain.Seed) (domain.SecretKey, domain.ChainCode) {
	digest := crypto.HMACSHA512([]byte(masterHMACKey), seed.Slice())
	var key domain.SecretKey
	var chainCode domain.ChainCode
	copy(key[:], digest[:domain.SecretKeySize])
	copy(chainCode[:], digest[domain.SecretKeySize:])
	crypto.Wipe(digest[:])
	return Derive(path, key, chainCode)
}

// Derive walks path from the given (key, chain code) node and returns the
// final node. Each step computes
//
//	HMAC-SHA512(chainCode, 0x00 ++ key ++ bigEndian(index))
//
// and splits the 64-byte digest into the child key and chain code. The
// leading zero byte selects private-key-derivation mode; no public-only
// derivation exists in this scheme.
func Derive(path string, key domain.SecretKey, chainCode domain.ChainCode) (domain.SecretKey, domain.ChainCode) {
	for _, segment := range strings.Split(path, "/") {
		if segment == rootMarker {
			continue
		}

		var data [1 + domain.SecretKeySize + 4]byte
		copy(data[1:], key[:])
		binary.BigEndian.PutUint32(data[1+domain.SecretKeySize:], segmentIndex(segment))

		digest := crypto.HMACSHA512(chainCode.Slice(), data[:])
		copy(key[:], digest[:domain.SecretKeySize])
		copy(chainCode[:], digest[domain.SecretKeySize:])

		crypto.Wipe(digest[:])
		crypto.Wipe(data[:])
	}
	return key, chainCode
}

// segmentIndex parses one path segment into a child index. A trailing
// apostrophe selects the hardened range. Unparseable digits fall back to
// index 0 rather than failing.
func segmentIndex(segment string) uint32 {
	hardened := strings.Contains(segment, "'")
	if hardened {
		segment = strings.ReplaceAll(segment, "'", "")
	}
	n, err := strconv.ParseUint(segment, 10, 32)
	if err != nil {
		n = 0
	}
	index := uint32(n)
	if hardened {
		index += hardenedOffset
	}
	return index
}
