package crypto

import (
	"crypto/hmac"
	"crypto/sha512"
)

// HMACSHA512 computes the HMAC-SHA512 tag of data under key.
func HMACSHA512(key, data []byte) (out [sha512.Size]byte) {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	copy(out[:], mac.Sum(nil))
	return out
}
