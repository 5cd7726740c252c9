package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

type IPHasher struct {
	salt []byte
}

func NewIPHasher(salt string) *IPHasher {
	return &IPHasher{salt: []byte(salt)}
}

// Hash returns a salted one-way digest of ip. An empty ip hashes to "".
func (h *IPHasher) Hash(ip string) string {
	if ip == "" {
		return ""
	}
	mac := hmac.New(sha256.New, h.salt)
	mac.Write([]byte(ip))
	return hex.EncodeToString(mac.Sum(nil))
}
