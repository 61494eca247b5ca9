package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashIP one-way hashes a submitter address so that submissions can be
// correlated without ever storing the raw IP.
func HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:])
}
