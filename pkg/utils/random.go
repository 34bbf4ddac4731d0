package utils

import (
	"math/rand"
	"time"
)

const hashCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var seededRand *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateShareHash generates a random alphanumeric token of the given length.
// Uniqueness is enforced by the share link registry, not here.
func GenerateShareHash(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = hashCharset[seededRand.Intn(len(hashCharset))]
	}
	return string(b)
}
