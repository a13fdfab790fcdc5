package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// ReferralCode derives a referral code from an account name: the first word,
// lowercased, followed by a random numeric suffix of the given width.
func ReferralCode(name string, suffixDigits int) (string, error) {
	base := strings.ToLower(strings.TrimSpace(name))
	if idx := strings.IndexByte(base, ' '); idx > 0 {
		base = base[:idx]
	}
	if base == "" {
		base = "partner"
	}

	limit := big.NewInt(1)
	for i := 0; i < suffixDigits; i++ {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%0*d", base, suffixDigits, n.Int64()), nil
}
