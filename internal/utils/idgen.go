package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"
)

// AccountNumberPrefix is the fixed prefix of every account number; the
// remaining ten digits make the full number 14 characters long.
const AccountNumberPrefix = "1010"

// NewCustomerID returns a timestamp-based customer identifier in the
// legacy "CUST<unique-token>" format. Uniqueness against the collection is
// the caller's responsibility; the token is millisecond-granular, so the
// caller bumps it on collision.
func NewCustomerID(now time.Time) string {
	return fmt.Sprintf("CUST%d", now.UnixMilli())
}

// NewAccountNumber returns a fresh 14-character account number: the fixed
// prefix followed by ten random digits without a leading zero.
func NewAccountNumber() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9_000_000_000))
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return AccountNumberPrefix + strconv.FormatInt(1_000_000_000+n.Int64(), 10), nil
}
