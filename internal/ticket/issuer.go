// Package ticket mints booking identifiers and their verification hashes.
package ticket

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// Issuer derives booking ids and tamper-evident verification hashes. The id
// is the Unix-millisecond timestamp of issuance, treated as an opaque string;
// uniqueness is ultimately enforced by the bookings primary key. The hash is
// SHA-256 over the id plus a nanosecond timestamp, so it is unique per call
// and verifiable only by lookup, never by recomputation.
//
// TODO: replace with a random id plus an HMAC over the booking content; the
// current scheme is predictable under high request rates.
type Issuer struct {
	now func() time.Time
}

func NewIssuer() *Issuer {
	return &Issuer{now: time.Now}
}

// Issue returns a new booking id and verification hash.
func (i *Issuer) Issue() (bookingID, hash string) {
	now := i.now()
	bookingID = strconv.FormatInt(now.UnixMilli(), 10)

	sum := sha256.Sum256([]byte(bookingID + strconv.FormatInt(now.UnixNano(), 10)))
	hash = hex.EncodeToString(sum[:])

	return bookingID, hash
}
