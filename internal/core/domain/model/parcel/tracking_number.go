package parcel

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// TrackingPrefix starts every tracking number.
const TrackingPrefix = "PKG"

// NewTrackingNumber builds "PKG" + unix milliseconds + a random suffix below 1000.
// Uniqueness is probabilistic; the store keeps a unique index as the final arbiter.
func NewTrackingNumber(now time.Time) string {
	return fmt.Sprintf("%s%d%d", TrackingPrefix, now.UnixMilli(), rand.IntN(1000)) //nolint:gosec // not a secret
}
