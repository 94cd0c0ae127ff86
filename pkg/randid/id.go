// Package randid provides random ID generation utilities.
package randid

import (
	"math/rand/v2"
	"strconv"
	"time"
)

// Generate creates a random alphanumeric ID of the specified length.
func Generate(length int) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = chars[rand.IntN(len(chars))]
	}
	return string(b)
}

// TimeOrdered creates an ID prefixed with the base36 unix milliseconds of
// now, followed by a short random suffix. Sorting these lexicographically
// roughly follows creation order.
func TimeOrdered(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 36) + "-" + Generate(6)
}
