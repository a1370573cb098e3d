package quiz

import "github.com/google/uuid"

const tokenLength = 8

// NewToken produces the short opaque string used as a quiz's id and link
// path segment. A v4 UUID prefix keeps links short while staying practically
// unique; there is deliberately no check against existing store keys.
func NewToken() string {
	return uuid.NewString()[:tokenLength]
}
