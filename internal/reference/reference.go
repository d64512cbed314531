// Package reference implements the customer-facing short order reference:
// the first 8 hex characters of an order's UUID, displayed upper-cased.
//
// Because the prefix covers only 32 bits of the key space, distinct orders
// may share a reference (birthday bound reaches ~50% around 65k orders).
// Lookup resolves an arbitrary one of the colliding orders; this is an
// accepted risk at expected volumes, not enforced uniqueness.
package reference

import (
	"strings"

	"sofa-shop/internal/model"

	"github.com/google/uuid"
)

// Length is the number of hex characters in a short reference.
const Length = 8

const (
	minSuffix = "-0000-0000-0000-000000000000"
	maxSuffix = "-ffff-ffff-ffff-ffffffffffff"
)

// FromOrderID derives the display form of an order's short reference.
func FromOrderID(id uuid.UUID) string {
	return strings.ToUpper(id.String()[:Length])
}

// Normalize validates a user-supplied reference and returns its canonical
// lowercase form. It rejects anything that is not exactly 8 hex characters
// before any persistence call is made.
func Normalize(code string) (string, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if len(code) != Length {
		return "", model.ErrInvalidReference
	}
	for _, c := range code {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", model.ErrInvalidReference
		}
	}
	return code, nil
}

// Bounds returns the inclusive minimum and maximum UUIDs sharing the given
// normalized prefix. The pair drives a primary-key range scan, using the
// key's native ordering rather than pattern matching.
func Bounds(code string) (uuid.UUID, uuid.UUID, error) {
	lo, err := uuid.Parse(code + minSuffix)
	if err != nil {
		return uuid.Nil, uuid.Nil, model.ErrInvalidReference
	}
	hi, err := uuid.Parse(code + maxSuffix)
	if err != nil {
		return uuid.Nil, uuid.Nil, model.ErrInvalidReference
	}
	return lo, hi, nil
}
