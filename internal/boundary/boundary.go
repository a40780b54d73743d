// Package boundary defines the administrative boundary types served by
// PetaKedai and the single key/name resolution policy shared by the build
// pipeline and the runtime readers.
package boundary

import (
	"errors"
	"fmt"
	"strings"
)

// Type identifies one class of administrative boundary.
type Type string

const (
	// District is a DOSM administrative district.
	District Type = "district"

	// Parliament is a federal parliamentary constituency.
	Parliament Type = "parliament"

	// Dun is a state legislative assembly (DUN) constituency.
	Dun Type = "dun"
)

// ErrUnknownType is returned when a boundary type string is not recognized.
var ErrUnknownType = errors.New("unknown boundary type")

// All returns every supported boundary type in canonical order.
func All() []Type {
	return []Type{District, Parliament, Dun}
}

// ParseType normalizes and validates a boundary type string.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case District:
		return District, nil
	case Parliament:
		return Parliament, nil
	case Dun:
		return Dun, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

func (t Type) String() string {
	return string(t)
}
