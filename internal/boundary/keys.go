package boundary

import (
	"strings"

	"github.com/PetaKedai/PK-Backend/internal/geojson"
)

// JoinKey derives the key that links a feature to its census record. Each
// boundary type has an ordered list of candidate properties; the first
// candidate whose parts are all present and non-empty wins. A feature with
// no usable candidate resolves to "" and is treated as unmatched.
//
// Key shapes follow the DOSM code scheme:
//
//	district    "<code_state>-<code_district>"  e.g. "1-2"
//	parliament  "<code_parlimen>"               e.g. "P.138"
//	dun         "<code_state>-<code_dun>"       e.g. "1-N.01"
func JoinKey(t Type, props map[string]interface{}) string {
	switch t {
	case District:
		if key := composite(props, "code_state", "code_district"); key != "" {
			return key
		}
	case Parliament:
		if key := prop(props, "code_parlimen"); key != "" {
			return key
		}
	case Dun:
		if key := composite(props, "code_state", "code_dun"); key != "" {
			return key
		}
		// Some DUN extracts carry only the seat code.
		if key := prop(props, "code_dun"); key != "" {
			return key
		}
	}

	// Pre-keyed exports carry the resolved key directly.
	if key := prop(props, "code"); key != "" {
		return key
	}
	return prop(props, "id")
}

// DisplayName resolves a human-readable boundary name, falling back through
// the generic "name" property to the "Unknown" sentinel.
func DisplayName(t Type, props map[string]interface{}) string {
	var primary string
	switch t {
	case District:
		primary = "district"
	case Parliament:
		primary = "parlimen"
	case Dun:
		primary = "dun"
	}

	if name := prop(props, primary); name != "" {
		return name
	}
	if name := prop(props, "name"); name != "" {
		return name
	}
	return "Unknown"
}

// prop reads a single property as a trimmed string.
func prop(props map[string]interface{}, key string) string {
	v, ok := props[key]
	if !ok {
		return ""
	}
	return strings.TrimSpace(geojson.String(v))
}

// composite joins two code properties with "-". Both must be present.
func composite(props map[string]interface{}, first, second string) string {
	a := prop(props, first)
	b := prop(props, second)
	if a == "" || b == "" {
		return ""
	}
	return a + "-" + b
}
