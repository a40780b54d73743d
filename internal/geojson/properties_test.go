package geojson_test

import (
	"testing"

	"github.com/PetaKedai/PK-Backend/internal/geojson"
)

// TestString verifies coercion of the property shapes JSON decoding actually
// produces, numeric boundary codes included.
func TestString(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want string
	}{
		{"string", "P.114", "P.114"},
		{"whole float", float64(12), "12"},
		{"fractional float", 12.5, "12.5"},
		{"int", 7, "7"},
		{"bool", true, "true"},
		{"nil", nil, ""},
		{"slice", []interface{}{1}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := geojson.String(tc.in); got != tc.want {
				t.Errorf("String(%#v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// TestNumber verifies numeric coercion, including numeric strings.
func TestNumber(t *testing.T) {
	if got, ok := geojson.Number("258920"); !ok || got != 258920 {
		t.Errorf("Number(string) = %v, %v", got, ok)
	}
	if got, ok := geojson.Number(float64(3.5)); !ok || got != 3.5 {
		t.Errorf("Number(float64) = %v, %v", got, ok)
	}
	if _, ok := geojson.Number("densely populated"); ok {
		t.Error("Number accepted a non-numeric string")
	}
	if _, ok := geojson.Number(nil); ok {
		t.Error("Number accepted nil")
	}
}

// TestInt verifies rounding behavior.
func TestInt(t *testing.T) {
	if got, ok := geojson.Int(6560.4); !ok || got != 6560 {
		t.Errorf("Int(6560.4) = %d, %v", got, ok)
	}
	if got, ok := geojson.Int(6560.5); !ok || got != 6561 {
		t.Errorf("Int(6560.5) = %d, %v", got, ok)
	}
	if _, ok := geojson.Int("many"); ok {
		t.Error("Int accepted a non-numeric string")
	}
}

// TestBool verifies flag coercion across the shapes seen in source data.
func TestBool(t *testing.T) {
	cases := []struct {
		name   string
		in     interface{}
		want   bool
		wantOK bool
	}{
		{"true", true, true, true},
		{"false", false, false, true},
		{"one", float64(1), true, true},
		{"zero", float64(0), false, true},
		{"string true", "true", true, true},
		{"string junk", "yes-ish", false, false},
		{"nil", nil, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := geojson.Bool(tc.in)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("Bool(%#v) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}
