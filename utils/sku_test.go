package utils

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestStripSKU(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"with marker", "#100", "100"},
		{"without marker", "100", "100"},
		{"empty", "", ""},
		{"marker only", "#", ""},
		{"marker not leading", "10#0", "10#0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripSKU(tt.input))
		})
	}
}

func TestFormatSKU(t *testing.T) {
	assert.Equal(t, "#100", FormatSKU("100"))
	assert.Equal(t, "#100", FormatSKU("#100"))
	assert.Equal(t, "#", FormatSKU(""))
}

func TestEncodeSKUPath(t *testing.T) {
	assert.Equal(t, "%23100", EncodeSKUPath("#100"))
	assert.Equal(t, "%23100", EncodeSKUPath("100"))
	assert.Equal(t, "%23AB%2FCD", EncodeSKUPath("#AB/CD"))
}

// Property: re-adding the marker after stripping is idempotent, and
// stripping a marker-less SKU is a no-op.
func TestProperty_SKURoundTrip(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("format after strip is idempotent", prop.ForAll(
		func(s string) bool {
			once := FormatSKU(StripSKU(s))
			twice := FormatSKU(StripSKU(once))
			return once == twice
		},
		gen.AlphaString(),
	))

	properties.Property("strip of a marker-less SKU is a no-op", prop.ForAll(
		func(s string) bool {
			if strings.HasPrefix(s, SKUMarker) {
				s = StripSKU(s)
			}
			return StripSKU(s) == s
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
