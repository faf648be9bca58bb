package utils

import (
	"net/url"
	"strings"
)

// SKUMarker is the leading marker character the server prefixes to SKUs.
// Client and server disagree on whether it is included, so lookups strip it
// and outgoing payloads re-add it.
const SKUMarker = "#"

// StripSKU removes one leading marker from a SKU. Stripping a marker-less
// SKU is a no-op.
func StripSKU(sku string) string {
	return strings.TrimPrefix(sku, SKUMarker)
}

// FormatSKU ensures the SKU carries exactly one leading marker.
// FormatSKU(StripSKU(s)) is idempotent for any input.
func FormatSKU(sku string) string {
	return SKUMarker + StripSKU(sku)
}

// EncodeSKUPath builds the path segment used by GET /recortes/sku/{sku}.
// The marker is sent percent-encoded (%23) ahead of the escaped bare SKU.
func EncodeSKUPath(sku string) string {
	return "%23" + url.PathEscape(StripSKU(sku))
}
