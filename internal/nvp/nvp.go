// Package nvp implements the name-value pair body format used by Payflow Pro.
package nvp

import (
	"net/url"
	"strings"
)

// Payflow reserves double quotes for wrapping a PARMLIST, so they may not
// appear inside values. They are sent as single quotes instead.
const (
	encodedDoubleQuote = "%22"
	singleQuote        = "'"
)

// RedactedValue replaces secrets in logged or recorded payloads.
const RedactedValue = "****"

// Encode form-encodes params with keys in sorted order and rewrites every
// double quote to a single quote. The result never contains '"'.
func Encode(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	v := make(url.Values, len(params))
	for k, val := range params {
		v.Set(k, val)
	}
	return strings.ReplaceAll(v.Encode(), encodedDoubleQuote, singleQuote)
}

// Decode parses a query-string shaped response body into key -> values.
//
// Malformed pairs are skipped; the first parse error is returned next to
// everything that could be decoded.
func Decode(body []byte) (map[string][]string, error) {
	values, err := url.ParseQuery(strings.TrimSpace(string(body)))
	if values == nil {
		values = url.Values{}
	}
	return values, err
}

// Redact returns a copy of params with the given keys masked.
func Redact(params map[string]string, keys ...string) map[string]string {
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = v
	}
	for _, k := range keys {
		if _, ok := out[k]; ok {
			out[k] = RedactedValue
		}
	}
	return out
}
