package utils

import (
	"encoding/base64"
	"strings"
)

const basicAuthScheme = "Basic "

// ParseBasicAuth extracts the (name, secret) credential pair from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Basic base64(name:secret)
//
// Absence or malformance of the header is a normal outcome, not an error:
// ok is false when the header is empty, uses a different scheme, carries
// invalid base64, or the decoded payload has no ':' separator. The secret
// itself may legitimately contain ':' characters; only the first separator
// splits the pair.
func ParseBasicAuth(header string) (name, secret string, ok bool) {
	if len(header) < len(basicAuthScheme) || !strings.EqualFold(header[:len(basicAuthScheme)], basicAuthScheme) {
		return "", "", false
	}

	payload, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(basicAuthScheme):]))
	if err != nil {
		return "", "", false
	}

	name, secret, found := strings.Cut(string(payload), ":")
	if !found {
		return "", "", false
	}

	return name, secret, true
}
