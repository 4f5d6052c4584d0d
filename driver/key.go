package driver

import (
	"fmt"
	"strings"
)

// MaxKeyLength bounds key size to the most restrictive backend in use
// (the S3 object key limit).
const MaxKeyLength = 1024

// NormalizeKey brings a raw key into canonical form and validates it.
//
// Normalization: backslashes become forward slashes, surrounding
// whitespace and leading slashes are stripped. Validation then rejects
// empty keys, keys over MaxKeyLength and any ".", ".." or empty path
// segment, so a valid key can never address anything outside the
// backend's root. Rejections wrap ErrInvalidKey.
func NormalizeKey(raw string) (string, error) {
	key := strings.ReplaceAll(raw, `\`, "/")
	key = strings.TrimSpace(key)
	key = strings.TrimLeft(key, "/")

	if key == "" {
		return "", fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	if len(key) > MaxKeyLength {
		return "", fmt.Errorf("%w: key exceeds %d bytes", ErrInvalidKey, MaxKeyLength)
	}
	for _, seg := range strings.Split(key, "/") {
		switch seg {
		case "":
			return "", fmt.Errorf("%w: empty path segment in %q", ErrInvalidKey, raw)
		case ".", "..":
			return "", fmt.Errorf("%w: traversal segment in %q", ErrInvalidKey, raw)
		}
	}
	return key, nil
}

// CleanPrefix normalizes a listing prefix the same way NormalizeKey
// normalizes keys. Unlike keys, an empty prefix is valid: it matches
// everything.
func CleanPrefix(raw string) string {
	prefix := strings.ReplaceAll(raw, `\`, "/")
	prefix = strings.TrimSpace(prefix)
	return strings.TrimLeft(prefix, "/")
}
