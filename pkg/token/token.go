// Package token mints and verifies the opaque tokens that gate read access to
// a single booking record. A token is a reversible encoding of the record id
// joined with a server-held shared secret; there is no signature and no
// expiry, so the token for a given (id, secret) pair is stable forever.
package token

import (
	"crypto/subtle"
	"encoding/base64"
)

const separator = "::"

// Mint derives the view token for a record id. Deterministic: the same id and
// secret always produce the same token.
func Mint(id, secret string) string {
	return base64.StdEncoding.EncodeToString([]byte(id + separator + secret))
}

// Verify reports whether token grants access to the record id. Malformed or
// empty tokens verify as false; no error ever reaches the caller. Decoding is
// strict so a token differing only in the unused trailing padding bits does
// not alias the canonical one.
func Verify(id, token, secret string) bool {
	if token == "" {
		return false
	}

	decoded, err := base64.StdEncoding.Strict().DecodeString(token)
	if err != nil {
		return false
	}

	expected := []byte(id + separator + secret)
	return subtle.ConstantTimeCompare(decoded, expected) == 1
}
