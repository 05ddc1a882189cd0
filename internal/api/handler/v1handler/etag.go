package v1handler

import (
	"crypto/md5" //nolint: gosec
	"encoding/hex"
	"strings"
)

// WireToken derives the precondition token exchanged in ETag, If-Match and
// If-None-Match headers from a package fingerprint: the quoted md5 of the
// fingerprint string. The service layer only ever sees the fingerprint itself.
func WireToken(fingerprint string) string {
	sum := md5.Sum([]byte(fingerprint)) //nolint: gosec

	return `"` + hex.EncodeToString(sum[:]) + `"`
}

// ifMatch reports whether the If-Match header presents exactly token.
func ifMatch(header, token string) bool {
	return header == token
}

// ifNoneMatch reports whether any entity tag listed in the If-None-Match
// header matches token. Weak tags compare equal to their strong form.
func ifNoneMatch(header, token string) bool {
	for _, tag := range strings.Split(header, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "*" {
			return true
		}
		if strings.TrimPrefix(tag, "W/") == token {
			return true
		}
	}

	return false
}
