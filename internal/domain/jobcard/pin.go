package jobcard

import (
	"crypto/subtle"
	"strings"
)

// PINLength is the number of trailing contact handle characters used as the PIN.
const PINLength = 4

// MatchPIN reports whether pin equals the last PINLength characters of the
// tenant's contact handle. Handles shorter than PINLength never match.
//
// The PIN is a convenience gate layered on the public token. It only protects
// the redacted view and must not guard anything more sensitive.
func MatchPIN(contactHandle, pin string) bool {
	handle := []rune(strings.TrimSpace(contactHandle))
	pinRunes := []rune(strings.TrimSpace(pin))
	if len(handle) < PINLength || len(pinRunes) != PINLength {
		return false
	}
	suffix := string(handle[len(handle)-PINLength:])
	return subtle.ConstantTimeCompare([]byte(suffix), []byte(string(pinRunes))) == 1
}
