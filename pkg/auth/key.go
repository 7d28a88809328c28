package auth

import "crypto/subtle"

// KeyMatcher reports whether a presented admin key is acceptable.
type KeyMatcher func(presented string) bool

// ExactKey matches with plain string equality. An empty presented key never
// matches unless expected is also empty.
func ExactKey(expected string) KeyMatcher {
	return func(presented string) bool {
		return presented == expected
	}
}

// ConstantTimeKey matches without leaking the position of the first
// differing byte.
func ConstantTimeKey(expected string) KeyMatcher {
	want := []byte(expected)
	return func(presented string) bool {
		return subtle.ConstantTimeCompare([]byte(presented), want) == 1
	}
}

// NewKeyMatcher returns ConstantTimeKey for mode "constant-time" and ExactKey
// otherwise.
func NewKeyMatcher(mode, expected string) KeyMatcher {
	if mode == "constant-time" {
		return ConstantTimeKey(expected)
	}
	return ExactKey(expected)
}
