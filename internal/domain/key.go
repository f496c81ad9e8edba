package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown is returned for keys outside the enumeration.
var ErrUnknown = errors.New("unknown domain")

// Key identifies one of the study/career tracks.
type Key string

const (
	FullStack Key = "fullstack"
	AIML      Key = "aiml"
	UIUX      Key = "uiux"
	Data      Key = "data"
	Cyber     Key = "cyber"
)

// All returns every domain in declaration order. Deterministic tie-breaks
// throughout the app follow this order.
func All() []Key {
	return []Key{FullStack, AIML, UIUX, Data, Cyber}
}

// Valid reports whether k is part of the enumeration.
func (k Key) Valid() bool {
	return k.Rank() >= 0
}

// Rank returns the declaration index of k, or -1 for unknown keys.
func (k Key) Rank() int {
	for i, d := range All() {
		if d == k {
			return i
		}
	}
	return -1
}

// DisplayName returns the human-readable track name.
func (k Key) DisplayName() string {
	if info, ok := Lookup(k); ok {
		return info.Name
	}
	return string(k)
}

// Parse resolves a key from user input. It accepts the key itself or the
// display name, case-insensitively.
func Parse(s string) (Key, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for _, k := range All() {
		if string(k) == s || strings.ToLower(k.DisplayName()) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknown)
}
