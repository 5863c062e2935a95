package models

import (
	"errors"
	"strings"
)

// ErrInvalidSymbolPair is returned when a symbol pair is not six letters.
var ErrInvalidSymbolPair = errors.New("symbol pair must be exactly 6 letters")

// SymbolPair is a six-letter exchange symbol pair: the first three letters
// name the base currency and the last three the quote currency, e.g. "USDBRL".
type SymbolPair string

// ParseSymbolPair normalizes and validates a raw symbol pair string.
func ParseSymbolPair(s string) (SymbolPair, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 6 {
		return "", ErrInvalidSymbolPair
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return "", ErrInvalidSymbolPair
		}
	}
	return SymbolPair(s), nil
}

// Base returns the base currency code.
func (p SymbolPair) Base() string { return string(p[:3]) }

// Quote returns the quote currency code.
func (p SymbolPair) Quote() string { return string(p[3:]) }

func (p SymbolPair) String() string { return string(p) }
