// Package bitcode converts symbolic codes into canonical bit sequences.
//
// Three encodings are recognized. The whole input must match exactly one of
// them, tried in this order:
//
//   - Binary: one or more '0'/'1' characters, taken verbatim.
//   - ASCII: "a_" followed by one or more 7-bit ASCII characters, each
//     expanded to its 7-bit codepoint (MSB first).
//   - BCD: "d_" followed by one or more decimal digits, each expanded
//     independently to its 4-bit value (MSB first, no multi-digit packing).
//
// Parsing either yields the complete bit sequence or fails with
// ErrInvalidInput; partial results are never returned.
package bitcode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput reports input that matches none of the recognized encodings.
var ErrInvalidInput = errors.New("bitcode: invalid input")

// Scheme identifies the encoding a code was parsed with.
type Scheme int

const (
	// SchemeBinary is the 1-bit binary encoding (no prefix).
	SchemeBinary Scheme = iota

	// SchemeBCD is the per-digit 4-bit binary coded decimal encoding ("d_" prefix).
	SchemeBCD

	// SchemeASCII is the 7-bit ASCII encoding ("a_" prefix).
	SchemeASCII
)

// String returns a human-readable name for the scheme.
func (s Scheme) String() string {
	switch s {
	case SchemeBinary:
		return "1-bit Binary"
	case SchemeBCD:
		return "4-bit Binary Coded Decimal"
	case SchemeASCII:
		return "7-bit ASCII"
	default:
		return "Unknown"
	}
}

// Sequence is an immutable ordered sequence of bits produced by Parse.
// The zero value is empty and not a valid code.
type Sequence struct {
	bits string
}

// Len returns the number of bits.
func (s Sequence) Len() int {
	return len(s.bits)
}

// At returns bit i as 0 or 1.
func (s Sequence) At(i int) int {
	if s.bits[i] == '1' {
		return 1
	}
	return 0
}

// String returns the bits as a string of '0'/'1' characters.
func (s Sequence) String() string {
	return s.bits
}

// Parse evaluates a symbolic code and returns its bit sequence together with
// the scheme it was recognized as.
//
// An input that matches none of the schemes in full, including the empty
// string and a bare "a_"/"d_" prefix, fails with an error wrapping
// ErrInvalidInput.
func Parse(text string) (Sequence, Scheme, error) {
	switch {
	case isBinary(text):
		return Sequence{bits: text}, SchemeBinary, nil

	case strings.HasPrefix(text, "a_") && len(text) > 2:
		bits, err := expandASCII(text[2:])
		if err != nil {
			return Sequence{}, SchemeASCII, err
		}
		return Sequence{bits: bits}, SchemeASCII, nil

	case strings.HasPrefix(text, "d_") && len(text) > 2 && isDigits(text[2:]):
		return Sequence{bits: expandBCD(text[2:])}, SchemeBCD, nil
	}

	return Sequence{}, 0, fmt.Errorf("%w: %q matches no known encoding", ErrInvalidInput, text)
}

func isBinary(text string) bool {
	if len(text) == 0 {
		return false
	}
	for i := 0; i < len(text); i++ {
		if text[i] != '0' && text[i] != '1' {
			return false
		}
	}
	return true
}

func isDigits(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}

// expandASCII encodes each payload byte as 7 bits, MSB first. Bytes above
// 0x7F have no 7-bit codepoint and are rejected rather than truncated.
func expandASCII(payload string) (string, error) {
	var b strings.Builder
	b.Grow(7 * len(payload))

	for i := 0; i < len(payload); i++ {
		c := payload[i]
		if c > 0x7F {
			return "", fmt.Errorf("%w: byte 0x%02X at offset %d is not 7-bit ASCII", ErrInvalidInput, c, i)
		}
		for bit := 6; bit >= 0; bit-- {
			b.WriteByte('0' + (c>>uint(bit))&1)
		}
	}

	return b.String(), nil
}

// expandBCD encodes each decimal digit as 4 bits, MSB first. The payload is
// validated by the caller.
func expandBCD(payload string) string {
	var b strings.Builder
	b.Grow(4 * len(payload))

	for i := 0; i < len(payload); i++ {
		d := payload[i] - '0'
		for bit := 3; bit >= 0; bit-- {
			b.WriteByte('0' + (d>>uint(bit))&1)
		}
	}

	return b.String()
}
