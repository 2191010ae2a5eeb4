package bitcode

import (
	"errors"
	"testing"
)

func TestParseBinaryVerbatim(t *testing.T) {
	tests := []string{"0", "1", "01", "1101", "00000000", "101010101010101"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			seq, scheme, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", input, err)
			}
			if scheme != SchemeBinary {
				t.Fatalf("scheme = %v, want %v", scheme, SchemeBinary)
			}
			if seq.String() != input {
				t.Fatalf("bits = %q, want %q", seq.String(), input)
			}
		})
	}
}

func TestParseASCII(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a_A", "1000001"},
		{"a_ ", "0100000"},
		{"a_0", "0110000"},
		{"a_Hi", "10010001101001"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			seq, scheme, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if scheme != SchemeASCII {
				t.Fatalf("scheme = %v, want %v", scheme, SchemeASCII)
			}
			if seq.String() != tt.want {
				t.Fatalf("bits = %q, want %q", seq.String(), tt.want)
			}
		})
	}
}

func TestParseBCD(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"d_0", "0000"},
		{"d_9", "1001"},
		{"d_12", "00010010"},
		{"d_360", "001101100000"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			seq, scheme, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if scheme != SchemeBCD {
				t.Fatalf("scheme = %v, want %v", scheme, SchemeBCD)
			}
			if seq.String() != tt.want {
				t.Fatalf("bits = %q, want %q", seq.String(), tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"",
		"a_",
		"d_",
		"xyz",
		"d_1a",
		"d_1.5",
		"012",   // '2' breaks binary, no prefix
		"b_101", // unknown prefix
		"a_é",   // non-ASCII payload
		"a_äöü",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, _, err := Parse(input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got none", input)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Parse(%q) error = %v, want ErrInvalidInput", input, err)
			}
		})
	}
}

func TestParseNoPartialResult(t *testing.T) {
	// The first two characters of "a_Aé" expand fine; the sequence must
	// still come back empty.
	seq, _, err := Parse("a_Aé")
	if err == nil {
		t.Fatal("expected error for non-ASCII payload")
	}
	if seq.Len() != 0 {
		t.Fatalf("sequence not empty on failure: %q", seq.String())
	}
}

func TestSequenceAt(t *testing.T) {
	seq, _, err := Parse("1011")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []int{1, 0, 1, 1}
	for i, w := range want {
		if got := seq.At(i); got != w {
			t.Fatalf("At(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestSchemeString(t *testing.T) {
	if SchemeBinary.String() != "1-bit Binary" {
		t.Fatalf("SchemeBinary.String() = %q", SchemeBinary.String())
	}
	if SchemeBCD.String() != "4-bit Binary Coded Decimal" {
		t.Fatalf("SchemeBCD.String() = %q", SchemeBCD.String())
	}
	if SchemeASCII.String() != "7-bit ASCII" {
		t.Fatalf("SchemeASCII.String() = %q", SchemeASCII.String())
	}
	if Scheme(42).String() != "Unknown" {
		t.Fatalf("Scheme(42).String() = %q", Scheme(42).String())
	}
}
