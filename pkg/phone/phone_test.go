package phone

import (
	"errors"
	"testing"
)

func TestNormalizeKenyan(t *testing.T) {
	valid := map[string]string{
		"0712345678":    "254712345678",
		"712345678":     "254712345678",
		"254712345678":  "254712345678",
		"+254712345678": "254712345678",
		"0110345678":    "254110345678",
		"0712 345 678":  "254712345678",
		"0712-345-678":  "254712345678",
	}
	for in, want := range valid {
		got, err := NormalizeKenyan(in)
		if err != nil {
			t.Fatalf("NormalizeKenyan(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Fatalf("NormalizeKenyan(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeKenyan_Invalid(t *testing.T) {
	for _, in := range []string{"", "  ", "abc", "0712", "2547123456789", "0812345678", "+1555123456"} {
		if _, err := NormalizeKenyan(in); !errors.Is(err, ErrInvalidKenyanNumber) {
			t.Fatalf("NormalizeKenyan(%q) expected ErrInvalidKenyanNumber, got %v", in, err)
		}
	}
}
