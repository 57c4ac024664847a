package codes

import (
	"strings"
	"testing"
)

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	for _, n := range []int{EndCodeLength, StartCodeLength} {
		code, err := Generate(n)
		if err != nil {
			t.Fatalf("Generate(%d) returned error: %v", n, err)
		}
		if len(code) != n {
			t.Fatalf("expected %d chars, got %q", n, code)
		}
		for _, c := range code {
			if !strings.ContainsRune(alphabet, c) {
				t.Fatalf("code %q contains %q outside alphabet", code, c)
			}
		}
	}
}

func TestGenerate_ExcludesConfusables(t *testing.T) {
	for _, bad := range "0OI1Lo" {
		if strings.ContainsRune(alphabet, bad) {
			t.Fatalf("alphabet must not contain confusable %q", bad)
		}
	}
}

func TestVerify_Soundness(t *testing.T) {
	code, err := Generate(StartCodeLength)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	hash := Hash(code)

	if !Verify(hash, code) {
		t.Fatalf("expected hash to verify its own code")
	}
	other, err := Generate(StartCodeLength)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if other != code && Verify(hash, other) {
		t.Fatalf("different code %q verified against hash of %q", other, code)
	}
	if Verify("", code) {
		t.Fatalf("empty hash must never verify")
	}
}

func TestGenerate_NoCollisionsInSample(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		code, err := Generate(StartCodeLength)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if seen[code] {
			t.Fatalf("collision after %d generations: %q", i, code)
		}
		seen[code] = true
	}
}
