package security

import (
	"strings"
	"testing"
)

func TestRandomStringDrawsFromAlphabet(t *testing.T) {
	const alphabet = "0123456789"

	value, err := RandomString(6, alphabet)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(value) != 6 {
		t.Fatalf("length = %d, want 6", len(value))
	}
	for _, character := range value {
		if !strings.ContainsRune(alphabet, character) {
			t.Fatalf("value %q contains %q outside the alphabet", value, character)
		}
	}
}

func TestRandomStringEdgeCases(t *testing.T) {
	if value, err := RandomString(0, "abc"); err != nil || value != "" {
		t.Errorf("zero length: value=%q err=%v", value, err)
	}
	if _, err := RandomString(-1, "abc"); err == nil {
		t.Error("negative length should error")
	}
	if _, err := RandomString(4, ""); err == nil {
		t.Error("empty alphabet should error")
	}
}

func TestRandomHex(t *testing.T) {
	value, err := RandomHex(32)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(value) != 64 {
		t.Fatalf("length = %d, want 64", len(value))
	}
	if strings.ToLower(value) != value {
		t.Error("hex output should be lowercase")
	}

	if _, err := RandomHex(-1); err == nil {
		t.Error("negative byte count should error")
	}
}
