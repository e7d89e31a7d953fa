package password

import (
	"strings"
	"testing"
)

func TestGenerate_LengthAndCharset(t *testing.T) {
	for i := 0; i < 50; i++ {
		p := Generate()
		if len(p) != 8 {
			t.Fatalf("length = %d, want 8 (got=%q)", len(p), p)
		}
		for _, r := range p {
			if !strings.ContainsRune(charset, r) {
				t.Fatalf("character %q outside charset in %q", r, p)
			}
		}
	}
}

func TestGenerate_NotConstant(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 20; i++ {
		seen[Generate()] = struct{}{}
	}
	if len(seen) < 2 {
		t.Fatalf("expected varied output, got %d distinct values", len(seen))
	}
}
