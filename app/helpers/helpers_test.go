package helpers

import (
	"strings"
	"testing"
)

func TestNewIDFormat(t *testing.T) {
	id := NewID("cat")
	if !strings.HasPrefix(id, "cat_") {
		t.Fatalf("expected cat_ prefix, got %q", id)
	}
	if len(id) <= len("cat_") {
		t.Fatalf("expected a timestamp suffix, got %q", id)
	}
}

func TestNewIDNeverCollides(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID("story")
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	once := GenerateSlug("Pochampally Ikat Silk Saree")
	if once != "pochampally-ikat-silk-saree" {
		t.Fatalf("unexpected slug %q", once)
	}
	if twice := GenerateSlug(once); twice != once {
		t.Fatalf("slugify must be idempotent: %q vs %q", once, twice)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash := HashPassword("admin123")
	if hash == "" {
		t.Fatal("expected a hash")
	}
	if !PasswordCompare(hash, []byte("admin123")) {
		t.Fatal("correct password must compare true")
	}
	if PasswordCompare(hash, []byte("wrong")) {
		t.Fatal("wrong password must compare false")
	}
}
