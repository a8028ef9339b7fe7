package service

import "testing"

func TestJWTRoundTrip(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateJWT(42)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	id, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	InitJWT("secret-a")
	token, err := GenerateJWT(7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	InitJWT("secret-b")
	if _, err := ParseJWT(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestJWTGarbage(t *testing.T) {
	InitJWT("test-secret")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := ParseJWT(token); err == nil {
			t.Fatalf("expected parse error for %q", token)
		}
	}
}
