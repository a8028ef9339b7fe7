package service

import "testing"

func TestPasswordHashAndCheck(t *testing.T) {
	hashed, err := HashPassword("12345")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hashed == "12345" {
		t.Fatal("hash must not equal the plain password")
	}

	if !CheckPassword(hashed, "12345") {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword(hashed, "wrong") {
		t.Fatal("expected mismatching password to fail")
	}
}
