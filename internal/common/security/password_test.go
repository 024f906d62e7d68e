package security

import (
	"bytes"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	passwords := []string{"pw1", "correct horse battery staple", "", "päss wörd"}
	for _, password := range passwords {
		salt, hash, err := HashPassword(password, nil)
		if err != nil {
			t.Fatalf("HashPassword(%q) error: %v", password, err)
		}
		if len(salt) != saltLength {
			t.Errorf("salt length = %d, want %d", len(salt), saltLength)
		}
		if len(hash) != keyLength {
			t.Errorf("hash length = %d, want %d", len(hash), keyLength)
		}
		if !VerifyPassword(password, salt, hash) {
			t.Errorf("VerifyPassword(%q) = false, want true", password)
		}
	}
}

func TestHashPasswordDeterministicGivenSalt(t *testing.T) {
	salt, hash, err := HashPassword("pw1", nil)
	if err != nil {
		t.Fatal(err)
	}
	_, again, err := HashPassword("pw1", salt)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(hash, again) {
		t.Error("same salt and password produced different digests")
	}
}

func TestVerifyPasswordRejectsWrongPassword(t *testing.T) {
	salt, hash, err := HashPassword("pw1", nil)
	if err != nil {
		t.Fatal(err)
	}
	if VerifyPassword("pw2", salt, hash) {
		t.Error("VerifyPassword accepted a wrong password")
	}
}

func TestVerifyPasswordRejectsMutatedHash(t *testing.T) {
	salt, hash, err := HashPassword("pw1", nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := range hash {
		mutated := append([]byte(nil), hash...)
		mutated[i] ^= 0x01
		if VerifyPassword("pw1", salt, mutated) {
			t.Fatalf("VerifyPassword accepted a digest with byte %d flipped", i)
		}
	}

	truncated := hash[:len(hash)-1]
	if VerifyPassword("pw1", salt, truncated) {
		t.Error("VerifyPassword accepted a truncated digest")
	}
}
