package security

import (
	"strings"
	"testing"

	"github.com/riftbounddb/backend/pkg/config"
)

// Small parameters keep the hashing fast under test.
func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8192,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	cfg := testPasswordConfig()

	encoded, err := HashPassword("hunter22", cfg)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Fatalf("expected argon2id encoding, got %q", encoded)
	}

	match, err := VerifyPassword("hunter22", encoded)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !match {
		t.Fatal("expected correct password to match")
	}

	match, err = VerifyPassword("hunter23", encoded)
	if err != nil {
		t.Fatalf("verify wrong password: %v", err)
	}
	if match {
		t.Fatal("expected wrong password to mismatch")
	}
}

func TestHashPasswordSaltsEveryCall(t *testing.T) {
	cfg := testPasswordConfig()

	first, err := HashPassword("hunter22", cfg)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := HashPassword("hunter22", cfg)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct salts to produce distinct encodings")
	}
}

func TestVerifyPasswordRejectsMalformedEncoding(t *testing.T) {
	if _, err := VerifyPassword("whatever", "not-a-hash"); err == nil {
		t.Fatal("expected error for malformed encoding")
	}
	if _, err := VerifyPassword("whatever", "$argon2i$v=19$m=8,t=1,p=1$AAAA$BBBB"); err == nil {
		t.Fatal("expected error for unsupported variant")
	}
}
