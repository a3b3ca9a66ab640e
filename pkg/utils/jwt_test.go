package utils

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	SetSecret("test-signing-secret")

	token, err := GenerateToken("admin@example.com", "Admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("email = %q, want %q", claims.Email, "admin@example.com")
	}
	if claims.Name != "Admin" {
		t.Errorf("name = %q, want %q", claims.Name, "Admin")
	}
}

func TestValidateToken_Rejections(t *testing.T) {
	SetSecret("test-signing-secret")

	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("malformed token accepted")
	}

	token, err := GenerateToken("admin@example.com", "Admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	SetSecret("rotated-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("token signed with the old secret accepted")
	}
}
