package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: exp,
		TokenIssuer:    "mentora.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(24 * time.Hour)

	token, expiresIn, err := svc.GenerateToken(42, "ann@x.com", "student")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if expiresIn != int((24 * time.Hour).Seconds()) {
		t.Errorf("expiresIn = %d, want %d", expiresIn, int((24*time.Hour).Seconds()))
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "ann@x.com" {
		t.Errorf("Email = %q, want ann@x.com", claims.Email)
	}
	if claims.Role != "student" {
		t.Errorf("Role = %q, want student", claims.Role)
	}
	if claims.Issuer != "mentora.test" {
		t.Errorf("Issuer = %q, want mentora.test", claims.Issuer)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.GenerateToken(1, "a@b.com", "teacher")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	other := NewJWTService(JWTConfig{
		SecretKey:      "a-different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "mentora.test",
	})

	token, _, err := svc.GenerateToken(1, "a@b.com", "student")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("ValidateToken accepted a token signed with another secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newTestService(time.Hour)

	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Error("ValidateToken accepted garbage input")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "missing prefix", header: "abc.def.ghi", wantErr: true},
		{name: "prefix only", header: "Bearer ", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ExtractBearerToken(%q) expected error", tt.header)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractBearerToken(%q): %v", tt.header, err)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
