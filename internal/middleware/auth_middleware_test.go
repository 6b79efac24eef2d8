package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mentora/mentora/internal/app/models"
	"github.com/mentora/mentora/internal/app/models/dto"
	"github.com/mentora/mentora/internal/pkg/auth"
)

func newAuthFixture() (*AuthMiddleware, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "mentora.test",
	})
	return NewAuthMiddleware(jwtService), jwtService
}

func newProtectedRouter(m *AuthMiddleware, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := append([]gin.HandlerFunc{m.JWTAuth()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		userID, role, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "identity missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userID": userID, "role": string(role)})
	})

	router.GET("/protected", handlers...)
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeErrorCode(t *testing.T, body []byte) dto.ErrorCode {
	t.Helper()

	var resp dto.ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Error == nil {
		t.Fatal("error response has no error detail")
	}
	return resp.Error.Code
}

func TestJWTAuthMissingHeader(t *testing.T) {
	m, _ := newAuthFixture()
	router := newProtectedRouter(m)

	w := doRequest(router, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if code := decodeErrorCode(t, w.Body.Bytes()); code != dto.ErrorCodeUnauthorized {
		t.Errorf("error code = %q, want %q", code, dto.ErrorCodeUnauthorized)
	}
}

func TestJWTAuthBadFormat(t *testing.T) {
	m, _ := newAuthFixture()
	router := newProtectedRouter(m)

	for _, header := range []string{"token-without-scheme", "Basic abc", "Bearer "} {
		w := doRequest(router, header)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, w.Code)
		}
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	m, _ := newAuthFixture()
	router := newProtectedRouter(m)

	w := doRequest(router, "Bearer not.a.valid.token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if code := decodeErrorCode(t, w.Body.Bytes()); code != dto.ErrorCodeInvalidToken {
		t.Errorf("error code = %q, want %q", code, dto.ErrorCodeInvalidToken)
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	expired := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "mentora.test",
	})
	token, _, err := expired.GenerateToken(3, "a@b.com", "student")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	m, _ := newAuthFixture()
	router := newProtectedRouter(m)

	w := doRequest(router, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if code := decodeErrorCode(t, w.Body.Bytes()); code != dto.ErrorCodeExpiredToken {
		t.Errorf("error code = %q, want %q", code, dto.ErrorCodeExpiredToken)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	m, jwtService := newAuthFixture()
	router := newProtectedRouter(m)

	token, _, err := jwtService.GenerateToken(42, "ann@example.com", "teacher")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doRequest(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	var body struct {
		UserID int64  `json:"userID"`
		Role   string `json:"role"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.UserID != 42 {
		t.Errorf("userID = %d, want 42", body.UserID)
	}
	if body.Role != "teacher" {
		t.Errorf("role = %q, want teacher", body.Role)
	}
}

func TestRoleRequired(t *testing.T) {
	m, jwtService := newAuthFixture()
	router := newProtectedRouter(m, m.RoleRequired(models.RoleAdmin))

	studentToken, _, err := jwtService.GenerateToken(3, "stu@example.com", "student")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	adminToken, _, err := jwtService.GenerateToken(1, "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doRequest(router, "Bearer "+studentToken)
	if w.Code != http.StatusForbidden {
		t.Errorf("student status = %d, want 403", w.Code)
	}
	if code := decodeErrorCode(t, w.Body.Bytes()); code != dto.ErrorCodeForbidden {
		t.Errorf("error code = %q, want %q", code, dto.ErrorCodeForbidden)
	}

	w = doRequest(router, "Bearer "+adminToken)
	if w.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}
