package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"housing-service/internal/model"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func sign(t *testing.T, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func serve(t *testing.T, token string, extra ...gin.HandlerFunc) (*httptest.ResponseRecorder, model.Caller) {
	t.Helper()
	var got model.Caller
	r := gin.New()
	handlers := append([]gin.HandlerFunc{Authenticate(testSecret, "HS512")}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		got = CallerFrom(c)
		c.Status(http.StatusNoContent)
	})
	r.GET("/", handlers...)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, got
}

func TestAuthenticateResolvesCaller(t *testing.T) {
	exp := float64(time.Now().Add(time.Hour).Unix())
	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   model.Caller
	}{
		{
			name:   "owner with profile id",
			claims: jwt.MapClaims{"sub": "7", "roles": []string{"OWNER"}, "owner_id": float64(3), "exp": exp},
			want:   model.Caller{UserID: 7, OwnerID: 3, Role: model.RoleOwner},
		},
		{
			name:   "student defaults profile to subject",
			claims: jwt.MapClaims{"sub": float64(9), "roles": "STUDENT", "exp": exp},
			want:   model.Caller{UserID: 9, StudentID: 9, Role: model.RoleStudent},
		},
		{
			name:   "admin wins",
			claims: jwt.MapClaims{"sub": "1", "roles": []string{"OWNER", "ADMIN"}, "exp": exp},
			want:   model.Caller{UserID: 1, Role: model.RoleAdmin},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, got := serve(t, sign(t, jwt.SigningMethodHS512, tt.claims))
			if w.Code != http.StatusNoContent {
				t.Fatalf("status = %d", w.Code)
			}
			if got != tt.want {
				t.Errorf("caller = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestAuthenticateAnonymous(t *testing.T) {
	w, got := serve(t, "")
	if w.Code != http.StatusNoContent || got.Authenticated() {
		t.Fatalf("status = %d, caller = %+v", w.Code, got)
	}
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	exp := float64(time.Now().Add(time.Hour).Unix())
	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "wrong algorithm", token: sign(t, jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1", "exp": exp})},
		{name: "expired", token: sign(t, jwt.SigningMethodHS512, jwt.MapClaims{"sub": "1", "exp": float64(time.Now().Add(-time.Hour).Unix())})},
		{name: "no subject", token: sign(t, jwt.SigningMethodHS512, jwt.MapClaims{"exp": exp})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := serve(t, tt.token)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, expected 401", w.Code)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	exp := float64(time.Now().Add(time.Hour).Unix())
	student := sign(t, jwt.SigningMethodHS512, jwt.MapClaims{"sub": "9", "roles": "STUDENT", "exp": exp})
	owner := sign(t, jwt.SigningMethodHS512, jwt.MapClaims{"sub": "7", "roles": "OWNER", "exp": exp})

	if w, _ := serve(t, "", RequireRole(model.RoleOwner)); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d, expected 401", w.Code)
	}
	if w, _ := serve(t, student, RequireRole(model.RoleOwner)); w.Code != http.StatusForbidden {
		t.Errorf("student status = %d, expected 403", w.Code)
	}
	if w, _ := serve(t, owner, RequireRole(model.RoleOwner)); w.Code != http.StatusNoContent {
		t.Errorf("owner status = %d, expected 204", w.Code)
	}
	if w, _ := serve(t, "", RequireAuth()); w.Code != http.StatusUnauthorized {
		t.Errorf("RequireAuth anonymous status = %d, expected 401", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("expected a generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc" {
		t.Errorf("request id = %q, expected abc", got)
	}
}
