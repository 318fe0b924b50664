package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fixly/utils"

	"github.com/gin-gonic/gin"
)

func newAuthedRouter() (*gin.Engine, *struct{ id, role string }) {
	gin.SetMode(gin.TestMode)
	seen := &struct{ id, role string }{}

	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(nil), func(c *gin.Context) {
		seen.id = ActorID(c)
		seen.role = ActorRole(c)
		c.Status(http.StatusOK)
	})
	return r, seen
}

func TestMissingTokenUnauthorized(t *testing.T) {
	r, _ := newAuthedRouter()

	for _, header := range []string{"", "Token abc", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestInvalidTokenUnauthorized(t *testing.T) {
	r, _ := newAuthedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestValidTokenSetsActorIdentity(t *testing.T) {
	r, seen := newAuthedRouter()

	token, err := utils.GenerateToken("user-1", "provider", time.Hour)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if seen.id != "user-1" || seen.role != "provider" {
		t.Fatalf("actor identity not set: id=%s role=%s", seen.id, seen.role)
	}
}

func TestRequireRoleDeniesOtherRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", func(c *gin.Context) {
		c.Set(CtxUserRole, "customer")
	}, RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", func(c *gin.Context) {
		c.Set(CtxUserRole, "admin")
	}, RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
