package rbac_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kidaholy/human-resource-sub000/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	LoadPolicyFn func() error
	EnforceFn    func(role, resource, action string) (bool, error)
	PoliciesFn   func() []rbac.PolicyResponse
}

func (f *fakeService) LoadPolicy() error { return f.LoadPolicyFn() }
func (f *fakeService) Enforce(role, resource, action string) (bool, error) {
	return f.EnforceFn(role, resource, action)
}
func (f *fakeService) Policies() []rbac.PolicyResponse { return f.PoliciesFn() }

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRBACHandler_Enforce(t *testing.T) {
	t.Run("success trims input", func(t *testing.T) {
		svc := &fakeService{
			EnforceFn: func(role, resource, action string) (bool, error) {
				assert.Equal(t, "admin", role)
				assert.Equal(t, "leave_admin", resource)
				assert.Equal(t, "decide", action)
				return true, nil
			},
		}
		r := setupRouter()
		r.POST("/rbac/enforce", rbac.NewHandler(svc).Enforce)

		body := `{"role":" admin ","resource":"leave_admin","action":"decide "}`
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"allowed":true`)
	})

	t.Run("validation error", func(t *testing.T) {
		r := setupRouter()
		r.POST("/rbac/enforce", rbac.NewHandler(&fakeService{}).Enforce)

		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", strings.NewReader(`{"role":"admin"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeService{
			EnforceFn: func(role, resource, action string) (bool, error) {
				return false, errors.New("matcher error")
			},
		}
		r := setupRouter()
		r.POST("/rbac/enforce", rbac.NewHandler(svc).Enforce)

		body := `{"role":"admin","resource":"leave_admin","action":"decide"}`
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "matcher error")
	})
}

func TestRBACHandler_Reload(t *testing.T) {
	policies := []rbac.PolicyResponse{{Role: "admin", Resource: "leave_admin", Action: "read"}}

	t.Run("success", func(t *testing.T) {
		reloaded := false
		svc := &fakeService{
			LoadPolicyFn: func() error { reloaded = true; return nil },
			PoliciesFn:   func() []rbac.PolicyResponse { return policies },
		}
		r := setupRouter()
		r.POST("/rbac/reload", rbac.NewHandler(svc).Reload)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rbac/reload", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, reloaded)
		assert.Contains(t, w.Body.String(), `"resource":"leave_admin"`)
	})

	t.Run("store error", func(t *testing.T) {
		svc := &fakeService{LoadPolicyFn: func() error { return errors.New("db down") }}
		r := setupRouter()
		r.POST("/rbac/reload", rbac.NewHandler(svc).Reload)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rbac/reload", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
