package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"blogapi/internal/application"
	"blogapi/internal/domain/entity"
	"blogapi/pkg/cache"
)

func categoryRouter() *gin.Engine {
	svc := application.NewCategoryService(newMemCategoryRepo(), cache.NewMemory(), time.Hour, quietLogger())
	h := NewCategoryHandler(svc, quietLogger())

	r := gin.New()
	r.GET("/v1/categories", h.List)
	r.GET("/v1/categories/:id", h.Get)
	r.POST("/v1/categories", h.Create)
	r.PUT("/v1/categories/:id", h.Update)
	r.DELETE("/v1/categories/:id", h.Delete)
	return r
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var b []byte
	if body != nil {
		b, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createCategory(t *testing.T, router *gin.Engine, name, slug string) entity.Category {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/v1/categories", gin.H{"name": name, "slug": slug})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	var c entity.Category
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &c); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCategoryCRUDEndpoints(t *testing.T) {
	router := categoryRouter()

	created := createCategory(t, router, "Backend", "Backend")
	if created.ID == 0 || created.Slug != "backend" {
		t.Fatalf("created = %+v", created)
	}

	w := doJSON(router, http.MethodGet, "/v1/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var list []entity.Category
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &list); err != nil || len(list) != 1 {
		t.Fatalf("list = %s", w.Body.String())
	}

	w = doJSON(router, http.MethodGet, "/v1/categories/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	w = doJSON(router, http.MethodPut, "/v1/categories/1", gin.H{"name": "Backend Dev", "slug": "backend-dev"})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}
	var updated entity.Category
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &updated); err != nil || updated.Slug != "backend-dev" {
		t.Fatalf("updated = %s", w.Body.String())
	}

	w = doJSON(router, http.MethodDelete, "/v1/categories/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	var deleted entity.Category
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &deleted); err != nil || deleted.ID != 1 {
		t.Fatalf("delete did not echo the entity: %s", w.Body.String())
	}

	if w = doJSON(router, http.MethodDelete, "/v1/categories/1", nil); w.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", w.Code)
	}
}

func TestCategoryGetMissing(t *testing.T) {
	router := categoryRouter()
	if w := doJSON(router, http.MethodGet, "/v1/categories/99", nil); w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestCategoryBadID(t *testing.T) {
	router := categoryRouter()
	if w := doJSON(router, http.MethodGet, "/v1/categories/abc", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCategoryCreateValidationEndpoint(t *testing.T) {
	router := categoryRouter()

	// name shorter than 3 characters violates the binding rule
	w := doJSON(router, http.MethodPost, "/v1/categories", gin.H{"name": "ab", "slug": "ab"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("short name: status = %d, want 400", w.Code)
	}
	w = doJSON(router, http.MethodPost, "/v1/categories", gin.H{"name": "Backend"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing slug: status = %d, want 400", w.Code)
	}
}

func TestCategoryCreateDuplicateEndpoint(t *testing.T) {
	router := categoryRouter()
	createCategory(t, router, "Backend", "backend")

	w := doJSON(router, http.MethodPost, "/v1/categories", gin.H{"name": "Also Backend", "slug": "backend"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate slug: status = %d, want 400", w.Code)
	}
}

func TestCategoryUpdateMissingEndpoint(t *testing.T) {
	router := categoryRouter()
	w := doJSON(router, http.MethodPut, "/v1/categories/42", gin.H{"name": "Backend", "slug": "backend"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
