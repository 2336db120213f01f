package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"blogapi/config"
)

func TestHomeEndpoint(t *testing.T) {
	h := NewHomeHandler(&config.Config{Env: "development"})
	r := gin.New()
	r.GET("/", h.Get)

	w := doJSON(r, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var data struct {
		Environment string `json:"environment"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &data); err != nil {
		t.Fatal(err)
	}
	if data.Environment != "development" {
		t.Fatalf("environment = %q", data.Environment)
	}
}
