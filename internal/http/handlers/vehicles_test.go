package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func postJSON(t *testing.T, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestCreateVehicleRequiresName(t *testing.T) {
	// rejected at the boundary, never reaches the store
	w := postJSON(t, CreateVehicle, `{"name": "  ", "capacity": 4}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateVehicleRejectsMalformedBody(t *testing.T) {
	w := postJSON(t, CreateVehicle, `{"name": `)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUpdateVehicleRequiresBody(t *testing.T) {
	w := postJSON(t, UpdateVehicle, ``)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUpdateVehicleRequiresID(t *testing.T) {
	w := postJSON(t, UpdateVehicle, `{"available": false}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteVehicleRequiresID(t *testing.T) {
	w := postJSON(t, DeleteVehicle, `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
