package httpx_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/wardrobe/pkg/httpx"
)

func TestJSON_setsHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected Content-Type: %q", ct)
	}
	if xct := w.Header().Get("X-Content-Type-Options"); xct != "nosniff" {
		t.Errorf("expected nosniff, got %q", xct)
	}
}

func TestSuccess_wrapsData(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.Success(w, http.StatusCreated, map[string]int{"id": 7})

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	var body struct {
		Success bool           `json:"success"`
		Data    map[string]int `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !body.Success || body.Data["id"] != 7 {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSONError(w, http.StatusBadRequest, "something went wrong")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	var body httpx.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body.Success {
		t.Error("expected success=false")
	}
	if body.Error.Message != "something went wrong" {
		t.Errorf("unexpected error message: %q", body.Error.Message)
	}
}

func TestSafeError(t *testing.T) {
	err := errors.New("pq: relation does not exist")
	if got := httpx.SafeError(err, http.StatusInternalServerError); got != httpx.GenericServerError {
		t.Errorf("5xx leaked detail: %q", got)
	}
	if got := httpx.SafeError(err, http.StatusBadRequest); got != err.Error() {
		t.Errorf("4xx should keep message, got %q", got)
	}
}
