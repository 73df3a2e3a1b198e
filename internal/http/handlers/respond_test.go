package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"aidforpaws/internal/domain"
)

func TestFailMapsDomainErrors(t *testing.T) {
	app := &App{Logger: zerolog.Nop()}
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"not found", fmt.Errorf("get: %w", domain.ErrNotFound), http.StatusNotFound, "Animal not found"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "Invalid credentials"},
		{"signature", domain.ErrSignatureMismatch, http.StatusBadRequest, "Invalid payment signature"},
		{"duplicate", domain.ErrDuplicatePayment, http.StatusConflict, "Payment already recorded"},
		{"upstream", fmt.Errorf("%w: timeout", domain.ErrUpstream), http.StatusInternalServerError, "Something broke"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Something broke"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/animals/x", nil)
			app.fail(rec, req, tt.err, "Animal", "Something broke")

			if rec.Code != tt.wantCode {
				t.Fatalf("status: got %d want %d", rec.Code, tt.wantCode)
			}
			var body errorBody
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error != tt.wantMsg {
				t.Fatalf("message: got %q want %q", body.Error, tt.wantMsg)
			}
		})
	}
}

func TestFailRendersValidationErrors(t *testing.T) {
	app := &App{Logger: zerolog.Nop()}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/animals", nil)

	app.fail(rec, req, domain.NewValidationError("name", "is required"), "Animal", "Failed")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", rec.Code)
	}
	want := `{"error":"validation failed","errors":{"formErrors":[],"fieldErrors":{"name":["is required"]}}}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Fatalf("body:\n got %s\nwant %s", got, want)
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"name":"Rex"}`, false},
		{"unknown field", `{"name":"Rex","age":3}`, true},
		{"trailing data", `{"name":"Rex"} {}`, true},
		{"malformed", `{"name":`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst payload
			err := decodeJSON(rec, req, &dst)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errInvalidPayload) {
				t.Fatalf("expected errInvalidPayload, got %v", err)
			}
		})
	}
}

func TestFlexAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		set     bool
		wantErr bool
	}{
		{`499`, 499, true, false},
		{`"250.50"`, 250.5, true, false},
		{`" 10 "`, 10, true, false},
		{`null`, 0, false, false},
		{`"abc"`, 0, false, true},
		{`true`, 0, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var f flexAmount
			err := json.Unmarshal([]byte(tt.in), &f)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if f.set != tt.set || f.value != tt.want {
				t.Fatalf("got (%v, %v) want (%v, %v)", f.value, f.set, tt.want, tt.set)
			}
		})
	}
}
