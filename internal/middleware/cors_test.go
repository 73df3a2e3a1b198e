package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	h := CORS([]string{"https://aidforpaws.vercel.app", "http://localhost:5173/"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name        string
		method      string
		origin      string
		status      int
		allowOrigin string
	}{
		{name: "no origin", method: http.MethodGet, status: http.StatusOK},
		{name: "allowed", method: http.MethodGet, origin: "https://aidforpaws.vercel.app", status: http.StatusOK, allowOrigin: "https://aidforpaws.vercel.app"},
		{name: "trailing slash config", method: http.MethodGet, origin: "http://localhost:5173", status: http.StatusOK, allowOrigin: "http://localhost:5173"},
		{name: "preflight", method: http.MethodOptions, origin: "https://aidforpaws.vercel.app", status: http.StatusNoContent, allowOrigin: "https://aidforpaws.vercel.app"},
		{name: "disallowed", method: http.MethodGet, origin: "https://evil.example", status: http.StatusForbidden},
		{name: "disallowed preflight", method: http.MethodOptions, origin: "https://evil.example", status: http.StatusForbidden},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/api/animals", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tc.allowOrigin {
				t.Fatalf("allow origin = %q, want %q", got, tc.allowOrigin)
			}
			if tc.allowOrigin != "" && rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
				t.Fatalf("credentials header missing")
			}
		})
	}
}
