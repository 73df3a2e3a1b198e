package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	token, err := SignJWT("secret", NewAdminClaims("admin", "aidforpaws", time.Hour))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims, err := VerifyJWT("secret", token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Sub != "admin" || claims.Role != "admin" || claims.Issuer != "aidforpaws" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerifyJWTRejects(t *testing.T) {
	valid, _ := SignJWT("secret", NewAdminClaims("admin", "", time.Hour))
	expired, _ := SignJWT("secret", NewAdminClaims("admin", "", -time.Minute))
	noExp, _ := SignJWT("secret", AdminClaims{Sub: "admin"})

	parts := strings.Split(valid, ".")
	noneHeader := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	algNone := noneHeader + "." + parts[1] + "." + hmacSign("secret", noneHeader+"."+parts[1])

	tests := []struct {
		name   string
		secret string
		token  string
		want   error
	}{
		{name: "wrong secret", secret: "other", token: valid, want: ErrInvalidToken},
		{name: "expired", secret: "secret", token: expired, want: ErrTokenExpired},
		{name: "missing exp", secret: "secret", token: noExp, want: ErrInvalidToken},
		{name: "malformed", secret: "secret", token: "abc.def", want: ErrInvalidToken},
		{name: "alg none", secret: "secret", token: algNone, want: ErrInvalidToken},
		{name: "tampered payload", secret: "secret", token: parts[0] + ".eyJzdWIiOiJ4In0." + parts[2], want: ErrInvalidToken},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := VerifyJWT(tc.secret, tc.token); err != tc.want {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestAuthJWTMiddleware(t *testing.T) {
	valid, _ := SignJWT("secret", NewAdminClaims("admin", "", time.Hour))
	expired, _ := SignJWT("secret", NewAdminClaims("admin", "", -time.Minute))

	var sub string
	h := AuthJWT("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := AdminFromContext(r.Context())
		if !ok {
			t.Fatalf("claims missing from context")
		}
		sub = claims.Sub
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name    string
		header  string
		status  int
		message string
	}{
		{name: "missing header", status: http.StatusUnauthorized, message: "Unauthorized"},
		{name: "wrong scheme", header: "Basic abc", status: http.StatusUnauthorized, message: "Unauthorized"},
		{name: "expired", header: "Bearer " + expired, status: http.StatusUnauthorized, message: "Invalid or expired token"},
		{name: "garbage", header: "Bearer nope", status: http.StatusUnauthorized, message: "Invalid or expired token"},
		{name: "valid", header: "Bearer " + valid, status: http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			if tc.message == "" {
				return
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["error"] != tc.message {
				t.Fatalf("error = %q, want %q", body["error"], tc.message)
			}
		})
	}
	if sub != "admin" {
		t.Fatalf("sub = %q, want admin", sub)
	}
}
