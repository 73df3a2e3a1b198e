package handlers

import (
	"net/http"
	"strings"

	"aidforpaws/internal/middleware"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (a *App) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		a.badPayload(w, err)
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		a.error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := a.Admin.Authenticate(req.Username, req.Password); err != nil {
		a.Logger.Warn().Str("username", req.Username).Msg("admin login rejected")
		a.fail(w, r, err, "Admin", "Login failed")
		return
	}
	token, err := middleware.SignJWT(a.JWTSecret, middleware.NewAdminClaims(req.Username, a.TokenIssuer, a.TokenTTL))
	if err != nil {
		a.fail(w, r, err, "Admin", "Login failed")
		return
	}
	a.json(w, http.StatusOK, loginResponse{Token: token})
}

func (a *App) AdminMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.AdminFromContext(r.Context())
	if !ok {
		a.error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	a.json(w, http.StatusOK, claims)
}

func (a *App) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.Admin.Stats(r.Context())
	if err != nil {
		a.fail(w, r, err, "Stats", "Failed to load stats")
		return
	}
	a.json(w, http.StatusOK, stats)
}
