package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"comanda/internal/service"
)

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func RegisterHandler(authSvc *service.AuthService, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if req.Login == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "login and password required")
			return
		}

		waiter, err := authSvc.Register(req.Login, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrLoginTaken):
				writeError(w, http.StatusConflict, "login already exists")
			default:
				slog.Error("waiter register failed", "error", err)
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		issueToken(w, secret, waiter.ID)
	}
}

func LoginHandler(authSvc *service.AuthService, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		waiter, err := authSvc.Authenticate(req.Login, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "invalid login or password")
			default:
				slog.Error("waiter login failed", "error", err)
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		issueToken(w, secret, waiter.ID)
	}
}

func issueToken(w http.ResponseWriter, secret, waiterID string) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"waiter_id": waiterID,
		"exp":       jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "token generation failed")
		return
	}

	w.Header().Set("Authorization", "Bearer "+tokenString)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "token": tokenString})
}
