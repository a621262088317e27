package api

import (
	"encoding/json"
	"net/http"

	"cafeteria-be/internal/user"
)

type AuthHandler struct {
	userSvc user.Service
}

func NewAuthHandler(userSvc user.Service) *AuthHandler {
	return &AuthHandler{userSvc: userSvc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	if req.Email == "" || req.Password == "" {
		WriteErrorResponse(w, http.StatusUnprocessableEntity, "validation_failed", "email and password are required")
		return
	}

	u, token, err := h.userSvc.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	WriteJSONResponse(w, http.StatusOK, loginResponse{Token: token, User: u})
}
