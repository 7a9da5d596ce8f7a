package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rahulvm/accountd/internal/repositories"
	"github.com/rahulvm/accountd/internal/services"
)

// ErrMalformedRequest covers bodies that fail structural validation: bad JSON
// or missing required fields. Such requests never reach the password hasher.
var ErrMalformedRequest = errors.New("malformed request")

// Responses mirror the service this one replaced, message strings included,
// so the existing frontend keeps working unchanged.
const (
	msgUserExists    = "User already exists"
	msgInvalidCreds  = "Invalid email or password"
	msgServerError   = "Server error"
	msgRegistered    = "User registered successfully"
	msgLoginSuccess  = "Login successful"
	msgMissingFields = "Email and password are required"
	msgInvalidToken  = "Invalid or expired token"
	msgUserNotFound  = "User not found"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Routes mounts the auth endpoints on a fresh router.
func (h *AuthHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(cors)
	r.Post("/signup", h.Signup)
	r.Post("/signin", h.Signin)
	r.With(h.RequireAuth).Get("/me", h.Me)
	return r
}

type signupRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

func (req *signupRequest) validate() error {
	if req.Email == "" || req.Password == "" {
		return ErrMalformedRequest
	}
	return nil
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *signinRequest) validate() error {
	if req.Email == "" || req.Password == "" {
		return ErrMalformedRequest
	}
	return nil
}

type tokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgMissingFields)
		return
	}
	if err := req.validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	resp, err := h.authService.Register(r.Context(), req.Email, req.FullName, req.Password)
	if errors.Is(err, services.ErrEmailExists) {
		writeMessage(w, http.StatusBadRequest, msgUserExists)
		return
	}
	if err != nil {
		log.Printf("signup failed: %v", err)
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeJSON(w, http.StatusCreated, tokenResponse{Token: resp.Token, Message: msgRegistered})
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgMissingFields)
		return
	}
	if err := req.validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	resp, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		writeMessage(w, http.StatusBadRequest, msgInvalidCreds)
		return
	}
	if err != nil {
		log.Printf("signin failed: %v", err)
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: resp.Token, Message: msgLoginSuccess})
}

// Me returns the public profile of the authenticated account.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFrom(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, msgInvalidToken)
		return
	}

	account, err := h.authService.GetProfile(r.Context(), accountID)
	if errors.Is(err, repositories.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, msgUserNotFound)
		return
	}
	if err != nil {
		log.Printf("profile lookup failed: %v", err)
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeJSON(w, http.StatusOK, account)
}

// cors allows the browser frontend to call these endpoints cross-origin.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
