package handlers

import (
	"mime"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/auth"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createUserRequest struct {
	Username string    `json:"username"`
	Password string    `json:"password"`
	Role     auth.Role `json:"role"`
}

// readCredentials accepts either a form post or a JSON body.
func readCredentials(r *http.Request) (credentials, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data" {
		if err := r.ParseForm(); err != nil {
			return credentials{}, badRequest("invalid form body")
		}
		return credentials{Username: r.PostForm.Get("username"), Password: r.PostForm.Get("password")}, nil
	}
	var c credentials
	err := decodeJSON(r, &c)
	return c, err
}

// LoginHandler exchanges a username and password for an access token.
func LoginHandler(users auth.UserStore, issuer *auth.Issuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creds, err := readCredentials(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if creds.Username == "" || creds.Password == "" {
			writeError(w, r, badRequest("username and password are required"))
			return
		}

		user, err := users.Authenticate(r.Context(), strings.TrimSpace(creds.Username), creds.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}
		token, err := issuer.Issue(user)
		if err != nil {
			writeError(w, r, err)
			return
		}
		log.Info("Issued access token", "username", user.Username, "role", user.Role)
		respondJSON(w, http.StatusOK, token)
	}
}

func CreateUserHandler(users auth.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		if req.Role == "" {
			req.Role = auth.RoleViewer
		}

		user, err := users.CreateUser(r.Context(), strings.TrimSpace(req.Username), req.Password, req.Role)
		if err != nil {
			writeError(w, r, err)
			return
		}
		log.Info("User created", "username", user.Username, "role", user.Role)
		respondJSON(w, http.StatusCreated, user)
	}
}

func MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"username": user.Username, "role": user.Role})
	}
}
