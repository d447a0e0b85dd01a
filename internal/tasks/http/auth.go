package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/tasks/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister creates a user account.
//
//	@Summary		Register
//	@Description	Creates a user with a bcrypt hashed password. Names are case sensitive.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		tasksdk.Credentials		true	"name and password"
//	@Success		201		{object}	tasksdk.MessageResponse	"User registered successfully"
//	@Failure		400		{object}	tasksdk.APIError		"User already exists or invalid input"
//	@Failure		429		{object}	tasksdk.APIError		"Rate limited"
//	@Failure		500		{object}	tasksdk.APIError		"Error registering user"
//	@Router			/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.Credentials
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(w, r, err, "Error registering user")
		return
	}

	if err := h.AuthService.Register(r.Context(), req.Name, req.Password); err != nil {
		writeServiceError(w, r, err, "Error registering user")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, tasksdk.MessageResponse{Message: "User registered successfully"})
}

// HandleLogin issues a token valid for one hour.
//
//	@Summary		Login
//	@Description	Verifies the password and returns a signed token plus the user name.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		tasksdk.Credentials		true	"name and password"
//	@Success		200		{object}	tasksdk.LoginResponse	"token and name"
//	@Failure		400		{object}	tasksdk.APIError		"User not found or invalid credentials"
//	@Failure		429		{object}	tasksdk.APIError		"Rate limited"
//	@Failure		500		{object}	tasksdk.APIError		"Error logging in"
//	@Router			/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.Credentials
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(w, r, err, "Error logging in")
		return
	}

	token, name, err := h.AuthService.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "Error logging in")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.LoginResponse{Token: token, Name: name})
}
