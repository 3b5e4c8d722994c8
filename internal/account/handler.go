package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/creatorhub/service/internal/profile"
	"github.com/creatorhub/service/internal/response"
)

// Handler holds HTTP handlers for registration and login.
type Handler struct {
	svc      *Service
	profiles *profile.Service
}

// NewHandler creates a new account Handler. The profile service is needed
// because a successful login echoes the user's profile.
func NewHandler(svc *Service, profiles *profile.Service) *Handler {
	return &Handler{svc: svc, profiles: profiles}
}

type credentialsRequest struct {
	Username string `json:"username" example:"ada"`
	Password string `json:"password" example:"hunter2"`
}

type messageResponse struct {
	Message string `json:"message" example:"User registered successfully"`
}

type loginResponse struct {
	Message string       `json:"message" example:"Login successful"`
	Profile profile.View `json:"profile"`
}

// Register godoc
//
//	@Summary		Register a new account
//	@Description	Creates an account for the username. Usernames are unique; passwords are stored as bcrypt hashes.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		credentialsRequest	true	"Credentials"
//	@Success		201		{object}	messageResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/api/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		response.BadRequest(w, "username and password are required")
		return
	}

	if err := h.svc.Register(req.Username, req.Password); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			response.BadRequest(w, "Username already exists")
			return
		}
		response.InternalError(w, "Failed to register user")
		return
	}

	response.Created(w, messageResponse{Message: "User registered successfully"})
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Verifies credentials and returns the user's profile. No token or session is issued; the client keeps the username.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		credentialsRequest	true	"Credentials"
//	@Success		200		{object}	loginResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		401		{object}	response.ErrorBody
//	@Router			/api/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.svc.Authenticate(req.Username, req.Password); err != nil {
		response.Unauthorized(w, "Invalid credentials")
		return
	}

	response.OK(w, loginResponse{
		Message: "Login successful",
		Profile: h.profiles.Get(req.Username),
	})
}
