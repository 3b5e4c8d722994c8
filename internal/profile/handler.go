package profile

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/creatorhub/service/internal/response"
)

// Handler holds HTTP handlers for profile endpoints.
type Handler struct {
	svc      *Service
	maxBytes int64
}

// NewHandler creates a new profile Handler. maxBytes caps the request body
// of avatar and cover uploads.
func NewHandler(svc *Service, maxBytes int64) *Handler {
	return &Handler{svc: svc, maxBytes: maxBytes}
}

type updateRequest struct {
	DisplayName string `json:"displayName" example:"Ada"`
	Bio         string `json:"bio"         example:"analog girl in a digital world"`
}

// Get godoc
//
//	@Summary		Get a profile
//	@Description	Returns the profile for the username, creating defaults on first access. No registration required.
//	@Tags			profiles
//	@Produce		json
//	@Param			username	path		string	true	"Username"
//	@Success		200			{object}	View
//	@Router			/api/profile/{username} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	response.OK(w, h.svc.Get(username))
}

// Update godoc
//
//	@Summary		Update a profile
//	@Description	Partial update: only non-empty fields overwrite existing values.
//	@Tags			profiles
//	@Accept			json
//	@Produce		json
//	@Param			username	path		string			true	"Username"
//	@Param			request		body		updateRequest	true	"Fields to update"
//	@Success		200			{object}	View
//	@Failure		400			{object}	response.ErrorBody
//	@Router			/api/profile/{username} [post]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	response.OK(w, h.svc.Update(username, req.DisplayName, req.Bio))
}

// UploadAvatar godoc
//
//	@Summary		Upload an avatar
//	@Description	Accepts an image in the multipart field "avatar". Repeated uploads overwrite the previous avatar.
//	@Tags			profiles
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			username	path		string	true	"Username"
//	@Param			avatar		formData	file	true	"Avatar image"
//	@Success		200			{object}	View
//	@Failure		400			{object}	response.ErrorBody
//	@Failure		500			{object}	response.ErrorBody
//	@Router			/api/profile/{username}/avatar [post]
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	file, header, err := r.FormFile("avatar")
	if err != nil {
		response.BadRequest(w, "No avatar file uploaded.")
		return
	}
	defer file.Close()

	view, err := h.svc.SetAvatar(r.Context(), username, filepath.Ext(header.Filename),
		header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		response.InternalError(w, "Failed to store avatar")
		return
	}

	response.OK(w, view)
}

// UploadCover godoc
//
//	@Summary		Upload a cover photo
//	@Description	Accepts an image in the multipart field "cover". Repeated uploads overwrite the previous cover photo.
//	@Tags			profiles
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			username	path		string	true	"Username"
//	@Param			cover		formData	file	true	"Cover image"
//	@Success		200			{object}	View
//	@Failure		400			{object}	response.ErrorBody
//	@Failure		500			{object}	response.ErrorBody
//	@Router			/api/profile/{username}/cover [post]
func (h *Handler) UploadCover(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	file, header, err := r.FormFile("cover")
	if err != nil {
		response.BadRequest(w, "No cover photo uploaded.")
		return
	}
	defer file.Close()

	view, err := h.svc.SetCoverPhoto(r.Context(), username, filepath.Ext(header.Filename),
		header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		response.InternalError(w, "Failed to store cover photo")
		return
	}

	response.OK(w, view)
}
