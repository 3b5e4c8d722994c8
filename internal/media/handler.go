package media

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/creatorhub/service/internal/response"
	"github.com/creatorhub/service/internal/storage"
)

// Handler holds HTTP handlers for media endpoints.
type Handler struct {
	svc      *Service
	maxBytes int64
}

// NewHandler creates a new media Handler. maxBytes caps the request body of
// upload endpoints.
func NewHandler(svc *Service, maxBytes int64) *Handler {
	return &Handler{svc: svc, maxBytes: maxBytes}
}

type uploadResponse struct {
	Message string `json:"message" example:"File uploaded successfully"`
	File    string `json:"file"    example:"/uploads/cat.png"`
}

type deleteResponse struct {
	Message string `json:"message" example:"Media deleted successfully"`
	Deleted Record `json:"deleted"`
}

// Upload godoc
//
//	@Summary		Upload a media file
//	@Description	Accepts one image/audio/video file in the multipart field "file". Files above the size ceiling or outside the MIME allow-list are rejected.
//	@Tags			media
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Media file"
//	@Success		200		{object}	uploadResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/api/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "No files were uploaded.")
		return
	}
	defer file.Close()

	rec, err := h.svc.Intake(r.Context(), header.Filename, header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedType):
			response.BadRequest(w, "Unsupported file type")
		case errors.Is(err, storage.ErrInvalidName):
			response.BadRequest(w, "Invalid file name")
		default:
			response.InternalError(w, "Failed to store file")
		}
		return
	}

	response.OK(w, uploadResponse{Message: "File uploaded successfully", File: rec.Path})
}

// List godoc
//
//	@Summary		List all media
//	@Description	Returns every upload in insertion order. The listing is global across users.
//	@Tags			media
//	@Produce		json
//	@Success		200	{array}	Record
//	@Router			/api/media [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.svc.List())
}

// Delete godoc
//
//	@Summary		Delete a media item
//	@Description	Removes the metadata record and best-effort deletes the backing file.
//	@Tags			media
//	@Produce		json
//	@Param			filename	path		string	true	"Uploaded file name"
//	@Success		200			{object}	deleteResponse
//	@Failure		404			{object}	response.ErrorBody
//	@Router			/api/media/{filename} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	rec, err := h.svc.Delete(r.Context(), filename)
	if err != nil {
		response.NotFound(w, "Media not found")
		return
	}

	response.OK(w, deleteResponse{Message: "Media deleted successfully", Deleted: rec})
}
