package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/internal/blog/images"
	"github.com/aussiebroadwan/quill/internal/blog/service"
	"github.com/aussiebroadwan/quill/pkg/blogsdk"
	"github.com/aussiebroadwan/quill/pkg/httpx"
	"github.com/aussiebroadwan/quill/pkg/slogx"
)

// DefaultMaxUploadBytes caps an upload request when no limit is configured.
const DefaultMaxUploadBytes = 10 << 20

const (
	msgNoFile       = "No file provided!"
	msgFileStored   = "File stored."
	msgImageDeleted = "Image deleted."
)

// ImagesHandler serves the image upload and delete endpoints.
type ImagesHandler struct {
	Images         *images.Store
	MaxUploadBytes int64
}

// HandleUpload handles PUT /post-image
//
//	@Summary		Upload Post Image
//	@Description	Stores an image for use as a post's imageUrl. Accepts image/png, image/jpg and image/jpeg; any other
//	@Description	type is treated as no file. When oldPath is set that image is deleted after the new one is stored.
//	@Tags			Images
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token from the login query"
//	@Param			image			formData	file						false	"Image file"
//	@Param			oldPath			formData	string						false	"Public path of the image to replace"
//	@Success		200				{object}	blogsdk.MessageResponse		"No file provided!"
//	@Success		201				{object}	blogsdk.UploadImageResponse	"message, filePath"
//	@Failure		401				{object}	blogsdk.ErrorResponse		"Not authenticated!"
//	@Failure		413				{object}	blogsdk.ErrorResponse		"message"
//	@Failure		429				{object}	blogsdk.ErrorResponse		"message"
//	@Failure		500				{object}	blogsdk.ErrorResponse		"message"
//	@Router			/post-image [put].
func (h *ImagesHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if _, ok := domain.IdentityFromContext(ctx).Require(); !ok {
		httpx.WriteError(w, service.ErrNotAuthenticated)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes())
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			httpx.WriteError(w, httpx.NewError(http.StatusRequestEntityTooLarge, "File too large."))
		case errors.Is(err, http.ErrNotMultipart):
			httpx.WriteJSON(w, http.StatusOK, blogsdk.MessageResponse{Message: msgNoFile})
		default:
			httpx.WriteError(w, httpx.NewError(http.StatusBadRequest, "Invalid multipart form."))
		}
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("image")
	if err != nil {
		httpx.WriteJSON(w, http.StatusOK, blogsdk.MessageResponse{Message: msgNoFile})
		return
	}
	defer file.Close()

	if !images.IsAllowedType(header.Header.Get("Content-Type")) {
		log.Info("rejected upload", "content_type", header.Header.Get("Content-Type"))
		httpx.WriteJSON(w, http.StatusOK, blogsdk.MessageResponse{Message: msgNoFile})
		return
	}

	filePath, err := h.Images.Save(file, header.Filename)
	if err != nil {
		log.Error("failed to store image", "error", err)
		httpx.WriteError(w, err)
		return
	}
	log.Info("image stored", "path", filePath, "size", header.Size)

	if oldPath := strings.TrimSpace(r.FormValue("oldPath")); oldPath != "" && oldPath != filePath {
		if err := h.Images.Clear(oldPath); err != nil {
			log.Warn("failed to clear replaced image", "path", oldPath, "error", err)
		}
	}

	httpx.WriteJSON(w, http.StatusCreated, blogsdk.UploadImageResponse{
		Message:  msgFileStored,
		FilePath: filePath,
	})
}

// HandleDelete handles PUT /delete-image
//
//	@Summary		Delete Image
//	@Description	Deletes a stored image by the public path returned from /post-image
//	@Tags			Images
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token from the login query"
//	@Param			request			body		blogsdk.DeleteImageRequest	true	"Image to delete"
//	@Success		200				{object}	blogsdk.MessageResponse		"Image deleted."
//	@Failure		400				{object}	blogsdk.ErrorResponse		"message"
//	@Failure		401				{object}	blogsdk.ErrorResponse		"Not authenticated!"
//	@Failure		404				{object}	blogsdk.ErrorResponse		"Image not found."
//	@Failure		422				{object}	blogsdk.ErrorResponse		"message, data"
//	@Failure		500				{object}	blogsdk.ErrorResponse		"message"
//	@Router			/delete-image [put].
func (h *ImagesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if _, ok := domain.IdentityFromContext(ctx).Require(); !ok {
		httpx.WriteError(w, service.ErrNotAuthenticated)
		return
	}

	var req blogsdk.DeleteImageRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		httpx.WriteError(w, httpx.NewError(http.StatusBadRequest, "Invalid JSON in request body."))
		return
	}

	if strings.TrimSpace(req.ImagePath) == "" {
		httpx.WriteError(w, service.NewValidationError("imagePath", "imagePath must not be empty"))
		return
	}

	if err := h.Images.Clear(req.ImagePath); err != nil {
		switch {
		case errors.Is(err, images.ErrInvalidPath):
			httpx.WriteError(w, service.NewValidationError("imagePath", "imagePath is invalid"))
		case errors.Is(err, images.ErrNotFound):
			httpx.WriteError(w, httpx.NewError(http.StatusNotFound, "Image not found."))
		default:
			log.Error("failed to delete image", "path", req.ImagePath, "error", err)
			httpx.WriteError(w, err)
		}
		return
	}

	log.Info("image deleted", "path", req.ImagePath)
	httpx.WriteJSON(w, http.StatusOK, blogsdk.MessageResponse{Message: msgImageDeleted})
}

func (h *ImagesHandler) maxUploadBytes() int64 {
	if h.MaxUploadBytes > 0 {
		return h.MaxUploadBytes
	}
	return DefaultMaxUploadBytes
}
