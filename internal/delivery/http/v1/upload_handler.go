package v1

import (
	"net/http"
	"path/filepath"
	"strings"

	"titoubarz-backend/internal/domain"
	"titoubarz-backend/pkg/logger"
	"titoubarz-backend/pkg/storage"
	"titoubarz-backend/pkg/utils"
)

var (
	allowedMimeTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/webp": true,
		"image/gif":  true,
	}
	allowedExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".webp": true,
		".gif":  true,
	}
)

// UploadHandler accepts product images, normalizes them and stores them on
// R2. Admin only.
type UploadHandler struct {
	storage       *storage.R2Storage
	maxUploadSize int64
}

func NewUploadHandler(s *storage.R2Storage, maxUploadSizeMB int64) *UploadHandler {
	return &UploadHandler{
		storage:       s,
		maxUploadSize: maxUploadSizeMB << 20,
	}
}

// UploadFile handles POST /api/upload
func (h *UploadHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "File too large or invalid format")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedMimeTypes[contentType] {
		utils.WriteError(w, http.StatusBadRequest, "Invalid file type. Allowed: JPEG, PNG, WebP, GIF")
		return
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		utils.WriteError(w, http.StatusBadRequest, "Invalid file extension")
		return
	}

	processed, err := utils.ProcessImage(file, header.Filename)
	if err != nil {
		logger.Error().Err(err).Str("file", header.Filename).Msg("Image processing failed")
		utils.WriteError(w, http.StatusInternalServerError, "Failed to process image")
		return
	}

	url, key, err := h.storage.UploadBuffer(r.Context(), processed.Data, processed.ContentType)
	if err != nil {
		logger.Error().Err(err).Msg("Image upload failed")
		utils.WriteError(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	size := int64(len(processed.Data))
	format := strings.TrimPrefix(processed.ContentType, "image/")
	utils.WriteSuccess(w, http.StatusOK, "", domain.ProductImage{
		URL:      url,
		PublicID: &key,
		Width:    &processed.Width,
		Height:   &processed.Height,
		Format:   &format,
		Size:     &size,
	})
}
