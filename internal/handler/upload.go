package handler

import (
	"asset-management-api/internal/middleware"
	"asset-management-api/pkg/errors"
	"asset-management-api/pkg/validation"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// multipartOverhead allows for headers and non-file fields around the file
const multipartOverhead = 1 << 20

// UploadHandler accepts a multipart "file" part and acknowledges it. The
// content is read to the size limit and discarded.
func (h *Handler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	maxBytes := h.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = validation.DefaultMaxUploadSize
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)

	reader, err := r.MultipartReader()
	if err != nil {
		h.rejectUpload(w, validation.ErrNoFilePart)
		return
	}

	for {
		part, err := reader.NextPart()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			h.Logger.Printf("Upload read error: %v", err)
			h.ErrorHandler.HandleAppError(w, errors.BadRequestError("Malformed upload"))
			return
		}
		if part.FormName() != validation.UploadFieldName {
			part.Close()
			continue
		}

		filename, err := validation.ValidateUploadFilename(part.FileName())
		if err != nil {
			part.Close()
			h.rejectUpload(w, err)
			return
		}

		size, err := io.Copy(io.Discard, io.LimitReader(part, maxBytes+1))
		part.Close()
		if err != nil {
			h.Logger.Printf("Upload read error for %q: %v", filename, err)
			h.ErrorHandler.HandleAppError(w, errors.BadRequestError("Malformed upload"))
			return
		}
		if err := validation.ValidateUploadSize(size, maxBytes); err != nil {
			h.rejectUpload(w, err)
			return
		}

		uploadID := uuid.NewString()
		h.Logger.Printf("Upload accepted: ID=%s, File=%q, Size=%d, Request-ID=%s",
			uploadID, filename, size, middleware.RequestIDFromContext(r.Context()))
		h.ErrorHandler.SendSuccessResponse(w, map[string]interface{}{
			"message":   "File uploaded successfully",
			"filename":  filename,
			"upload_id": uploadID,
		})
		return
	}

	h.rejectUpload(w, validation.ErrNoFilePart)
}

// rejectUpload maps an upload validation error onto a 400 message
func (h *Handler) rejectUpload(w http.ResponseWriter, err error) {
	message := err.Error()
	switch {
	case stderrors.Is(err, validation.ErrNoFilePart):
		message = "No file part"
	case stderrors.Is(err, validation.ErrEmptyFilename):
		message = "No file selected"
	case stderrors.Is(err, validation.ErrFileTooLarge):
		message = "File too large"
	}
	h.ErrorHandler.HandleAppError(w, errors.BadRequestError(message))
}
