package event

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventgallery/service/internal/response"
)

// fileField is the multipart form field holding the event image.
const fileField = "eventImage"

// maxUploadMemory caps the in-memory portion of multipart parsing; larger
// file parts spill to temporary files handled by the parser.
const maxUploadMemory = 32 << 20

// Handler holds HTTP handlers for event image endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new event Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type uploadResponse struct {
	Message  string `json:"message" example:"Upload successful"`
	ImageURL string `json:"imageUrl" example:"http://localhost:9000/event-images/event-1700000000000.png"`
}

type deleteEventRequest struct {
	ImageURL string `json:"imageUrl" example:"http://localhost:9000/event-images/event-1700000000000.png"`
}

// UploadEvent godoc
//
//	@Summary		Upload an event image
//	@Description	Accepts a multipart form with the file field "eventImage", stores the blob in object storage under a timestamped key, and records a catalog row. A catalog insert failure does not fail the upload.
//	@Tags			events
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			eventImage	formData	file	true	"Event image file"
//	@Success		200			{object}	uploadResponse
//	@Failure		400			{object}	response.ErrorBody
//	@Failure		500			{object}	response.ErrorBody
//	@Router			/api/upload-event [post]
func (h *Handler) UploadEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Printf("event: multipart parse failed: %v", err)
		response.InternalError(w, "File parsing failed")
		return
	}

	files := r.MultipartForm.File[fileField]
	if len(files) == 0 {
		response.BadRequest(w, "No file uploaded")
		return
	}
	// The field is not multi-file; when several files arrive, the first wins.
	header := files[0]

	file, err := header.Open()
	if err != nil {
		log.Printf("event: open uploaded file %q failed: %v", header.Filename, err)
		response.InternalError(w, "Failed to process upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("event: read uploaded file %q failed: %v", header.Filename, err)
		response.InternalError(w, "Failed to process upload")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	imageURL, err := h.svc.Upload(r.Context(), header.Filename, contentType, data)
	if err != nil {
		log.Printf("event: upload of %q failed: %v", header.Filename, err)
		response.ErrorDetails(w, http.StatusInternalServerError, "Upload to object storage failed", err.Error())
		return
	}

	response.JSON(w, http.StatusOK, uploadResponse{
		Message:  "Upload successful",
		ImageURL: imageURL,
	})
}

// DeleteEvent godoc
//
//	@Summary		Delete an event and its image
//	@Description	Removes the object named by the final path segment of imageUrl, then its catalog row. A request without imageUrl performs no storage calls and still succeeds. The path id identifies nothing server-side; deletion is keyed off the image URL.
//	@Tags			events
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Event identifier (accepted, unused for lookup)"
//	@Param			request	body		deleteEventRequest	false	"Image URL to delete"
//	@Success		200		{object}	response.Message
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/delete-event/{id} [delete]
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req deleteEventRequest
	_ = json.NewDecoder(r.Body).Decode(&req) // body is optional

	log.Printf("event: delete requested id=%s url=%s", id, req.ImageURL)

	if err := h.svc.Delete(r.Context(), req.ImageURL); err != nil {
		log.Printf("event: delete failed: %v", err)
		response.InternalError(w, "Failed to delete image file")
		return
	}

	response.OK(w, "Event and image deleted successfully")
}

// ListEvents godoc
//
//	@Summary		List event images
//	@Description	Returns all catalog rows, newest first.
//	@Tags			events
//	@Produce		json
//	@Success		200	{array}		Image
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/api/events [get]
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	images, err := h.svc.List(r.Context())
	if err != nil {
		log.Printf("event: list failed: %v", err)
		response.InternalError(w, "Failed to list events")
		return
	}
	response.JSON(w, http.StatusOK, images)
}
