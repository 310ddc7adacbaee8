package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"pskbooking/internal/bookings/service"
	httputil "pskbooking/pkg/http"
	"pskbooking/pkg/logger"
	"pskbooking/pkg/model"
)

// multipartMemory is the in-memory threshold for multipart parsing; larger
// parts spill to temp files.
const multipartMemory = 32 << 20

type BookingHandler struct {
	service   service.BookingService
	uploadDir string
	log       *logger.Logger
}

func NewBookingHandler(service service.BookingService, uploadDir string, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service:   service,
		uploadDir: uploadDir,
		log:       log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		h.log.Warn("Failed to parse multipart form", "error", err)
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	booking := &model.Booking{
		Date:      r.FormValue("date"),
		TimeSlot:  r.FormValue("timeSlot"),
		EventType: r.FormValue("eventType"),
		Name:      r.FormValue("name"),
		Email:     r.FormValue("email"),
		Phone:     r.FormValue("phone"),
		Location:  r.FormValue("location"),
		Details:   r.FormValue("details"),
	}

	files := r.MultipartForm.File["files"]

	result, err := h.service.Submit(r.Context(), booking, files)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "Create", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/bookings", h.Create)
	router.GET("/submission/:id", h.View)
	// Stored names are unguessable (timestamp + random suffix); anyone holding
	// one may fetch the file.
	router.ServeFiles("/uploads/*filepath", http.Dir(h.uploadDir))
}
