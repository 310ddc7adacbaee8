package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	apperrors "pskbooking/pkg/errors"

	"pskbooking/internal/bookings/view"
)

// View serves the token-gated HTML page for one submission. Errors are plain
// text here, not JSON: the link lands in a browser, not an API client.
func (h *BookingHandler) View(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	viewToken := r.URL.Query().Get("token")

	booking, err := h.service.GetForView(r.Context(), id, viewToken)
	if err != nil {
		appErr := apperrors.AsAppError(err)
		http.Error(w, appErr.Message, appErr.StatusCode())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.Render(w, booking); err != nil {
		h.log.Error("failed to render submission view", "handler", "View", "id", id, "error", err)
	}
}
