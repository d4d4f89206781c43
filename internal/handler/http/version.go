package http

import (
	"net/http"

	"github.com/MKhiriev/go-travel-journal/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetVersion(r.Context())

	_, _ = utils.WriteJSON(w, version, http.StatusOK)
}
