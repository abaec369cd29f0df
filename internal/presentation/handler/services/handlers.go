package services

import (
	"net/http"

	"github.com/govseva/govseva/internal/domain"
	"github.com/govseva/govseva/internal/infrastructure/json"
)

type Handler struct {
	serviceRepository domain.ServiceRepository
}

func NewHandler(serviceRepository domain.ServiceRepository) *Handler {
	return &Handler{serviceRepository: serviceRepository}
}

// ListServicesHandler returns the seeded department reference data.
func (h *Handler) ListServicesHandler(w http.ResponseWriter, r *http.Request) {
	services, err := h.serviceRepository.List(r.Context())
	if err != nil {
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusOK, listServicesResponse{
		OK:       true,
		Services: services,
	})
}
