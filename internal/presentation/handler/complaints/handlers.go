package complaints

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/govseva/govseva/internal/domain"
	"github.com/govseva/govseva/internal/infrastructure/json"
	"go.uber.org/zap"
)

type Handler struct {
	complaintRepository domain.ComplaintRepository
	logger              *zap.SugaredLogger
}

func NewHandler(complaintRepository domain.ComplaintRepository, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		complaintRepository: complaintRepository,
		logger:              logger,
	}
}

// CreateComplaintHandler files a new complaint. Only the issue text is
// required; name and contact are optional.
func (h *Handler) CreateComplaintHandler(w http.ResponseWriter, r *http.Request) {
	var req createComplaintRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err.Error())
		return
	}

	issue := strings.TrimSpace(req.Issue)
	if issue == "" {
		json.WriteValidationError(w, "issue is required")
		return
	}

	complaint := &domain.Complaint{
		Name:    strings.TrimSpace(req.Name),
		Contact: strings.TrimSpace(req.Contact),
		Issue:   issue,
		Status:  domain.ComplaintStatusOpen,
	}

	if err := h.complaintRepository.Create(r.Context(), complaint); err != nil {
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusOK, complaintStatusResponse{
		OK:     true,
		ID:     complaint.ID,
		Status: complaint.Status,
	})
}

// ListComplaintsHandler returns all complaints, newest first.
func (h *Handler) ListComplaintsHandler(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.complaintRepository.List(r.Context())
	if err != nil {
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusOK, listComplaintsResponse{
		OK:         true,
		Complaints: complaints,
	})
}

// GetComplaintHandler returns a single complaint by id.
func (h *Handler) GetComplaintHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		json.WriteNotFound(w)
		return
	}

	complaint, err := h.complaintRepository.GetByID(r.Context(), id)
	if err != nil {
		if err == domain.ErrComplaintNotFound {
			json.WriteNotFound(w)
			return
		}
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusOK, getComplaintResponse{
		OK:        true,
		Complaint: *complaint,
	})
}

// UpdateComplaintHandler sets the status of a complaint. The update is
// unconditional: an unknown id succeeds with zero rows affected.
func (h *Handler) UpdateComplaintHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		json.WriteNotFound(w)
		return
	}

	var req updateComplaintRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err.Error())
		return
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		json.WriteValidationError(w, "status is required")
		return
	}

	if err := h.complaintRepository.UpdateStatus(r.Context(), id, status); err != nil {
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusOK, complaintStatusResponse{
		OK:     true,
		ID:     id,
		Status: status,
	})
}

func parseID(r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
