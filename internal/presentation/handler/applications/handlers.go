package applications

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/govseva/govseva/internal/domain"
	"github.com/govseva/govseva/internal/infrastructure/json"
	"github.com/govseva/govseva/internal/infrastructure/validate"
	"go.uber.org/zap"
)

const maxUploadBytes = 16 << 20 // 16MB

type Handler struct {
	applicationRepository domain.ApplicationRepository
	serviceRepository     domain.ServiceRepository
	logger                *zap.SugaredLogger
}

func NewHandler(
	applicationRepository domain.ApplicationRepository,
	serviceRepository domain.ServiceRepository,
	logger *zap.SugaredLogger,
) *Handler {
	return &Handler{
		applicationRepository: applicationRepository,
		serviceRepository:     serviceRepository,
		logger:                logger,
	}
}

var (
	validateName    = validate.Field("name", validate.Required(), validate.MaxLength(200))
	validateEmail   = validate.Field("email", validate.Required(), validate.Email())
	validatePurpose = validate.Field("purpose", validate.Required())
	validateService = validate.Field("service_id", validate.Required())
)

func validateApplicationInput(serviceID, name, email, purpose string) error {
	if err := validateService(serviceID); err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	return validatePurpose(purpose)
}

// CreateApplicationHandler files an application from a JSON body. The
// details payload round-trips through a serialized text column.
func (h *Handler) CreateApplicationHandler(w http.ResponseWriter, r *http.Request) {
	var req createApplicationRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err.Error())
		return
	}

	serviceID := strings.TrimSpace(req.ServiceID)
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	purpose := strings.TrimSpace(req.Purpose)

	if err := validateApplicationInput(serviceID, name, email, purpose); err != nil {
		json.WriteValidationError(w, err.Error())
		return
	}

	application := &domain.Application{
		ServiceID:    serviceID,
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		Purpose:      purpose,
		Details:      req.Details,
		TicketNumber: domain.NewTicketNumber(),
		Status:       domain.ApplicationStatusSubmitted,
	}

	if !h.insertApplication(w, r, application) {
		return
	}

	json.Write(w, http.StatusOK, createApplicationResponse{
		OK:           true,
		ID:           application.ID,
		TicketNumber: application.TicketNumber,
		Status:       application.Status,
	})
}

// ApplyHandler files an application from a multipart form, optionally
// attaching an uploaded document stored inline with the record.
func (h *Handler) ApplyHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		json.WriteValidationError(w, "invalid multipart form")
		return
	}

	serviceID := strings.TrimSpace(r.FormValue("service_id"))
	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	purpose := strings.TrimSpace(r.FormValue("purpose"))

	if err := validateApplicationInput(serviceID, name, email, purpose); err != nil {
		json.WriteValidationError(w, err.Error())
		return
	}

	application := &domain.Application{
		ServiceID:    serviceID,
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(r.FormValue("phone")),
		Purpose:      purpose,
		TicketNumber: domain.NewTicketNumber(),
		Status:       domain.ApplicationStatusSubmitted,
	}

	file, header, err := r.FormFile("document")
	if err == nil {
		defer file.Close()

		data, readErr := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if readErr != nil {
			json.WriteInternalError(w, readErr)
			return
		}

		application.FileName = header.Filename
		application.FileData = data
	}

	if !h.insertApplication(w, r, application) {
		return
	}

	json.Write(w, http.StatusOK, applyResponse{
		OK:           true,
		TicketNumber: application.TicketNumber,
	})
}

// insertApplication checks the service reference and creates the record.
// It writes the error response itself and reports whether it succeeded.
func (h *Handler) insertApplication(w http.ResponseWriter, r *http.Request, application *domain.Application) bool {
	exists, err := h.serviceRepository.Exists(r.Context(), application.ServiceID)
	if err != nil {
		json.WriteInternalError(w, err)
		return false
	}
	if !exists {
		json.WriteError(w, http.StatusNotFound, "unknown service_id")
		return false
	}

	if err := h.applicationRepository.Create(r.Context(), application); err != nil {
		json.WriteInternalError(w, err)
		return false
	}

	return true
}

// ListApplicationsHandler returns all applications, newest first. File
// bytes are never included in listings.
func (h *Handler) ListApplicationsHandler(w http.ResponseWriter, r *http.Request) {
	applications, err := h.applicationRepository.List(r.Context())
	if err != nil {
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusOK, listApplicationsResponse{
		OK:           true,
		Applications: applications,
	})
}

// GetApplicationHandler returns a single application by id.
func (h *Handler) GetApplicationHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		json.WriteNotFound(w)
		return
	}

	application, err := h.applicationRepository.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			json.WriteNotFound(w)
			return
		}
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusOK, getApplicationResponse{
		OK:          true,
		Application: *application,
	})
}

// UpdateApplicationHandler sets the status of an application. The update
// is unconditional: an unknown id succeeds with zero rows affected.
func (h *Handler) UpdateApplicationHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		json.WriteNotFound(w)
		return
	}

	var req updateApplicationRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err.Error())
		return
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		json.WriteValidationError(w, "status is required")
		return
	}

	if err := h.applicationRepository.UpdateStatus(r.Context(), id, status); err != nil {
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusOK, applicationStatusResponse{
		OK:     true,
		ID:     id,
		Status: status,
	})
}

// SavedFilesHandler lists applications carrying an uploaded document,
// optionally filtered by applicant email, newest first, capped at 200.
func (h *Handler) SavedFilesHandler(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))

	applications, err := h.applicationRepository.ListWithFiles(r.Context(), email, 200)
	if err != nil {
		json.WriteInternalError(w, err)
		return
	}

	files := make([]savedFileResponse, 0, len(applications))
	for _, a := range applications {
		files = append(files, savedFileResponse{
			ID:           a.ID,
			ServiceID:    a.ServiceID,
			Name:         a.Name,
			Email:        a.Email,
			FileName:     a.FileName,
			TicketNumber: a.TicketNumber,
			Status:       a.Status,
			CreatedAt:    a.CreatedAt,
		})
	}

	json.Write(w, http.StatusOK, savedFilesResponse{
		OK:    true,
		Files: files,
	})
}

// DownloadHandler streams the stored document bytes back with the stored
// filename and a generic binary content type.
func (h *Handler) DownloadHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		json.WriteNotFound(w)
		return
	}

	application, err := h.applicationRepository.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			json.WriteNotFound(w)
			return
		}
		json.WriteInternalError(w, err)
		return
	}

	if !application.HasFile() {
		json.WriteNotFound(w)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", application.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(application.FileData)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(application.FileData)
}

func parseID(r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
