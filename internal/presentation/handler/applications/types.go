package applications

import (
	"time"

	"github.com/govseva/govseva/internal/domain"
)

// createApplicationRequest represents a new application submitted as JSON
type createApplicationRequest struct {
	ServiceID string         `json:"service_id" example:"health"` // Must reference a seeded service
	Name      string         `json:"name" example:"Asha"`
	Email     string         `json:"email" example:"asha@example.com"`
	Phone     string         `json:"phone,omitempty" example:"+91-9800000000"`
	Purpose   string         `json:"purpose" example:"medical certificate"`
	Details   domain.Details `json:"details,omitempty"` // Free-form key/value payload
}

// updateApplicationRequest represents a status transition
type updateApplicationRequest struct {
	Status string `json:"status" example:"in_review"`
}

type createApplicationResponse struct {
	OK           bool   `json:"ok"`
	ID           uint   `json:"id"`
	TicketNumber string `json:"ticket_number"`
	Status       string `json:"status"`
}

// applyResponse is returned by the multipart apply endpoint
type applyResponse struct {
	OK           bool   `json:"ok"`
	TicketNumber string `json:"ticket_number"` // 8-character uppercase alphanumeric tracking code
}

type applicationStatusResponse struct {
	OK     bool   `json:"ok"`
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

type listApplicationsResponse struct {
	OK           bool                 `json:"ok"`
	Applications []domain.Application `json:"applications"`
}

type getApplicationResponse struct {
	OK          bool               `json:"ok"`
	Application domain.Application `json:"application"`
}

// savedFileResponse is one application carrying an uploaded document;
// the bytes themselves are served by the download endpoint.
type savedFileResponse struct {
	ID           uint      `json:"id"`
	ServiceID    string    `json:"service_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	FileName     string    `json:"file_name"`
	TicketNumber string    `json:"ticket_number"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type savedFilesResponse struct {
	OK    bool                `json:"ok"`
	Files []savedFileResponse `json:"files"`
}
