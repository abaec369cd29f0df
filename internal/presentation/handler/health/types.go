package health

import "time"

// healthResponse represents the health status of the API
type healthResponse struct {
	OK        bool      `json:"ok"`
	Status    string    `json:"status" example:"ok"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-01T12:00:00Z"`
}
