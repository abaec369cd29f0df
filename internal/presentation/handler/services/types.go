package services

import "github.com/govseva/govseva/internal/domain"

type listServicesResponse struct {
	OK       bool             `json:"ok"`
	Services []domain.Service `json:"services"`
}
