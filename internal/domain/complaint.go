package domain

import (
	"context"
	"errors"
	"time"
)

var ErrComplaintNotFound = errors.New("complaint not found")

// Complaint statuses. Status is free text at the storage level; these are
// the values the frontend understands.
const (
	ComplaintStatusOpen       = "open"
	ComplaintStatusInProgress = "in_progress"
	ComplaintStatusResolved   = "resolved"
	ComplaintStatusClosed     = "closed"
)

type Complaint struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:text"`
	Contact   string    `json:"contact" gorm:"type:text"`
	Issue     string    `json:"issue" gorm:"type:text"`
	Status    string    `json:"status" gorm:"type:text;default:open"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Complaint) TableName() string { return "complaints" }

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *Complaint) error
	// List returns all complaints, newest first.
	List(ctx context.Context) ([]Complaint, error)
	GetByID(ctx context.Context, id uint) (*Complaint, error)
	// UpdateStatus is unconditional: updating an id that does not exist
	// succeeds with zero rows affected.
	UpdateStatus(ctx context.Context, id uint, status string) error
}
