package repository

import (
	"context"
	"errors"

	"github.com/govseva/govseva/internal/domain"
	"gorm.io/gorm"
)

type complaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) domain.ComplaintRepository {
	return &complaintRepository{db: db}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	if complaint.Status == "" {
		complaint.Status = domain.ComplaintStatusOpen
	}
	return r.db.WithContext(ctx).Create(complaint).Error
}

func (r *complaintRepository) List(ctx context.Context) ([]domain.Complaint, error) {
	var complaints []domain.Complaint
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *complaintRepository) GetByID(ctx context.Context, id uint) (*domain.Complaint, error) {
	var complaint domain.Complaint
	err := r.db.WithContext(ctx).First(&complaint, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, err
	}
	return &complaint, nil
}

// UpdateStatus does not check existence first: an unknown id succeeds with
// zero rows affected.
func (r *complaintRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Complaint{}).
		Where("id = ?", id).
		Update("status", status).Error
}
