package repository

import (
	"context"

	"github.com/govseva/govseva/internal/domain"
	"gorm.io/gorm"
)

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) domain.ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) List(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	err := r.db.WithContext(ctx).
		Order("service_id ASC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) Exists(ctx context.Context, serviceID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Service{}).
		Where("service_id = ?", serviceID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
