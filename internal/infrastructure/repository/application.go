package repository

import (
	"context"
	"errors"

	"github.com/govseva/govseva/internal/domain"
	"gorm.io/gorm"
)

const maxSavedFiles = 200

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) domain.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *domain.Application) error {
	if application.Status == "" {
		application.Status = domain.ApplicationStatusSubmitted
	}
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) List(ctx context.Context) ([]domain.Application, error) {
	var applications []domain.Application
	err := r.db.WithContext(ctx).
		Order("submission_date DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id uint) (*domain.Application, error) {
	var application domain.Application
	err := r.db.WithContext(ctx).First(&application, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

// UpdateStatus does not check existence first: an unknown id succeeds with
// zero rows affected.
func (r *applicationRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Application{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *applicationRepository) ListWithFiles(ctx context.Context, email string, limit int) ([]domain.Application, error) {
	if limit <= 0 || limit > maxSavedFiles {
		limit = maxSavedFiles
	}

	q := r.db.WithContext(ctx).
		Where("file_name <> '' AND file_data IS NOT NULL").
		Order("submission_date DESC").
		Limit(limit)

	if email != "" {
		q = q.Where("email = ?", email)
	}

	var applications []domain.Application
	if err := q.Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}
