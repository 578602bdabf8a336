package repository

import (
	"context"

	"gorm.io/gorm"

	"lagtalk/internal/model"
)

// ComplaintRepository persists moderation reports.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *model.Complaint) error
	FindByID(ctx context.Context, id string) (*model.Complaint, error)
	List(ctx context.Context, unresolvedOnly bool, skip, limit int) ([]model.Complaint, error)
	Update(ctx context.Context, complaint *model.Complaint) error
}

type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository builds a GORM-backed complaint repository.
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *model.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

func (r *complaintRepository) FindByID(ctx context.Context, id string) (*model.Complaint, error) {
	var complaint model.Complaint
	if err := r.db.WithContext(ctx).First(&complaint, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) List(ctx context.Context, unresolvedOnly bool, skip, limit int) ([]model.Complaint, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC").Offset(skip)
	if unresolvedOnly {
		q = q.Where("is_resolved = ?", false)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var complaints []model.Complaint
	if err := q.Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *complaintRepository) Update(ctx context.Context, complaint *model.Complaint) error {
	return r.db.WithContext(ctx).Save(complaint).Error
}
