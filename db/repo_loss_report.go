package db

import (
	"context"

	"lostfound/models"
)

func (r *Repo) CreateLossReport(ctx context.Context, lr *models.LossReport) error {
	return r.DB.WithContext(ctx).Create(lr).Error
}

func (r *Repo) FindLossReportByID(ctx context.Context, id string) (*models.LossReport, error) {
	var lr models.LossReport
	if err := r.DB.WithContext(ctx).First(&lr, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &lr, nil
}

func (r *Repo) ListLossReportsByOwner(ctx context.Context, ownerID string) ([]models.LossReport, error) {
	var reports []models.LossReport
	err := r.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}
