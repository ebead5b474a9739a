package repositories

import (
	"context"
	"fmt"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/api"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/models"
)

// IncidentRepository defines incident-report access against the MSWT backend.
type IncidentRepository interface {
	FindByUser(ctx context.Context, userID string) ([]models.IncidentReport, error)
	Create(ctx context.Context, report models.IncidentReport) error
}

type incidentRepository struct {
	client *api.Client
}

// NewIncidentRepository creates a new instance of IncidentRepository.
func NewIncidentRepository(client *api.Client) IncidentRepository {
	return &incidentRepository{client: client}
}

func (r *incidentRepository) FindByUser(ctx context.Context, userID string) ([]models.IncidentReport, error) {
	var reports []models.IncidentReport
	if err := r.client.Get(ctx, fmt.Sprintf("reports/user/%s", userID), &reports); err != nil {
		return nil, classify(err)
	}
	return reports, nil
}

func (r *incidentRepository) Create(ctx context.Context, report models.IncidentReport) error {
	if err := r.client.Post(ctx, "reports", report, nil); err != nil {
		return classify(err)
	}
	return nil
}
