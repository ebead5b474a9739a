package repositories

import (
	"context"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/api"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/models"
)

// AssetRepository defines reads over the facility inventory: restrooms,
// trash bins and their sensors.
type AssetRepository interface {
	FindRestrooms(ctx context.Context) ([]models.Restroom, error)
	FindTrashBins(ctx context.Context) ([]models.TrashBin, error)
	FindSensors(ctx context.Context) ([]models.Sensor, error)
}

type assetRepository struct {
	client *api.Client
}

// NewAssetRepository creates a new instance of AssetRepository.
func NewAssetRepository(client *api.Client) AssetRepository {
	return &assetRepository{client: client}
}

func (r *assetRepository) FindRestrooms(ctx context.Context) ([]models.Restroom, error) {
	var restrooms []models.Restroom
	if err := r.client.Get(ctx, "restrooms", &restrooms); err != nil {
		return nil, classify(err)
	}
	return restrooms, nil
}

func (r *assetRepository) FindTrashBins(ctx context.Context) ([]models.TrashBin, error) {
	var bins []models.TrashBin
	if err := r.client.Get(ctx, "trashbins", &bins); err != nil {
		return nil, classify(err)
	}
	return bins, nil
}

func (r *assetRepository) FindSensors(ctx context.Context) ([]models.Sensor, error) {
	var sensors []models.Sensor
	if err := r.client.Get(ctx, "sensors", &sensors); err != nil {
		return nil, classify(err)
	}
	return sensors, nil
}
