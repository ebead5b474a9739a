package repositories

import (
	"context"
	"fmt"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/api"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/models"
)

// ScheduleRepository defines schedule-detail access against the MSWT backend.
type ScheduleRepository interface {
	FindByUser(ctx context.Context, userID string) ([]models.ScheduleRecord, error)
	// UpdateStatus transitions a schedule detail (e.g. marking it complete).
	UpdateStatus(ctx context.Context, scheduleDetailID, status string) error
	// SubmitRating sets the supervisor rating and comment on a completed
	// schedule detail.
	SubmitRating(ctx context.Context, scheduleDetailID string, rating float64, comment string) error
}

type scheduleRepository struct {
	client *api.Client
}

// NewScheduleRepository creates a new instance of ScheduleRepository.
func NewScheduleRepository(client *api.Client) ScheduleRepository {
	return &scheduleRepository{client: client}
}

func (r *scheduleRepository) FindByUser(ctx context.Context, userID string) ([]models.ScheduleRecord, error) {
	var records []models.ScheduleRecord
	if err := r.client.Get(ctx, fmt.Sprintf("scheduledetails/user/%s", userID), &records); err != nil {
		return nil, classify(err)
	}
	return records, nil
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (r *scheduleRepository) UpdateStatus(ctx context.Context, scheduleDetailID, status string) error {
	path := fmt.Sprintf("scheduledetails/%s", scheduleDetailID)
	if err := r.client.Put(ctx, path, statusUpdateRequest{Status: status}, nil); err != nil {
		return classify(err)
	}
	return nil
}

type ratingRequest struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

func (r *scheduleRepository) SubmitRating(ctx context.Context, scheduleDetailID string, rating float64, comment string) error {
	// The doubled path segment is not a typo: it is what the backend
	// actually serves for the rating update.
	path := fmt.Sprintf("scheduledetails/scheduledetails/rating/%s", scheduleDetailID)
	if err := r.client.Put(ctx, path, ratingRequest{Rating: rating, Comment: comment}, nil); err != nil {
		return classify(err)
	}
	return nil
}
