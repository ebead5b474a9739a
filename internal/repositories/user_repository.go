package repositories

import (
	"context"
	"fmt"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/api"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/models"
)

// UserRepository defines profile reads against the MSWT backend.
type UserRepository interface {
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
}

type userRepository struct {
	client *api.Client
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(client *api.Client) UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := r.client.Get(ctx, fmt.Sprintf("users/%s", userID), &user); err != nil {
		return nil, classify(err)
	}
	return &user, nil
}
