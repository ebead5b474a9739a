package repositories

import (
	"context"
	"encoding/json"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/api"
)

// AuthRepository defines the authentication calls against the MSWT backend.
type AuthRepository interface {
	// Login posts credentials and returns the raw response payload. The
	// backend has shipped three different response shapes over time, so
	// shape dispatch is left to the service layer.
	Login(ctx context.Context, userName, password string) (json.RawMessage, error)
	// Logout notifies the backend. Best-effort; the caller clears local
	// state regardless of the outcome.
	Logout(ctx context.Context) error
}

type authRepository struct {
	client *api.Client
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(client *api.Client) AuthRepository {
	return &authRepository{client: client}
}

type loginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

func (r *authRepository) Login(ctx context.Context, userName, password string) (json.RawMessage, error) {
	var raw json.RawMessage
	err := r.client.Post(ctx, "users/login", loginRequest{UserName: userName, Password: password}, &raw)
	if err != nil {
		return nil, classify(err)
	}
	return raw, nil
}

func (r *authRepository) Logout(ctx context.Context) error {
	if err := r.client.Post(ctx, "users/logout", struct{}{}, nil); err != nil {
		return classify(err)
	}
	return nil
}
