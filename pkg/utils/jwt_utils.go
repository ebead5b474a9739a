package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/models"
)

// AccessTokenTTL mirrors the backend's token lifetime. Only the mock backend
// issues tokens; the real client never signs anything.
const AccessTokenTTL = 24 * time.Hour

// GenerateAccessToken creates a signed JWT for the mock backend, using the
// same claim names the production MSWT API uses.
func GenerateAccessToken(secret []byte, userID, username string, role models.Role) (string, error) {
	claims := &models.TokenClaims{
		UserID:   userID,
		Username: username,
		Role:     string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "mswt-mock-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and verifies a JWT token string against the given
// secret. It returns the claims if the token is valid, otherwise an error.
// Used by the mock backend's auth middleware.
func ValidateToken(secret []byte, tokenString string) (*models.TokenClaims, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// DecodeClaims extracts the claim set from a token WITHOUT verifying the
// signature. The client has no signing key; verification belongs to the
// backend. The claims are only used to identify the user after login and to
// reconstruct a partial profile when the profile fetch fails.
func DecodeClaims(tokenString string) (*models.TokenClaims, error) {
	claims := &models.TokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token claims: %w", err)
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("token claims missing User_Id")
	}
	return claims, nil
}
