// Package handlers implements the gin handlers of the local mock backend.
// The mock serves the same REST surface (and the same quirks) as the
// production MSWT API so the client can be developed and tested offline.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/mockdata"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/models"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/pkg/utils"
)

// LoginShape selects which historical response shape the login endpoint
// emits. The production backend has shipped all three.
type LoginShape string

const (
	// ShapeTokenAndUser is the current {token, user} envelope.
	ShapeTokenAndUser LoginShape = "full"
	// ShapeBareToken answers with just the JWT string.
	ShapeBareToken LoginShape = "token"
	// ShapeLegacyProfile answers with the user object and no token.
	ShapeLegacyProfile LoginShape = "legacy"
)

// AuthHandler serves login, logout and profile reads.
type AuthHandler struct {
	store  *mockdata.Store
	secret []byte
	shape  LoginShape
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(store *mockdata.Store, secret []byte, shape LoginShape) *AuthHandler {
	if shape == "" {
		shape = ShapeTokenAndUser
	}
	return &AuthHandler{store: store, secret: secret, shape: shape}
}

type loginRequest struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginUser handles POST users/login.
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "LoginUser: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Dữ liệu đăng nhập không hợp lệ", err.Error()))
		return
	}

	user, locked, ok := h.store.Authenticate(req.UserName, req.Password)
	if locked {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Tài khoản đã bị khóa", ""))
		return
	}
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Sai tài khoản hoặc mật khẩu", ""))
		return
	}

	switch h.shape {
	case ShapeLegacyProfile:
		c.JSON(http.StatusOK, user)
		return
	default:
	}

	token, err := utils.GenerateAccessToken(h.secret, user.UserID, user.UserName, user.Role)
	if err != nil {
		utils.LogError(err, "LoginUser: token generation failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Lỗi máy chủ", ""))
		return
	}

	if h.shape == ShapeBareToken {
		c.JSON(http.StatusOK, token)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// GetUser handles GET users/:id.
func (h *AuthHandler) GetUser(c *gin.Context) {
	user, ok := h.store.FindUser(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Không tìm thấy người dùng", ""))
		return
	}
	c.JSON(http.StatusOK, user)
}

// LogoutUser handles POST users/logout. Stateless tokens make this an
// acknowledgement; the client discards its local state.
func (h *AuthHandler) LogoutUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Đăng xuất thành công"})
}

// currentUserID pulls the authenticated user id set by the middleware.
func currentUserID(c *gin.Context) (string, bool) {
	raw, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := raw.(string)
	return id, ok && id != ""
}

// currentRole pulls the authenticated role set by the middleware.
func currentRole(c *gin.Context) models.Role {
	raw, exists := c.Get("userRole")
	if !exists {
		return ""
	}
	if role, ok := raw.(string); ok {
		return models.RoleFromName(role)
	}
	return ""
}
