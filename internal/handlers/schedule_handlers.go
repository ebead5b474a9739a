package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/mockdata"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/models"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/pkg/utils"
)

// ScheduleHandler serves schedule-detail reads and mutations.
type ScheduleHandler struct {
	store *mockdata.Store
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(store *mockdata.Store) *ScheduleHandler {
	return &ScheduleHandler{store: store}
}

// GetSchedulesByUser handles GET scheduledetails/user/:id. Workers may only
// read their own schedule; supervisors and above may read anyone's.
func (h *ScheduleHandler) GetSchedulesByUser(c *gin.Context) {
	requested := c.Param("id")
	callerID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Phiên đăng nhập không hợp lệ", ""))
		return
	}
	if requested != callerID && currentRole(c).Level() < models.RoleSupervisor.Level() {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Không có quyền xem lịch của người khác", ""))
		return
	}
	c.JSON(http.StatusOK, h.store.SchedulesForUser(requested))
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateScheduleStatus handles PUT scheduledetails/:id.
func (h *ScheduleHandler) UpdateScheduleStatus(c *gin.Context) {
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if !h.store.UpdateScheduleStatus(c.Param("id"), req.Status) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Không tìm thấy lịch làm việc", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cập nhật trạng thái thành công"})
}

type ratingRequest struct {
	Rating  float64 `json:"rating" binding:"required"`
	Comment string  `json:"comment"`
}

// SubmitRating handles PUT scheduledetails/scheduledetails/rating/:id. The
// doubled path segment matches the production route. Rating submission is a
// supervisor action.
func (h *ScheduleHandler) SubmitRating(c *gin.Context) {
	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if req.Rating <= 0 || req.Rating > 5 {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Điểm đánh giá phải nằm trong khoảng 0-5", ""))
		return
	}
	if currentRole(c).Level() < models.RoleSupervisor.Level() {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Chỉ giám sát viên mới được đánh giá", ""))
		return
	}
	if !h.store.SetRating(c.Param("id"), req.Rating, req.Comment) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Không tìm thấy lịch làm việc", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đánh giá thành công"})
}
