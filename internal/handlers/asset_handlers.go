package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/mockdata"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/models"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/pkg/utils"
)

// AssetHandler serves the facility inventory (restrooms, trash bins,
// sensors) and incident reports.
type AssetHandler struct {
	store *mockdata.Store
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(store *mockdata.Store) *AssetHandler {
	return &AssetHandler{store: store}
}

// GetRestrooms handles GET restrooms.
func (h *AssetHandler) GetRestrooms(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Restrooms())
}

// GetTrashBins handles GET trashbins.
func (h *AssetHandler) GetTrashBins(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.TrashBins())
}

// GetSensors handles GET sensors.
func (h *AssetHandler) GetSensors(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Sensors())
}

// GetReportsByUser handles GET reports/user/:id.
func (h *AssetHandler) GetReportsByUser(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ReportsForUser(c.Param("id")))
}

// CreateReport handles POST reports. The report is filed under the
// authenticated user regardless of what the body claims.
func (h *AssetHandler) CreateReport(c *gin.Context) {
	var report models.IncidentReport
	if err := c.ShouldBindJSON(&report); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if utils.IsEmpty(report.ReportName) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Tên sự cố không được để trống", ""))
		return
	}
	if callerID, ok := currentUserID(c); ok {
		report.UserID = callerID
	}
	created := h.store.AddReport(report)
	c.JSON(http.StatusCreated, created)
}
