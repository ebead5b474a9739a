package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus_SynonymsAndFolding(t *testing.T) {
	cases := map[string]StatusCategory{
		"Hoàn thành":       StatusCompleted,
		"hoan thanh":       StatusCompleted,
		"  HOÀN THÀNH  ":   StatusCompleted,
		"Sắp tới":          StatusUpcoming,
		"sap toi":          StatusUpcoming,
		"Đang làm":         StatusInProgress,
		"dang lam":         StatusInProgress,
		"Chưa hoàn thành":  StatusIncomplete,
		"Bỏ lỡ":            StatusIncomplete,
		"bo lo":            StatusIncomplete,
		"":                 StatusUnknown,
		"banana":           StatusUnknown,
		"trạng thái mới??": StatusUnknown,
	}
	for input, want := range cases {
		assert.Equalf(t, want, ClassifyStatus(input), "input %q", input)
	}
}

func TestStatusColor_TotalWithNeutralDefault(t *testing.T) {
	assert.Equal(t, ColorGreen, StatusColor("Hoàn thành"))
	assert.Equal(t, ColorBlue, StatusColor("sap toi"))
	assert.Equal(t, ColorOrange, StatusColor("Đang làm"))
	assert.Equal(t, ColorRed, StatusColor("Bỏ lỡ"))
	assert.Equal(t, ColorNeutral, StatusColor("banana"))
	assert.Equal(t, ColorNeutral, StatusColor(""))
}

func TestPriorityColor(t *testing.T) {
	assert.Equal(t, ColorRed, PriorityColor("Cao"))
	assert.Equal(t, ColorRed, PriorityColor("khẩn cấp"))
	assert.Equal(t, ColorOrange, PriorityColor("Trung bình"))
	assert.Equal(t, ColorGreen, PriorityColor("thấp"))
	assert.Equal(t, ColorNeutral, PriorityColor("whatever"))
}

func TestScheduleTypeIcon(t *testing.T) {
	assert.Equal(t, "broom", ScheduleTypeIcon("Dọn vệ sinh"))
	assert.Equal(t, "trash", ScheduleTypeIcon("thu gom rác"))
	assert.Equal(t, "wrench", ScheduleTypeIcon("Bảo trì"))
	assert.Equal(t, "calendar", ScheduleTypeIcon("mystery"))
}
