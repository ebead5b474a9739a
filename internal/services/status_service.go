package services

import (
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/pkg/utils"
)

// Status, priority and schedule-type classification. The backend stores all
// of these as free-text Vietnamese strings with inconsistent casing and
// accenting ("Sắp tới" vs "sap toi"), so every lookup folds the input first.
// All functions here are total: unrecognized input maps to a neutral default,
// never an error.

// StatusCategory is the canonical completion state of a schedule record.
type StatusCategory string

const (
	StatusCompleted  StatusCategory = "completed"
	StatusUpcoming   StatusCategory = "upcoming"
	StatusInProgress StatusCategory = "in_progress"
	StatusIncomplete StatusCategory = "incomplete"
	StatusUnknown    StatusCategory = "unknown"
)

// statusSynonyms lists the folded spellings observed in production data for
// each category. Inputs are matched after utils.Fold, so accented and
// unaccented variants collapse to the same entry.
var statusSynonyms = map[StatusCategory][]string{
	StatusCompleted:  {"hoan thanh", "da hoan thanh", "completed", "done"},
	StatusUpcoming:   {"sap toi", "sap dien ra", "upcoming"},
	StatusInProgress: {"dang lam", "dang tien hanh", "dang thuc hien", "in progress"},
	StatusIncomplete: {"chua hoan thanh", "khong hoan thanh", "bo lo", "incomplete", "missed"},
}

// statusIndex is the folded-string -> category lookup built from statusSynonyms.
var statusIndex = func() map[string]StatusCategory {
	idx := make(map[string]StatusCategory)
	for category, spellings := range statusSynonyms {
		for _, s := range spellings {
			idx[s] = category
		}
	}
	return idx
}()

// ClassifyStatus maps a raw status string to its canonical category.
// Unrecognized or empty statuses classify as StatusUnknown.
func ClassifyStatus(status string) StatusCategory {
	folded := utils.Fold(status)
	if folded == "" {
		return StatusUnknown
	}
	if category, ok := statusIndex[folded]; ok {
		return category
	}
	return StatusUnknown
}

// Color is a display color key consumed by the UI layer.
type Color string

const (
	ColorGreen   Color = "green"
	ColorBlue    Color = "blue"
	ColorOrange  Color = "orange"
	ColorRed     Color = "red"
	ColorNeutral Color = "neutral"
)

// StatusColor maps a schedule status to its display color.
func StatusColor(status string) Color {
	switch ClassifyStatus(status) {
	case StatusCompleted:
		return ColorGreen
	case StatusUpcoming:
		return ColorBlue
	case StatusInProgress:
		return ColorOrange
	case StatusIncomplete:
		return ColorRed
	default:
		return ColorNeutral
	}
}

// priorityColors maps folded incident priorities to display colors.
var priorityColors = map[string]Color{
	"cao":        ColorRed,
	"khan cap":   ColorRed,
	"trung binh": ColorOrange,
	"thap":       ColorGreen,
	"high":       ColorRed,
	"medium":     ColorOrange,
	"low":        ColorGreen,
}

// PriorityColor maps an incident priority to its display color.
func PriorityColor(priority string) Color {
	if c, ok := priorityColors[utils.Fold(priority)]; ok {
		return c
	}
	return ColorNeutral
}

// scheduleTypeIcons maps folded schedule types to icon keys.
var scheduleTypeIcons = map[string]string{
	"don ve sinh": "broom",
	"ve sinh":     "broom",
	"thu gom rac": "trash",
	"bao tri":     "wrench",
	"kiem tra":    "clipboard",
	"dot xuat":    "alert",
}

// ScheduleTypeIcon maps a schedule type to the icon key the UI renders.
func ScheduleTypeIcon(scheduleType string) string {
	if icon, ok := scheduleTypeIcons[utils.Fold(scheduleType)]; ok {
		return icon
	}
	return "calendar"
}
