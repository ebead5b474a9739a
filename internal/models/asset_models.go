package models

// Restroom is a managed restroom the cleaning staff services.
type Restroom struct {
	RestroomID     string `json:"restroomId"`
	RestroomNumber string `json:"restroomNumber"`
	AreaName       string `json:"areaName,omitempty"`
	Description    string `json:"description,omitempty"`
	Status         string `json:"status,omitempty"`
}

// TrashBin is a managed trash collection point.
type TrashBin struct {
	TrashBinID string `json:"trashBinId"`
	Location   string `json:"location"`
	AreaName   string `json:"areaName,omitempty"`
	Status     string `json:"status,omitempty"`
}

// Sensor is a fill-level or air-quality sensor attached to a bin or restroom.
type Sensor struct {
	SensorID   string `json:"sensorId"`
	SensorName string `json:"sensorName"`
	Type       string `json:"type,omitempty"`
	Status     string `json:"status,omitempty"`
}

// IncidentReport is a staff-filed incident (broken equipment, spill, ...).
// Priority and status are free-text Vietnamese strings classified client-side.
type IncidentReport struct {
	ReportID    string  `json:"reportId"`
	ReportName  string  `json:"reportName"`
	Description string  `json:"description,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	Status      string  `json:"status,omitempty"`
	Date        string  `json:"date,omitempty"`
	UserID      string  `json:"userId,omitempty"`
	Image       *string `json:"image,omitempty"`
}
