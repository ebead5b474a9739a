package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat is a float64 that tolerates the backend's inconsistent rating
// encoding: a JSON number, a numeric string (possibly padded with whitespace),
// or null. Anything unparsable decodes to 0.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// MarshalJSON implements json.Marshaler, always emitting a plain number.
func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// ScheduleRecord is one occurrence of a work shift (a "schedule detail" in
// backend terms). It is read-only client-side except for the status and
// rating mutations, both of which go through the backend and trigger a
// re-fetch.
type ScheduleRecord struct {
	ID           string    `json:"scheduleDetailId"`
	ScheduleID   string    `json:"scheduleId,omitempty"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      *string   `json:"endTime,omitempty"`
	Status       string    `json:"status"`
	OwnerID      string    `json:"workerId"`
	SupervisorID string    `json:"supervisorId,omitempty"`
	Rating       FlexFloat `json:"ratingValue"`
	Comment      *string   `json:"comment,omitempty"`
	ScheduleType string    `json:"scheduleType,omitempty"`
	AreaName     string    `json:"areaName,omitempty"`
	Description  string    `json:"description,omitempty"`
}

// DateBucket groups the schedule records sharing one calendar date. Date is
// the YYYY-MM-DD key, or UnscheduledBucket for records whose date could not
// be parsed.
type DateBucket struct {
	Date    string           `json:"date"`
	Records []ScheduleRecord `json:"records"`
}

// UnscheduledBucket is the bucket key for records carrying a missing or
// malformed date. They are kept visible so callers can surface a data-quality
// warning instead of silently losing shifts.
const UnscheduledBucket = "unscheduled"
