package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Hours is a decimal hour count as returned by the backend. The API is not
// consistent about the wire type (number, quoted number, null), so decoding
// never fails: anything unparseable becomes 0.
type Hours float64

func (h *Hours) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*h = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*h = 0
		return nil
	}
	*h = Hours(v)
	return nil
}

func (h Hours) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(h))
}

type Appointment struct {
	ID int `json:"id"`

	StartDate string `json:"start_date"`
	StartTime string `json:"start_time"`
	EndDate   string `json:"end_date,omitempty"`
	EndTime   string `json:"end_time,omitempty"`

	DurationHour Hours `json:"duration_hour"`

	CalendarType string `json:"calendar_type"`
	Company      string `json:"company"`

	Description  string   `json:"description,omitempty"`
	Note         string   `json:"note,omitempty"`
	OutcomeScore *int     `json:"outcome_score,omitempty"`
	Participants []string `json:"participants,omitempty"`
	Link         string   `json:"link,omitempty"`
}

// Duration returns the span in hours, defaulting to 1 when the field is
// absent, unparseable or non-positive.
func (a Appointment) Duration() float64 {
	if a.DurationHour > 0 {
		return float64(a.DurationHour)
	}
	return 1
}
