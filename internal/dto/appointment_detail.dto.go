package dto

// AppointmentDetail is the detail-modal payload. Missing optional fields are
// defaulted here so the client renders without its own fallbacks.
type AppointmentDetail struct {
	ID int `json:"id"`

	Company      string `json:"company"`
	CalendarType string `json:"calendar_type"`

	StartDate    string `json:"start_date"`
	StartDisplay string `json:"start_display"`
	EndDate      string `json:"end_date,omitempty"`
	EndDisplay   string `json:"end_display,omitempty"`

	DurationHours float64 `json:"duration_hours"`

	Participants   string `json:"participants"`
	Description    string `json:"description,omitempty"`
	Note           string `json:"note,omitempty"`
	OutcomeDisplay string `json:"outcome_display,omitempty"`
	Link           string `json:"link,omitempty"`

	EditURL string `json:"edit_url"`
}
