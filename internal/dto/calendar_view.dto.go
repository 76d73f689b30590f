package dto

// View models handed to the browser dashboard. Click routing lives here as
// prebuilt URLs so all three views stay interchangeable.

type ViewLinks struct {
	Month string `json:"month"`
	Week  string `json:"week"`
	Day   string `json:"day"`
}

type AppointmentBox struct {
	ID           int    `json:"id"`
	Company      string `json:"company"`
	CalendarType string `json:"calendar_type"`
	StartDisplay string `json:"start_display"`
	FullHeight   bool   `json:"full_height"`
	DetailURL    string `json:"detail_url"`
}

type ReminderBox struct {
	ID          int    `json:"id"`
	Message     string `json:"message"`
	TimeDisplay string `json:"time_display"`
}

type MonthDayCell struct {
	Date         string           `json:"date"`
	Day          int              `json:"day"`
	InMonth      bool             `json:"in_month"`
	Today        bool             `json:"today"`
	Past         bool             `json:"past"`
	CreateURL    string           `json:"create_url,omitempty"`
	Appointments []AppointmentBox `json:"appointments"`
	Reminders    []ReminderBox    `json:"reminders"`
}

type MonthView struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Date  string         `json:"date"`
	Days  []MonthDayCell `json:"days"`
	Links ViewLinks      `json:"links"`
}

type HourCell struct {
	Hour         int              `json:"hour"`
	Display      string           `json:"display"`
	Business     bool             `json:"business"`
	CreateURL    string           `json:"create_url"`
	Appointments []AppointmentBox `json:"appointments"`
	Reminders    []ReminderBox    `json:"reminders"`
}

type DayView struct {
	Date         string     `json:"date"`
	Hours        []HourCell `json:"hours"`
	ScrollToHour int        `json:"scroll_to_hour"`
	Links        ViewLinks  `json:"links"`
}

type WeekDayColumn struct {
	Date  string     `json:"date"`
	Day   int        `json:"day"`
	Today bool       `json:"today"`
	Hours []HourCell `json:"hours"`
}

type WeekView struct {
	WeekStart    string          `json:"week_start"`
	Days         []WeekDayColumn `json:"days"`
	ScrollToHour int             `json:"scroll_to_hour"`
	Links        ViewLinks       `json:"links"`
}
