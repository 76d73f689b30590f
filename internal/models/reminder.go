package models

type Reminder struct {
	ID int `json:"id"`

	ReminderDate    string `json:"reminder_date"`
	ReminderTime    string `json:"reminder_time,omitempty"`
	ReminderMessage string `json:"reminder_message"`
}
