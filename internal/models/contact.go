package models

type Contact struct {
	ID    int  `json:"id"`
	JobID *int `json:"job_id,omitempty"`

	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`
}
