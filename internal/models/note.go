package models

type Note struct {
	ID    int  `json:"id"`
	JobID *int `json:"job_id,omitempty"`

	Title string `json:"title"`
	Body  string `json:"body"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
