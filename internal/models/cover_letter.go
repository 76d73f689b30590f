package models

type CoverLetter struct {
	ID    int  `json:"id"`
	JobID *int `json:"job_id,omitempty"`

	Title   string `json:"title"`
	Content string `json:"content,omitempty"`

	UpdatedAt string `json:"updated_at,omitempty"`
}
