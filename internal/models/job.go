package models

type Job struct {
	ID int `json:"id"`

	Title   string `json:"title"`
	Company string `json:"company"`
	Status  string `json:"status"`

	URL         string `json:"url,omitempty"`
	Location    string `json:"location,omitempty"`
	SalaryRange string `json:"salary_range,omitempty"`
	Description string `json:"description,omitempty"`

	AppliedDate string `json:"applied_date,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
