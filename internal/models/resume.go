package models

// Resume content is rich text owned by the backend's editor; the dashboard
// passes it through untouched. Baseline marks a job-independent template.
type Resume struct {
	ID    int  `json:"id"`
	JobID *int `json:"job_id,omitempty"`

	Title    string `json:"title"`
	Baseline bool   `json:"baseline"`
	Content  string `json:"content,omitempty"`

	UpdatedAt string `json:"updated_at,omitempty"`
}
