package backend

import (
	"context"
	"fmt"

	"github.com/dwalbeck/job-tracker-sub001/internal/models"
)

// --------------------------------------------------
// Resumes / Cover letters
// --------------------------------------------------
// Document conversion (PDF/DOCX/ODT) stays on the backend; the dashboard only
// moves the editor's content through.

func (c *Client) ListResumes(ctx context.Context) ([]models.Resume, error) {
	var out []models.Resume
	if err := c.get(ctx, "/resumes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetResume(ctx context.Context, id int) (*models.Resume, error) {
	var out models.Resume
	if err := c.get(ctx, fmt.Sprintf("/resumes/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateResume(ctx context.Context, r *models.Resume) (*models.Resume, error) {
	var out models.Resume
	if err := c.post(ctx, "/resumes", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateResume(ctx context.Context, id int, r *models.Resume) (*models.Resume, error) {
	var out models.Resume
	if err := c.put(ctx, fmt.Sprintf("/resumes/%d", id), r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteResume(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/resumes/%d", id))
}

func (c *Client) ListCoverLetters(ctx context.Context) ([]models.CoverLetter, error) {
	var out []models.CoverLetter
	if err := c.get(ctx, "/cover-letters", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCoverLetter(ctx context.Context, id int) (*models.CoverLetter, error) {
	var out models.CoverLetter
	if err := c.get(ctx, fmt.Sprintf("/cover-letters/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCoverLetter(ctx context.Context, cl *models.CoverLetter) (*models.CoverLetter, error) {
	var out models.CoverLetter
	if err := c.post(ctx, "/cover-letters", cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCoverLetter(ctx context.Context, id int, cl *models.CoverLetter) (*models.CoverLetter, error) {
	var out models.CoverLetter
	if err := c.put(ctx, fmt.Sprintf("/cover-letters/%d", id), cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCoverLetter(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/cover-letters/%d", id))
}
