package hiredesk

import (
	"context"
	"fmt"

	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/flow"
)

type Jobs struct {
	Items []*Job
}

// Job is a recruiting opening a resume is evaluated against. Immutable from
// the client's point of view once created.
type Job struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Department   string `json:"department,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// Label is how the job appears in selection prompts.
func (j *Job) Label() string {
	department := j.Department
	if department == "" {
		department = "General"
	}
	return fmt.Sprintf("%s - %s", j.Title, department)
}

// ListJobs returns the open job postings.
func (c *Client) ListJobs(ctx context.Context) (*Jobs, error) {
	var items []*Job
	if err := c.getJSON(ctx, c.APIURL+jobsPath, &items); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	return &Jobs{Items: items}, nil
}

// CreateJob posts a new opening and returns the record the server created.
func (c *Client) CreateJob(ctx context.Context, draft flow.JobDraft) (*Job, error) {
	payload := map[string]string{
		"title":        draft.Title,
		"description":  draft.Description,
		"requirements": draft.Requirements,
	}
	if draft.Department != "" {
		payload["department"] = draft.Department
	}

	var created Job
	if err := c.postJSON(ctx, c.APIURL+jobsPath, payload, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

func (j *Jobs) FindByID(id string) *Job {
	for _, job := range j.Items {
		if job.ID == id {
			return job
		}
	}
	return nil
}

func (j *Jobs) FindByTitle(title string) *Job {
	for _, job := range j.Items {
		if job.Title == title {
			return job
		}
	}
	return nil
}

func (j *Jobs) Labels() []string {
	labels := make([]string, 0, len(j.Items))
	for _, job := range j.Items {
		labels = append(labels, job.Label())
	}
	return labels
}
