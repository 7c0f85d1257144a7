package hiredesk

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mitchellh/mapstructure"
)

type Candidates struct {
	Items []*Candidate
}

// Candidate is a scored, parsed resume as returned by the server-side
// scoring engine. Read-only for the client.
type Candidate struct {
	Name   string  `json:"name"`
	Email  string  `json:"email,omitempty"`
	Phone  string  `json:"phone,omitempty"`
	Score  float64 `json:"score,omitempty"`
	Resume *Resume `json:"resume,omitempty"`
}

type Resume struct {
	ParsedData *ParsedData `json:"parsed_data,omitempty"`
	UploadedAt string      `json:"uploaded_at,omitempty"`
	File       string      `json:"file,omitempty"`
}

type ParsedData struct {
	Skills         []string `json:"skills,omitempty"`
	Years          float64  `json:"years,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
	Explanation    []string `json:"explanation,omitempty"`
}

// ListCandidates returns the scored candidates uploaded against a job. The
// payload is decoded loosely first so unexpected extra fields from the
// scoring engine never break the listing.
func (c *Client) ListCandidates(ctx context.Context, jobID string) (*Candidates, error) {
	endpoint := c.APIURL + candidatesPath
	if jobID != "" {
		q := url.Values{}
		q.Set("job_id", jobID)
		endpoint += "?" + q.Encode()
	}

	var raw []map[string]any
	if err := c.getJSON(ctx, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	var candidates []*Candidate
	cfg := &mapstructure.DecoderConfig{
		Result:  &candidates,
		TagName: "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}

	return &Candidates{Items: candidates}, nil
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

func (c *Candidates) FindByName(name string) *Candidate {
	for _, candidate := range c.Items {
		if candidate.Name == name {
			return candidate
		}
	}
	return nil
}

func (c *Candidates) Names() []string {
	names := make([]string, 0, len(c.Items))
	for _, candidate := range c.Items {
		names = append(names, candidate.Name)
	}
	return names
}
