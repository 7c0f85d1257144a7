package ai

import (
	"context"

	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/present"
)

// Summarizer produces a short recruiter-facing summary of a scored
// candidate report.
type Summarizer interface {
	Summarize(ctx context.Context, view present.CandidateView) (string, error)
}
