package present

import (
	"fmt"
	"strings"

	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/hiredesk"
)

// CandidateView is a point-in-time snapshot of one scored candidate, ready
// for display. Optional payload fields are already defaulted.
type CandidateView struct {
	Name           string
	Initial        string
	Email          string
	Phone          string
	Score          float64
	ScoreLabel     string
	Tier           Tier
	Skills         []string
	Years          float64
	Certifications []string
	Explanation    []string
	UploadedAt     string
	ResumeURL      string
	HasResumeFile  bool
}

// NewCandidateView assembles the display view from a raw candidate record.
func NewCandidateView(c *hiredesk.Candidate) CandidateView {
	view := CandidateView{
		Name:           c.Name,
		Initial:        Initial(c.Name),
		Email:          c.Email,
		Phone:          c.Phone,
		Score:          c.Score,
		ScoreLabel:     FormatScore(c.Score),
		Tier:           BucketFor(c.Score),
		Skills:         []string{},
		Certifications: []string{},
		Explanation:    []string{},
		UploadedAt:     NotAvailable,
	}

	resume := c.Resume
	if resume == nil {
		return view
	}

	view.UploadedAt = FormatUploadedAt(resume.UploadedAt)
	view.ResumeURL = resume.File
	view.HasResumeFile = resume.File != ""

	if parsed := resume.ParsedData; parsed != nil {
		if parsed.Skills != nil {
			view.Skills = parsed.Skills
		}
		if parsed.Certifications != nil {
			view.Certifications = parsed.Certifications
		}
		if parsed.Explanation != nil {
			view.Explanation = parsed.Explanation
		}
		view.Years = parsed.Years
	}

	return view
}

// Render produces the plain-text candidate report printed by the CLI.
func (v CandidateView) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  [%s]\n", v.Name, v.Initial)
	fmt.Fprintf(&b, "Match score: %s (%s)\n", v.ScoreLabel, v.Tier)
	fmt.Fprintf(&b, "Email:       %s\n", orNotProvided(v.Email))
	fmt.Fprintf(&b, "Phone:       %s\n", orNotProvided(v.Phone))
	fmt.Fprintf(&b, "Experience:  %g years\n", v.Years)
	fmt.Fprintf(&b, "Uploaded:    %s\n", v.UploadedAt)

	if len(v.Skills) > 0 {
		fmt.Fprintf(&b, "Skills (%d): %s\n", len(v.Skills), strings.Join(v.Skills, ", "))
	}

	if len(v.Certifications) > 0 {
		b.WriteString("Certifications:\n")
		for _, cert := range v.Certifications {
			fmt.Fprintf(&b, "  - %s\n", cert)
		}
	} else {
		b.WriteString("No certifications listed\n")
	}

	if len(v.Explanation) > 0 {
		b.WriteString("Assessment:\n")
		for _, line := range v.Explanation {
			fmt.Fprintf(&b, "  - %s\n", line)
		}
	}

	if v.HasResumeFile {
		fmt.Fprintf(&b, "Resume:      %s\n", v.ResumeURL)
	}

	return b.String()
}

func orNotProvided(s string) string {
	if s == "" {
		return "Not provided"
	}
	return s
}
