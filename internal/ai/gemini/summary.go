package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/present"
	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/utils"
)

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Summarizer renders candidate reports into a short recruiter briefing via a
// content generator.
type Summarizer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewSummarizer(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Summarizer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Summarizer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (s *Summarizer) Summarize(ctx context.Context, view present.CandidateView) (string, error) {
	if view.Name == "" {
		return "", fmt.Errorf("candidate name is required")
	}

	payload := map[string]any{
		"name":           view.Name,
		"email":          view.Email,
		"phone":          view.Phone,
		"score":          view.Score,
		"tier":           string(view.Tier),
		"years":          view.Years,
		"skills":         view.Skills,
		"certifications": view.Certifications,
		"assessment":     view.Explanation,
		"uploaded_at":    view.UploadedAt,
	}

	candidateJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal candidate payload: %w", err)
	}

	prompt := buildPrompt(string(candidateJSON))

	s.logger.Debug("gemini summary request",
		zap.String("candidate", view.Name),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, s.maxLogLen)),
	)

	raw, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}

	s.logger.Debug("gemini summary response",
		zap.String("candidate", view.Name),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, s.maxLogLen)),
	)

	return strings.TrimSpace(raw), nil
}

func buildPrompt(candidateJSON string) string {
	return strings.ReplaceAll(promptTemplate, "{{CANDIDATE_JSON}}", candidateJSON)
}
