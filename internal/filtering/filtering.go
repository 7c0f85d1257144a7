// Package filtering narrows a scored-candidate list before display.
package filtering

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/hiredesk"
	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/present"
)

// Filter is a single narrowing step applied to the candidate list.
type Filter interface {
	Name() string
	Apply(c *hiredesk.Candidates) (*hiredesk.Candidates, Step, error)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Run executes the supplied filters sequentially.
func Run(logger *zap.Logger, steps []Filter, c *hiredesk.Candidates) (*hiredesk.Candidates, error) {
	for _, step := range steps {
		next, info, err := step.Apply(c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if logger != nil && info.Dropped > 0 {
			logger.Info("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		c = next
	}

	return c, nil
}

func keep(c *hiredesk.Candidates, pred func(*hiredesk.Candidate) bool) (*hiredesk.Candidates, Step) {
	initial := c.Len()
	kept := make([]*hiredesk.Candidate, 0, initial)
	for _, candidate := range c.Items {
		if pred(candidate) {
			kept = append(kept, candidate)
		}
	}

	return &hiredesk.Candidates{Items: kept}, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}
}

type minScoreFilter struct {
	min float64
}

// NewMinScore creates a filter that removes candidates scoring below min.
func NewMinScore(min float64) Filter {
	return &minScoreFilter{min: min}
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) Apply(c *hiredesk.Candidates) (*hiredesk.Candidates, Step, error) {
	next, step := keep(c, func(candidate *hiredesk.Candidate) bool {
		return candidate.Score >= f.min
	})
	return next, step, nil
}

type tierFilter struct {
	tier present.Tier
}

// NewTier creates a filter that keeps only candidates in the given score tier.
func NewTier(tier present.Tier) Filter {
	return &tierFilter{tier: tier}
}

func (f *tierFilter) Name() string { return "tier" }

func (f *tierFilter) Apply(c *hiredesk.Candidates) (*hiredesk.Candidates, Step, error) {
	next, step := keep(c, func(candidate *hiredesk.Candidate) bool {
		return present.BucketFor(candidate.Score) == f.tier
	})
	return next, step, nil
}

type requireContactFilter struct{}

// NewRequireContact creates a filter that removes candidates whose parsed
// resume carried neither an email nor a phone number.
func NewRequireContact() Filter {
	return &requireContactFilter{}
}

func (f *requireContactFilter) Name() string { return "require_contact" }

func (f *requireContactFilter) Apply(c *hiredesk.Candidates) (*hiredesk.Candidates, Step, error) {
	next, step := keep(c, func(candidate *hiredesk.Candidate) bool {
		return candidate.Email != "" || candidate.Phone != ""
	})
	return next, step, nil
}
