// Package present turns raw scored-candidate payloads into display-ready
// values. It performs no I/O and never fails on missing optional fields.
package present

import (
	"fmt"
	"time"
)

// Tier is the discrete quality category derived from a continuous match
// score. Boundaries are inclusive on the lower bound of each tier.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierFair      Tier = "fair"
	TierPoor      Tier = "poor"
)

// NotAvailable is the sentinel rendered for an absent timestamp.
const NotAvailable = "N/A"

const uploadedAtLayout = "Jan 2, 2006, 3:04 PM"

// BucketFor maps a score to its tier. A score of exactly 80, 50 or 20
// belongs to the higher tier.
func BucketFor(score float64) Tier {
	switch {
	case score >= 80:
		return TierExcellent
	case score >= 50:
		return TierGood
	case score >= 20:
		return TierFair
	default:
		return TierPoor
	}
}

// Color returns the fixed color identifier for the tier.
func (t Tier) Color() string {
	switch t {
	case TierExcellent:
		return "green"
	case TierGood:
		return "yellow"
	case TierFair:
		return "orange"
	default:
		return "red"
	}
}

// FormatScore renders a score the way the dashboard shows it.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.1f%%", score)
}

// FormatUploadedAt renders an RFC 3339 timestamp as a fixed-locale short
// date and time. Absent or unparsable input renders as the sentinel.
func FormatUploadedAt(raw string) string {
	if raw == "" {
		return NotAvailable
	}

	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		if ts, err = time.Parse("2006-01-02T15:04:05", raw); err != nil {
			return NotAvailable
		}
	}

	return ts.Format(uploadedAtLayout)
}

// Initial returns the display initial for a candidate name. Name is a
// required field upstream; an empty one is a data defect, not a handled
// case, and yields an empty initial rather than a panic.
func Initial(name string) string {
	for _, r := range name {
		return string(r)
	}
	return ""
}
