package present

import (
	"testing"
)

func TestBucketForBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  Tier
	}{
		{100, TierExcellent},
		{80, TierExcellent},
		{79.9, TierGood},
		{50, TierGood},
		{49.9, TierFair},
		{20, TierFair},
		{19.9, TierPoor},
		{0, TierPoor},
	}

	for _, tt := range tests {
		if got := BucketFor(tt.score); got != tt.want {
			t.Errorf("BucketFor(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestTierColors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tier Tier
		want string
	}{
		{TierExcellent, "green"},
		{TierGood, "yellow"},
		{TierFair, "orange"},
		{TierPoor, "red"},
		{Tier("unknown"), "red"},
	}

	for _, tt := range tests {
		if got := tt.tier.Color(); got != tt.want {
			t.Errorf("%v.Color() = %q, want %q", tt.tier, got, tt.want)
		}
	}
}

func TestFormatScore(t *testing.T) {
	t.Parallel()

	if got := FormatScore(92); got != "92.0%" {
		t.Errorf("FormatScore(92) = %q", got)
	}
	if got := FormatScore(66.67); got != "66.7%" {
		t.Errorf("FormatScore(66.67) = %q", got)
	}
}

func TestFormatUploadedAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{"2025-03-14T15:09:00Z", "Mar 14, 2025, 3:09 PM"},
		{"2025-03-14T09:05:00", "Mar 14, 2025, 9:05 AM"},
		{"", NotAvailable},
		{"yesterday", NotAvailable},
	}

	for _, tt := range tests {
		if got := FormatUploadedAt(tt.raw); got != tt.want {
			t.Errorf("FormatUploadedAt(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestInitial(t *testing.T) {
	t.Parallel()

	if got := Initial("Ada Lovelace"); got != "A" {
		t.Errorf("Initial = %q, want A", got)
	}
	if got := Initial("Øyvind"); got != "Ø" {
		t.Errorf("Initial = %q, want Ø", got)
	}
	if got := Initial(""); got != "" {
		t.Errorf("Initial(\"\") = %q, want empty", got)
	}
}
