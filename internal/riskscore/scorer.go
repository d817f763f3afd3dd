// Package riskscore turns a case narrative into a heuristic severity score
// and a coarse display tier. Scores are cumulative and explainable: a base
// floor, the points of every distinct keyword present, and a length bonus.
// The score is for triage display only and never gates approval.
package riskscore

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

type Tier int

const (
	TierSafe      Tier = 1
	TierWatch     Tier = 2
	TierCaution   Tier = 3
	TierDangerous Tier = 4
	TierCritical  Tier = 5
)

// TierLabel returns the default label for a tier.
func TierLabel(t Tier) string {
	switch t {
	case TierSafe:
		return "safe"
	case TierWatch:
		return "watch"
	case TierCaution:
		return "caution"
	case TierDangerous:
		return "dangerous"
	case TierCritical:
		return "critical"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// Assessment is a scored narrative ready for display.
type Assessment struct {
	Score   int
	Tier    Tier
	Label   string
	Matched []string
}

// Scorer is immutable after construction and safe for concurrent use.
type Scorer struct {
	cfg Config
}

// New copies cfg so later changes by the caller do not leak in.
func New(cfg *Config) (*Scorer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := *cfg
	c.Keywords = append([]Keyword(nil), cfg.Keywords...)
	c.Thresholds = append([]Threshold(nil), cfg.Thresholds...)
	return &Scorer{cfg: c}, nil
}

// Score never fails; empty text scores exactly the base.
func (s *Scorer) Score(text string) int {
	score, _ := s.score(text, false)
	return score
}

func (s *Scorer) Tier(score int) Tier {
	return s.threshold(score).Tier
}

func (s *Scorer) Assess(text string) Assessment {
	score, matched := s.score(text, true)
	th := s.threshold(score)
	label := th.Label
	if label == "" {
		label = TierLabel(th.Tier)
	}
	return Assessment{Score: score, Tier: th.Tier, Label: label, Matched: matched}
}

func (s *Scorer) score(text string, collect bool) (int, []string) {
	score := s.cfg.Base
	if text == "" {
		return score, nil
	}
	var matched []string
	// presence is boolean per keyword, repeated occurrences count once
	for _, k := range s.cfg.Keywords {
		if strings.Contains(text, k.Term) {
			score += k.Points
			if collect {
				matched = append(matched, k.Term)
			}
		}
	}
	bonus := textLength(text) * s.cfg.PerChar
	if bonus > s.cfg.LengthCap {
		bonus = s.cfg.LengthCap
	}
	return score + bonus, matched
}

func (s *Scorer) threshold(score int) Threshold {
	for _, th := range s.cfg.Thresholds {
		if score >= th.Min {
			return th
		}
	}
	return s.cfg.Thresholds[len(s.cfg.Thresholds)-1]
}

// textLength counts UTF-16 code units, matching how browsers measure the
// narrative the submitter typed.
func textLength(text string) int {
	n := 0
	for _, r := range text {
		n += len(utf16.Encode([]rune{r}))
	}
	return n
}
