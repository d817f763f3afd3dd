package riskscore

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Keyword is one entry of the severity table. Order is kept for display.
type Keyword struct {
	Term   string `yaml:"term"`
	Points int    `yaml:"points"`
}

// Threshold maps the minimum score of a tier (inclusive) to that tier.
type Threshold struct {
	Tier  Tier   `yaml:"tier"`
	Min   int    `yaml:"min"`
	Label string `yaml:"label"`
}

// Config holds every tunable of the scorer. Keywords and thresholds are data
// so the table can be localized without touching the algorithm.
type Config struct {
	Base       int         `yaml:"base"`
	PerChar    int         `yaml:"per_char"`
	LengthCap  int         `yaml:"length_cap"`
	Keywords   []Keyword   `yaml:"keywords"`
	Thresholds []Threshold `yaml:"thresholds"`
}

// DefaultConfig returns the built-in Japanese table.
func DefaultConfig() *Config {
	return &Config{
		Base:      5,
		PerChar:   10,
		LengthCap: 10000,
		Keywords: []Keyword{
			{"横領", 530000},
			{"着服", 530000},
			{"逮捕", 530000},
			{"暴行", 120000},
			{"傷害", 120000},
			{"恐喝", 100000},
			{"詐欺", 80000},
			{"窃盗", 60000},
			{"情報漏洩", 50000},
			{"無断欠勤", 18000},
			{"バックレ", 18000},
			{"飛んだ", 18000},
			{"パワハラ", 15000},
			{"セクハラ", 15000},
			{"酒", 4000},
			{"飲酒", 4000},
			{"遅刻", 1500},
			{"口論", 1200},
			{"サボり", 1000},
			{"虚偽", 3000},
			{"嘘", 3000},
		},
		Thresholds: []Threshold{
			{TierCritical, 530000, "critical"},
			{TierDangerous, 100000, "dangerous"},
			{TierCaution, 10000, "caution"},
			{TierWatch, 1000, "watch"},
			{TierSafe, 0, "safe"},
		},
	}
}

// LoadConfig reads a YAML scoring table. An empty path or a missing file
// yields the defaults; fields present in the file replace the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read risk config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse risk config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MinScore is the lowest score any narrative may receive. Stored cases are
// constrained to it, so a table whose base is lower is rejected.
const MinScore = 5

// Validate checks the table is usable: a base of at least MinScore, unique
// positive keywords and thresholds strictly descending down to a zero floor.
func (c *Config) Validate() error {
	if c.Base < MinScore {
		return fmt.Errorf("risk config: base must be >= %d, got %d", MinScore, c.Base)
	}
	if c.PerChar < 0 || c.LengthCap < 0 {
		return fmt.Errorf("risk config: per_char and length_cap must be >= 0")
	}
	seen := make(map[string]struct{}, len(c.Keywords))
	for _, k := range c.Keywords {
		if k.Term == "" {
			return fmt.Errorf("risk config: empty keyword term")
		}
		if k.Points <= 0 {
			return fmt.Errorf("risk config: keyword %q must have positive points", k.Term)
		}
		if _, dup := seen[k.Term]; dup {
			return fmt.Errorf("risk config: duplicate keyword %q", k.Term)
		}
		seen[k.Term] = struct{}{}
	}
	if len(c.Thresholds) == 0 {
		return fmt.Errorf("risk config: at least one threshold is required")
	}
	for i := 1; i < len(c.Thresholds); i++ {
		if c.Thresholds[i].Min >= c.Thresholds[i-1].Min {
			return fmt.Errorf("risk config: thresholds must be strictly descending (%d after %d)",
				c.Thresholds[i].Min, c.Thresholds[i-1].Min)
		}
	}
	if last := c.Thresholds[len(c.Thresholds)-1]; last.Min != 0 {
		return fmt.Errorf("risk config: lowest threshold must start at 0, got %d", last.Min)
	}
	return nil
}
