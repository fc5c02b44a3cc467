package build

import (
	_ "embed"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/skymap/pkg/errors"
)

//go:embed rules.yaml
var defaultRules []byte

// RankTier is one rank-dependent magnitude ceiling for Bayer-designated
// bright stars. A star with rank <= MaxRank qualifies when its magnitude
// is at or below Ceiling.
type RankTier struct {
	MaxRank int     `yaml:"max_rank"`
	Ceiling float64 `yaml:"ceiling"`
}

// Rules holds the data-driven inclusion rules loaded from YAML.
type Rules struct {
	Bright struct {
		Ceiling float64    `yaml:"ceiling"`
		Tiers   []RankTier `yaml:"tiers"`
		Legacy  []int      `yaml:"legacy"`
	} `yaml:"bright"`

	Astrometry struct {
		NewRecordCeiling float64 `yaml:"new_record_ceiling"`
	} `yaml:"astrometry"`

	DeepSky struct {
		Ceiling float64 `yaml:"ceiling"`
	} `yaml:"deep_sky"`

	Cluster struct {
		AnchorFK5 int     `yaml:"anchor_fk5"`
		Name      string  `yaml:"name"`
		Magnitude float64 `yaml:"magnitude"`
		NGC       int     `yaml:"ngc"`
		Messier   int     `yaml:"messier"`
	} `yaml:"cluster"`
}

// Config carries everything a build needs beyond the source text itself.
type Config struct {
	Rules Rules

	// DoublePrecision writes 8-byte coordinates and the 0xFD header flag.
	DoublePrecision bool

	// legacySet is the Legacy list as a set, built once at load time.
	legacySet map[int]bool
}

// DefaultConfig returns a config using the embedded rules.
func DefaultConfig() (*Config, error) {
	return configFromYAML(defaultRules)
}

// LoadConfig reads a rules file from disk, replacing the embedded defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return configFromYAML(data)
}

func configFromYAML(data []byte) (*Config, error) {
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, errors.NewConfigError("rules", "invalid rules file", err)
	}

	cfg := &Config{Rules: rules, legacySet: make(map[int]bool, len(rules.Bright.Legacy))}
	for _, hr := range rules.Bright.Legacy {
		cfg.legacySet[hr] = true
	}
	return cfg, nil
}

// LegacyBrightStar reports whether a bright-star number is on the fixed
// legacy inclusion list.
func (c *Config) LegacyBrightStar(hr int) bool {
	return c.legacySet[hr]
}

// RankQualifies reports whether a Bayer rank and magnitude pass any
// configured rank tier.
func (c *Config) RankQualifies(rank int, mag float64) bool {
	if rank <= 0 {
		return false
	}
	for _, tier := range c.Rules.Bright.Tiers {
		if rank <= tier.MaxRank && mag <= tier.Ceiling {
			return true
		}
	}
	return false
}
