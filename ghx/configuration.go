package ghx

import (
	"fmt"
	"strings"
)

// BoreConfig is the plan arrangement of the bore holes.
type BoreConfig string

const (
	ConfigAuto          BoreConfig = "auto"
	ConfigSingle        BoreConfig = "single"
	ConfigLine          BoreConfig = "line"
	ConfigL             BoreConfig = "l-config"
	ConfigRectangle     BoreConfig = "rectangle"
	ConfigU             BoreConfig = "u-config"
	ConfigL2            BoreConfig = "l2-config"
	ConfigOpenRectangle BoreConfig = "open-rectangle"
)

// configRule is one row of the configuration decision table.
type configRule struct {
	config BoreConfig
	holes  []int // valid hole counts, ascending
	capped bool  // counts above the largest valid one are clamped to it
}

// The row order is the fallback search order.
var configTable = []configRule{
	{config: ConfigSingle, holes: []int{1}},
	{config: ConfigLine, holes: []int{2, 3, 4, 5, 6, 7, 8, 9, 10}, capped: true},
	{config: ConfigL, holes: []int{3, 4, 5, 6}, capped: true},
	{config: ConfigRectangle, holes: []int{2, 4, 6, 8}},
	{config: ConfigU, holes: []int{5, 7, 9}},
	{config: ConfigL2, holes: []int{8}},
	{config: ConfigOpenRectangle, holes: []int{8}},
}

// default configuration for an auto-configured field, by hole count
func autoConfig(holes int) BoreConfig {
	switch {
	case holes <= 1:
		return ConfigSingle
	case holes <= 3:
		return ConfigLine
	case holes == 4:
		return ConfigRectangle
	case holes == 5:
		return ConfigU
	default:
		return ConfigLine
	}
}

func findRule(cfg BoreConfig) (configRule, bool) {
	for _, r := range configTable {
		if r.config == cfg {
			return r, true
		}
	}
	return configRule{}, false
}

func (r configRule) accepts(holes int) bool {
	for _, h := range r.holes {
		if h == holes {
			return true
		}
	}
	return false
}

func (r configRule) max() int {
	return r.holes[len(r.holes)-1]
}

// BoreConfigs lists the concrete configurations in fallback search order.
func BoreConfigs() []BoreConfig {
	cfgs := make([]BoreConfig, len(configTable))
	for i, r := range configTable {
		cfgs[i] = r.config
	}
	return cfgs
}

// ValidHoleCounts returns the hole counts the configuration accepts.
func ValidHoleCounts(cfg BoreConfig) []int {
	r, ok := findRule(cfg)
	if !ok {
		return nil
	}
	return append([]int(nil), r.holes...)
}

// ParseBoreConfig parses a configuration name. An empty name is auto.
func ParseBoreConfig(s string) (BoreConfig, error) {
	cfg := BoreConfig(strings.ToLower(strings.TrimSpace(s)))
	if cfg == "" || cfg == ConfigAuto {
		return ConfigAuto, nil
	}
	if _, ok := findRule(cfg); !ok {
		return "", fmt.Errorf("%w: bore configuration %q", ErrInvalidInput, s)
	}
	return cfg, nil
}

/*
Checks the hole count against the bore configuration.

	Args:
		cfg: requested configuration, ConfigAuto derives one from the hole count
		holes: number of bore holes

	Returns:
		(1) configuration to use
		(2) hole count to use
		(3) warnings for a capped count or a substituted configuration

	Notes:
		Line and L configurations are clamped to their maximum. Any other mismatch
		adopts the first configuration of the table that accepts the count.
*/
func ValidateConfiguration(cfg BoreConfig, holes int) (BoreConfig, int, []Warning, error) {
	if holes < 1 {
		return "", 0, nil, fmt.Errorf("%w: bore holes must be at least 1, got %d", ErrInvalidInput, holes)
	}

	cfg, err := ParseBoreConfig(string(cfg))
	if err != nil {
		return "", 0, nil, err
	}
	if cfg == ConfigAuto {
		cfg = autoConfig(holes)
	}

	rule, _ := findRule(cfg)
	if rule.accepts(holes) {
		return cfg, holes, nil, nil
	}

	if rule.capped && holes > rule.max() {
		w := newWarning(WarningConfigurationCapped,
			"%d bore holes exceed the %s maximum, using %d", holes, cfg, rule.max())
		return cfg, rule.max(), []Warning{w}, nil
	}

	for _, r := range configTable {
		if r.accepts(holes) {
			w := newWarning(WarningConfigurationSubstituted,
				"%s does not accept %d bore holes, using %s", cfg, holes, r.config)
			return r.config, holes, []Warning{w}, nil
		}
	}

	return "", 0, nil, fmt.Errorf("%w: %d bore holes (requested %s)",
		ErrNoValidBoreFieldConfiguration, holes, cfg)
}
