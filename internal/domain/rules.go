package domain

import "regexp"

// RuleSet is an immutable snapshot of the rules that decide channel enablement.
// It is loaded once per synchronizer invocation and passed through the
// computation instead of being read from shared state.
type RuleSet struct {
	patterns      []*regexp.Regexp
	epgRule       bool
	tvgIDsWithEpg map[string]struct{}
}

// NewRuleSet compiles the enabled filter patterns (case-insensitive) and
// captures the EPG-presence rule state. Patterns that fail to compile are
// skipped; they should have been rejected at filter creation.
func NewRuleSet(filters []Filter, epgRule bool, tvgIDsWithEpg []string) *RuleSet {
	rs := &RuleSet{epgRule: epgRule, tvgIDsWithEpg: make(map[string]struct{}, len(tvgIDsWithEpg))}
	for _, f := range filters {
		if !f.Enabled {
			continue
		}
		re, err := regexp.Compile("(?i)" + f.Pattern)
		if err != nil {
			continue
		}
		rs.patterns = append(rs.patterns, re)
	}
	for _, id := range tvgIDsWithEpg {
		rs.tvgIDsWithEpg[id] = struct{}{}
	}
	return rs
}

// ShouldEnable computes the derived enabled state for a channel: no enabled
// filter may match its name or category, and, when the EPG rule is active,
// its tvg_id must have at least one programme.
func (rs *RuleSet) ShouldEnable(ch *Channel) bool {
	for _, re := range rs.patterns {
		if re.MatchString(ch.Name) {
			return false
		}
		if ch.Category != nil && re.MatchString(*ch.Category) {
			return false
		}
	}
	if rs.epgRule {
		if ch.TvgID == nil || *ch.TvgID == "" {
			return false
		}
		if _, ok := rs.tvgIDsWithEpg[*ch.TvgID]; !ok {
			return false
		}
	}
	return true
}

// ValidatePattern reports whether pattern compiles as a case-insensitive
// regex. Used to reject bad filters at creation time.
func ValidatePattern(pattern string) error {
	_, err := regexp.Compile("(?i)" + pattern)
	return err
}
