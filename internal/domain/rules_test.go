package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestRuleSet_FilterMatchDisables(t *testing.T) {
	filters := []Filter{
		{Pattern: "^FR:", Enabled: true},
		{Pattern: "adult", Enabled: true},
	}
	rs := NewRuleSet(filters, false, nil)

	assert.False(t, rs.ShouldEnable(&Channel{Name: "FR: TF1"}))
	// case-insensitive
	assert.False(t, rs.ShouldEnable(&Channel{Name: "fr: canal+"}))
	assert.False(t, rs.ShouldEnable(&Channel{Name: "Movies", Category: strPtr("Adult")}))
	assert.True(t, rs.ShouldEnable(&Channel{Name: "BBC One"}))
	// anchored pattern does not match mid-string
	assert.True(t, rs.ShouldEnable(&Channel{Name: "MyFR: Channel"}))
}

func TestRuleSet_DisabledFiltersIgnored(t *testing.T) {
	rs := NewRuleSet([]Filter{{Pattern: "^FR:", Enabled: false}}, false, nil)
	assert.True(t, rs.ShouldEnable(&Channel{Name: "FR: TF1"}))
}

func TestRuleSet_EpgRule(t *testing.T) {
	rs := NewRuleSet(nil, true, []string{"bbc1"})

	assert.True(t, rs.ShouldEnable(&Channel{Name: "BBC One", TvgID: strPtr("bbc1")}))
	assert.False(t, rs.ShouldEnable(&Channel{Name: "BBC Two", TvgID: strPtr("bbc2")}))
	// no tvg_id means no guide coverage
	assert.False(t, rs.ShouldEnable(&Channel{Name: "Local"}))
}

func TestRuleSet_FilterBeatsEpgPresence(t *testing.T) {
	rs := NewRuleSet([]Filter{{Pattern: "^FR:", Enabled: true}}, true, []string{"tf1"})
	assert.False(t, rs.ShouldEnable(&Channel{Name: "FR: TF1", TvgID: strPtr("tf1")}))
}

func TestValidatePattern(t *testing.T) {
	assert.NoError(t, ValidatePattern("^FR:"))
	assert.Error(t, ValidatePattern("(["))
}
