package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTier_String(t *testing.T) {
	assert.Equal(t, "critical", TierCritical.String())
	assert.Equal(t, "important", TierImportant.String())
	assert.Equal(t, "nice", TierNice.String())
}

func TestTier_JSONRoundTrip(t *testing.T) {
	for _, tier := range AllTiers {
		data, err := json.Marshal(tier)
		require.NoError(t, err)

		var decoded Tier
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, tier, decoded)
	}
}

func TestTier_UnmarshalRejectsUnknown(t *testing.T) {
	var tier Tier
	err := json.Unmarshal([]byte(`"urgent"`), &tier)
	assert.Error(t, err)
}

func TestDefaultTierTable(t *testing.T) {
	table := DefaultTierTable()

	assert.Equal(t, 3.0, table.Critical.Weight)
	assert.Equal(t, 2.0, table.Important.Weight)
	assert.Equal(t, 1.0, table.Nice.Weight)

	assert.Equal(t, 88, table.Critical.Threshold)
	assert.Equal(t, 82, table.Important.Threshold)
	assert.Equal(t, 75, table.Nice.Threshold)
}

func TestTierTable_SettingsIsTotal(t *testing.T) {
	table := DefaultTierTable()

	for _, tier := range AllTiers {
		settings := table.Settings(tier)
		assert.Greater(t, settings.Weight, 0.0)
		assert.GreaterOrEqual(t, settings.Threshold, 0)
		assert.LessOrEqual(t, settings.Threshold, 100)
	}

	// Out-of-range tiers fall back to nice rather than panicking.
	assert.Equal(t, table.Nice, table.Settings(Tier(42)))
}
