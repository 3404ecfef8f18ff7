package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenstack-labs/plantaudit/pkg/audit"
)

func TestCheckSoilMixRefs(t *testing.T) {
	mixes := []audit.SoilMix{
		{ID: "mix_1", Number: "1"},
		{ID: "mix_2", Number: "2"},
	}

	t.Run("valid reference produces no findings", func(t *testing.T) {
		ds := &audit.Dataset{
			Plants:    []audit.Plant{{ID: "aloe", Soil: audit.SoilSelection{MixNumber: "1"}}},
			SoilMixes: mixes,
		}
		assert.Empty(t, checkSoilMixRefs(ds))
	})

	t.Run("broken reference is critical", func(t *testing.T) {
		ds := &audit.Dataset{
			Plants:    []audit.Plant{{ID: "aloe", Soil: audit.SoilSelection{MixNumber: "99"}}},
			SoilMixes: mixes,
		}
		findings := checkSoilMixRefs(ds)
		require.Len(t, findings, 1)
		assert.Equal(t, audit.SeverityCritical, findings[0].Severity)
		assert.Equal(t, "aloe", findings[0].Entity)
		assert.Contains(t, findings[0].Message, "aloe")
		assert.Contains(t, findings[0].Message, "#99")
	})

	t.Run("empty mix number is skipped", func(t *testing.T) {
		ds := &audit.Dataset{
			Plants:    []audit.Plant{{ID: "aloe"}},
			SoilMixes: mixes,
		}
		assert.Empty(t, checkSoilMixRefs(ds))
	})

	t.Run("alternative mix leading token is checked with warning confidence", func(t *testing.T) {
		ds := &audit.Dataset{
			Plants: []audit.Plant{
				{ID: "pothos", Soil: audit.SoilSelection{MixNumber: "1", AlternativeMix: "2 (aroid, wick)"}},
				{ID: "fern", Soil: audit.SoilSelection{MixNumber: "1", AlternativeMix: "7 (orchid)"}},
			},
			SoilMixes: mixes,
		}
		findings := checkSoilMixRefs(ds)
		require.Len(t, findings, 1)
		assert.Equal(t, audit.SeverityWarning, findings[0].Severity)
		assert.Equal(t, "fern", findings[0].Entity)
		assert.Contains(t, findings[0].Message, "7 (orchid)")
	})

	t.Run("whitespace-only alternative mix is skipped", func(t *testing.T) {
		ds := &audit.Dataset{
			Plants:    []audit.Plant{{ID: "aloe", Soil: audit.SoilSelection{AlternativeMix: "   "}}},
			SoilMixes: mixes,
		}
		assert.Empty(t, checkSoilMixRefs(ds))
	})
}
