package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenstack-labs/plantaudit/pkg/audit"
)

func TestCatalogRegistration(t *testing.T) {
	ids := []string{"CT01", "DP01", "NR01", "RF01", "RF02", "WG01", "WK01"}
	require.Equal(t, len(ids), audit.Count())

	rules := audit.All()
	for i, rule := range rules {
		assert.Equal(t, ids[i], rule.ID, "catalog order should be sorted by ID")
		assert.NotEmpty(t, rule.Name)
		assert.NotEmpty(t, rule.Group)
		assert.NotEmpty(t, rule.Description)
		assert.NotNil(t, rule.Check)
	}
}

func TestAuditEmptyDataset(t *testing.T) {
	report := audit.NewAuditor(nil).Run(&audit.Dataset{})

	assert.Empty(t, report.Issues)
	assert.Empty(t, report.Warnings)
	assert.True(t, report.Healthy())
}

func TestAuditBrokenMixReference(t *testing.T) {
	ds := &audit.Dataset{
		Plants: []audit.Plant{
			{ID: "aloe", Name: "Aloe Vera", Soil: audit.SoilSelection{MixNumber: "99"}},
		},
		SoilMixes: []audit.SoilMix{
			{ID: "mix_1", Number: "1"},
			{ID: "mix_2", Number: "2"},
		},
		Components: fullComponentCatalog(),
		WaterRequirements: []audit.WaterRequirement{
			{ID: "aloe", PlantName: "Aloe Vera", Group: "A", PPMRange: "100-200", PHRange: "5.5-6.5"},
		},
		WaterGroups: []audit.WaterGroup{
			{ID: "water_group_a", Plants: []string{"Aloe Vera"}},
		},
	}

	report := audit.NewAuditor(nil).Run(ds)

	require.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0].Message, "aloe")
	assert.Contains(t, report.Issues[0].Message, "99")
	assert.False(t, report.Healthy())
}

func TestAuditRunIsDeterministic(t *testing.T) {
	ds := &audit.Dataset{
		Plants: []audit.Plant{
			{ID: "aloe", Name: "Rose", Soil: audit.SoilSelection{MixNumber: "9"}},
			{ID: "fern", Name: "Rose"},
		},
		WaterRequirements: []audit.WaterRequirement{
			{ID: "cactus", PlantName: "Cactus", Group: "B", PPMRange: "300-100"},
		},
		WaterGroups: []audit.WaterGroup{
			{ID: "water_group_a", Plants: []string{"Cactus"}},
		},
	}

	auditor := audit.NewAuditor(nil)
	first := auditor.Run(ds)
	for i := 0; i < 10; i++ {
		again := auditor.Run(ds)
		assert.Equal(t, first, again)
	}
}
