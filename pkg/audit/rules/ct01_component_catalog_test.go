package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenstack-labs/plantaudit/pkg/audit"
)

func fullComponentCatalog() []audit.Component {
	return []audit.Component{
		{ID: "universal", Category: audit.CategoryBasicSubstrates, Name: "Premium universal soil"},
		{ID: "coco", Category: audit.CategoryBasicSubstrates, Name: "Coco substrate"},
		{ID: "orchid", Category: audit.CategoryBasicSubstrates, Name: "Orchid mix"},
		{ID: "coco_perlite", Category: audit.CategoryBasicSubstrates, Name: "Coco-perlite (50/50)"},
		{ID: "perlite", Category: audit.CategoryAdditionalComponents, Name: "Perlite"},
		{ID: "vermiculite", Category: audit.CategoryAdditionalComponents, Name: "Vermiculite"},
		{ID: "charcoal", Category: audit.CategoryAdditionalComponents, Name: "Charcoal"},
	}
}

func TestCheckComponentCatalog(t *testing.T) {
	t.Run("complete catalog produces no findings", func(t *testing.T) {
		ds := &audit.Dataset{Components: fullComponentCatalog()}
		assert.Empty(t, checkComponentCatalog(ds))
	})

	t.Run("substring match is case-insensitive", func(t *testing.T) {
		comps := fullComponentCatalog()
		comps[4].Name = "PERLITE (fine grade)"
		ds := &audit.Dataset{Components: comps}
		assert.Empty(t, checkComponentCatalog(ds))
	})

	t.Run("missing component warns", func(t *testing.T) {
		comps := fullComponentCatalog()[:6] // drop charcoal
		ds := &audit.Dataset{Components: comps}
		findings := checkComponentCatalog(ds)
		require.Len(t, findings, 1)
		assert.Equal(t, audit.SeverityWarning, findings[0].Severity)
		assert.Contains(t, findings[0].Message, "Charcoal")
	})

	t.Run("empty catalog is skipped", func(t *testing.T) {
		assert.Empty(t, checkComponentCatalog(&audit.Dataset{}))
	})

	t.Run("single-entry catalog warns for the rest", func(t *testing.T) {
		ds := &audit.Dataset{Components: []audit.Component{
			{ID: "perlite", Category: audit.CategoryAdditionalComponents, Name: "Perlite"},
		}}
		findings := checkComponentCatalog(ds)
		assert.Len(t, findings, len(expectedComponents)-1)
	})
}
