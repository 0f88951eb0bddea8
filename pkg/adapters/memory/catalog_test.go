package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderkit/packlist/pkg/adapters/memory"
	"github.com/wanderkit/packlist/pkg/domain"
	"github.com/wanderkit/packlist/pkg/ports/tests"
)

func TestCatalog_Contract(t *testing.T) {
	catalog, err := memory.NewCatalog(
		domain.ChecklistDefinition{
			ID:    "hiking",
			Name:  "Hiking",
			Items: []domain.ItemDefinition{{FullName: "Tent"}},
		},
		domain.ChecklistDefinition{ID: "beach", Name: "Beach"},
	)
	require.NoError(t, err)

	tests.CatalogSourceContract(t, catalog, []string{"hiking", "beach"})
}

func TestNewCatalog_RejectsDuplicateIDs(t *testing.T) {
	_, err := memory.NewCatalog(
		domain.ChecklistDefinition{ID: "hiking", Name: "A"},
		domain.ChecklistDefinition{ID: "hiking", Name: "B"},
	)
	assert.ErrorContains(t, err, "hiking")
}

func TestNewCatalog_RejectsInvalidDefinition(t *testing.T) {
	_, err := memory.NewCatalog(domain.ChecklistDefinition{
		ID:    "hiking",
		Items: []domain.ItemDefinition{{FullName: "Tent"}, {FullName: "Tent"}},
	})
	assert.Error(t, err)
}

func TestCatalog_GetReturnsStoredDefinition(t *testing.T) {
	catalog, err := memory.NewCatalog(domain.ChecklistDefinition{
		ID:   "hiking",
		Name: "Hiking",
		Items: []domain.ItemDefinition{
			{FullName: "Tent", Description: "Three season"},
		},
	})
	require.NoError(t, err)

	def, err := catalog.GetChecklist("hiking")
	require.NoError(t, err)
	assert.Equal(t, "Three season", def.Items[0].Description)
}
