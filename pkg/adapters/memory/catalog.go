package memory

import (
	"fmt"

	"github.com/wanderkit/packlist/pkg/domain"
)

// Catalog implements ports.CatalogSource over a fixed set of definitions.
// Immutable after construction, so it needs no locking.
type Catalog struct {
	order []string
	defs  map[string]*domain.ChecklistDefinition
}

// NewCatalog builds a catalog from definitions, preserving their order.
// Every definition is validated; duplicate checklist IDs are rejected.
func NewCatalog(defs ...domain.ChecklistDefinition) (*Catalog, error) {
	c := &Catalog{
		order: make([]string, 0, len(defs)),
		defs:  make(map[string]*domain.ChecklistDefinition, len(defs)),
	}
	for i := range defs {
		def := defs[i]
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.defs[def.ID]; dup {
			return nil, fmt.Errorf("duplicate checklist id %q", def.ID)
		}
		c.order = append(c.order, def.ID)
		c.defs[def.ID] = &def
	}
	return c, nil
}

// ListChecklists returns summaries in construction order.
func (c *Catalog) ListChecklists() ([]domain.ChecklistSummary, error) {
	summaries := make([]domain.ChecklistSummary, 0, len(c.order))
	for _, id := range c.order {
		summaries = append(summaries, c.defs[id].Summary())
	}
	return summaries, nil
}

// GetChecklist retrieves a definition by ID.
func (c *Catalog) GetChecklist(id string) (*domain.ChecklistDefinition, error) {
	def, ok := c.defs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownChecklist, id)
	}
	return def, nil
}
