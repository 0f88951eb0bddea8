package ports

import "github.com/wanderkit/packlist/pkg/domain"

// CatalogSource provides read-only access to checklist definitions.
// Implementations load once (or on demand) from an external definition
// source; the engine never mutates what it reads. An empty catalog is
// valid and must not be treated as an error.
type CatalogSource interface {
	// ListChecklists returns summaries in catalog-defined order.
	ListChecklists() ([]domain.ChecklistSummary, error)

	// GetChecklist retrieves a definition by ID.
	// Returns domain.ErrUnknownChecklist if the ID is not in the catalog.
	GetChecklist(id string) (*domain.ChecklistDefinition, error)
}
