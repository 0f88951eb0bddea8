package domain

import "fmt"

// ItemDefinition describes a single entry of a checklist.
type ItemDefinition struct {
	// FullName is the display name and the identity of the item within its
	// checklist. It must be unique per checklist.
	FullName string `json:"full_name" yaml:"full_name"`

	// ShortName is an optional compact label for transports with tight
	// payload limits (callback data, button captions).
	ShortName string `json:"short_name,omitempty" yaml:"short_name,omitempty"`

	// Description is optional free-form help text shown alongside the prompt.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Link optionally points at an external resource (e.g. a shop page).
	Link string `json:"link,omitempty" yaml:"link,omitempty"`
}

// Label returns the short name if set, otherwise the full name.
func (i ItemDefinition) Label() string {
	if i.ShortName != "" {
		return i.ShortName
	}
	return i.FullName
}

// ChecklistDefinition is an immutable, ordered collection of items.
// Identity is the ID; uniqueness of IDs is enforced by the catalog.
type ChecklistDefinition struct {
	ID          string           `json:"id" yaml:"id"`
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Items       []ItemDefinition `json:"items" yaml:"items"`
}

// ChecklistSummary is the lightweight listing form of a checklist.
type ChecklistSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ItemCount   int    `json:"item_count"`
}

// Summary returns the listing form of the definition.
func (c *ChecklistDefinition) Summary() ChecklistSummary {
	return ChecklistSummary{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ItemCount:   len(c.Items),
	}
}

// Item looks up an item by its full name.
func (c *ChecklistDefinition) Item(fullName string) (ItemDefinition, bool) {
	for _, it := range c.Items {
		if it.FullName == fullName {
			return it, true
		}
	}
	return ItemDefinition{}, false
}

// HasItem reports whether fullName belongs to the checklist.
func (c *ChecklistDefinition) HasItem(fullName string) bool {
	_, ok := c.Item(fullName)
	return ok
}

// Validate checks structural integrity: a non-empty ID and unique,
// non-empty item full names. An empty item list is valid.
func (c *ChecklistDefinition) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("checklist has no id")
	}
	seen := make(map[string]struct{}, len(c.Items))
	for i, it := range c.Items {
		if it.FullName == "" {
			return fmt.Errorf("checklist %q: item %d has no full name", c.ID, i)
		}
		if _, dup := seen[it.FullName]; dup {
			return fmt.Errorf("checklist %q: duplicate item %q", c.ID, it.FullName)
		}
		seen[it.FullName] = struct{}{}
	}
	return nil
}
